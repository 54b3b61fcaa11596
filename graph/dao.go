// Package graph mirrors the relational snapshot into the graph store.
package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// DAO is the graph-store surface the projector writes through. Node
// handles are opaque strings in the graph store's own identity space.
type DAO interface {
	Wipe(ctx context.Context) error
	CreateOrganizationNode(ctx context.Context, props map[string]any) (string, error)
	CreateAuthorNode(ctx context.Context, props map[string]any) (string, error)
	CreatePaperNode(ctx context.Context, props map[string]any) (string, error)
	CreateRelationship(ctx context.Context, fromID, toID, relType string, props map[string]any) error
}

// Neo4jDAO implements DAO against a Neo4j driver, one session per operation.
type Neo4jDAO struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewNeo4jDAO creates a DAO on top of the given driver.
func NewNeo4jDAO(driver neo4j.DriverWithContext, logger *zap.Logger) *Neo4jDAO {
	return &Neo4jDAO{driver: driver, logger: logger}
}

// Wipe deletes every node and relationship in the graph store.
func (d *Neo4jDAO) Wipe(ctx context.Context) error {
	session := d.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	if _, err := session.Run(ctx, "MATCH (n) DETACH DELETE n", nil); err != nil {
		return fmt.Errorf("failed to wipe graph store: %w", err)
	}
	return nil
}

func (d *Neo4jDAO) createNode(ctx context.Context, label string, props map[string]any) (string, error) {
	session := d.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := fmt.Sprintf("CREATE (n:%s $props) RETURN elementId(n) AS id", label)
	result, err := session.Run(ctx, query, map[string]any{"props": props})
	if err != nil {
		return "", fmt.Errorf("failed to create %s node: %w", label, err)
	}
	record, err := result.Single(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read %s node id: %w", label, err)
	}
	id, ok := record.Get("id")
	if !ok {
		return "", fmt.Errorf("no id returned for %s node", label)
	}
	return id.(string), nil
}

// CreateOrganizationNode creates an Organization node and returns its handle.
func (d *Neo4jDAO) CreateOrganizationNode(ctx context.Context, props map[string]any) (string, error) {
	return d.createNode(ctx, "Organization", props)
}

// CreateAuthorNode creates an Author node and returns its handle.
func (d *Neo4jDAO) CreateAuthorNode(ctx context.Context, props map[string]any) (string, error) {
	return d.createNode(ctx, "Author", props)
}

// CreatePaperNode creates a Paper node and returns its handle.
func (d *Neo4jDAO) CreatePaperNode(ctx context.Context, props map[string]any) (string, error) {
	return d.createNode(ctx, "Paper", props)
}

// CreateRelationship creates a typed edge between two node handles. The
// relationship type is interpolated into the query; callers only pass the
// fixed types of this package.
func (d *Neo4jDAO) CreateRelationship(ctx context.Context, fromID, toID, relType string, props map[string]any) error {
	session := d.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := fmt.Sprintf(`
		MATCH (a) WHERE elementId(a) = $fromID
		MATCH (b) WHERE elementId(b) = $toID
		CREATE (a)-[r:%s]->(b)
		SET r += $props
	`, relType)

	if props == nil {
		props = map[string]any{}
	}
	_, err := session.Run(ctx, query, map[string]any{
		"fromID": fromID,
		"toID":   toID,
		"props":  props,
	})
	if err != nil {
		return fmt.Errorf("failed to create %s relationship: %w", relType, err)
	}
	return nil
}
