package graph

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"scholar-graph/models"
)

// Relationship types mirrored into the graph store.
const (
	RelAffiliatedWith = "AFFILIATED_WITH"
	RelAuthored       = "AUTHORED"
)

// SyncStats counts the nodes and edges written by one projection.
type SyncStats struct {
	OrganizationNodes int
	AuthorNodes       int
	PaperNodes        int
	AffiliationEdges  int
	AuthoredEdges     int
}

// Projector rebuilds the graph store from the relational snapshot. The
// relational-id to node-handle maps are transient and rebuilt on every
// sync; nothing about graph identity survives a load.
type Projector struct {
	DB     *gorm.DB
	DAO    DAO
	Logger *zap.Logger
}

// NewProjector creates a projector reading from db and writing through dao.
func NewProjector(db *gorm.DB, dao DAO, logger *zap.Logger) *Projector {
	return &Projector{DB: db, DAO: dao, Logger: logger}
}

// Sync wipes the graph store and re-creates one node per relational entity
// plus the affiliation and authorship edges. There is no transaction across
// the whole projection: a mid-sync failure leaves the store wiped but
// partially repopulated, and the error is propagated to the caller.
func (p *Projector) Sync(ctx context.Context) (SyncStats, error) {
	var stats SyncStats

	if err := p.DAO.Wipe(ctx); err != nil {
		p.Logger.Error("Failed to wipe graph store", zap.Error(err))
		return stats, err
	}
	p.Logger.Info("Graph store wiped")

	orgNodes, err := p.syncOrganizations(ctx, &stats)
	if err != nil {
		return stats, err
	}

	authorNodes, err := p.syncAuthors(ctx, orgNodes, &stats)
	if err != nil {
		return stats, err
	}

	paperNodes, err := p.syncPapers(ctx, &stats)
	if err != nil {
		return stats, err
	}

	if err := p.syncAuthorships(ctx, authorNodes, paperNodes, &stats); err != nil {
		return stats, err
	}

	p.Logger.Info("Graph sync completed",
		zap.Int("organization_nodes", stats.OrganizationNodes),
		zap.Int("author_nodes", stats.AuthorNodes),
		zap.Int("paper_nodes", stats.PaperNodes),
		zap.Int("affiliation_edges", stats.AffiliationEdges),
		zap.Int("authored_edges", stats.AuthoredEdges),
	)
	return stats, nil
}

func (p *Projector) syncOrganizations(ctx context.Context, stats *SyncStats) (map[string]string, error) {
	var orgs []models.Organization
	if err := p.DB.WithContext(ctx).Find(&orgs).Error; err != nil {
		return nil, fmt.Errorf("failed to read organizations: %w", err)
	}

	nodes := make(map[string]string, len(orgs))
	for _, org := range orgs {
		nodeID, err := p.DAO.CreateOrganizationNode(ctx, map[string]any{
			"id":           org.OrgID,
			"name":         org.Name,
			"country":      org.Country,
			"abbreviation": org.Abbreviation,
			"rank_score":   org.RankScore,
		})
		if err != nil {
			p.Logger.Error("Failed to create organization node",
				zap.String("org_id", org.OrgID), zap.Error(err))
			return nil, err
		}
		nodes[org.OrgID] = nodeID
	}
	stats.OrganizationNodes = len(nodes)
	p.Logger.Info("Organization nodes synced", zap.Int("count", len(nodes)))
	return nodes, nil
}

func (p *Projector) syncAuthors(ctx context.Context, orgNodes map[string]string, stats *SyncStats) (map[string]string, error) {
	var authors []models.Author
	if err := p.DB.WithContext(ctx).Find(&authors).Error; err != nil {
		return nil, fmt.Errorf("failed to read authors: %w", err)
	}

	nodes := make(map[string]string, len(authors))
	for _, author := range authors {
		nodeID, err := p.DAO.CreateAuthorNode(ctx, map[string]any{
			"id":      author.AuthorID,
			"name":    author.Name,
			"h_index": author.HIndex,
			"orcid":   author.Orcid,
			"email":   author.Email,
		})
		if err != nil {
			p.Logger.Error("Failed to create author node",
				zap.String("author_id", author.AuthorID), zap.Error(err))
			return nil, err
		}
		nodes[author.AuthorID] = nodeID

		// A missing organization handle skips the edge, not the load.
		orgNodeID, ok := orgNodes[author.OrgID]
		if author.OrgID == "" || !ok {
			continue
		}
		if err := p.DAO.CreateRelationship(ctx, nodeID, orgNodeID, RelAffiliatedWith, nil); err != nil {
			p.Logger.Error("Failed to create affiliation edge",
				zap.String("author_id", author.AuthorID), zap.Error(err))
			return nil, err
		}
		stats.AffiliationEdges++
	}
	stats.AuthorNodes = len(nodes)
	p.Logger.Info("Author nodes synced", zap.Int("count", len(nodes)))
	return nodes, nil
}

func (p *Projector) syncPapers(ctx context.Context, stats *SyncStats) (map[string]string, error) {
	var papers []models.Paper
	if err := p.DB.WithContext(ctx).Find(&papers).Error; err != nil {
		return nil, fmt.Errorf("failed to read papers: %w", err)
	}

	nodes := make(map[string]string, len(papers))
	for _, paper := range papers {
		nodeID, err := p.DAO.CreatePaperNode(ctx, map[string]any{
			"id":             paper.PaperID,
			"title":          paper.Title,
			"year":           paper.Year,
			"venue":          paper.Venue,
			"doi":            paper.DOI,
			"keywords":       paper.Keywords,
			"citation_count": paper.CitationCount,
		})
		if err != nil {
			p.Logger.Error("Failed to create paper node",
				zap.String("paper_id", paper.PaperID), zap.Error(err))
			return nil, err
		}
		nodes[paper.PaperID] = nodeID
	}
	stats.PaperNodes = len(nodes)
	p.Logger.Info("Paper nodes synced", zap.Int("count", len(nodes)))
	return nodes, nil
}

func (p *Projector) syncAuthorships(ctx context.Context, authorNodes, paperNodes map[string]string, stats *SyncStats) error {
	var relations []models.PaperAuthorRelation
	if err := p.DB.WithContext(ctx).Find(&relations).Error; err != nil {
		return fmt.Errorf("failed to read authorship relations: %w", err)
	}

	for _, rel := range relations {
		authorNodeID, haveAuthor := authorNodes[rel.AuthorID]
		paperNodeID, havePaper := paperNodes[rel.PaperID]
		if !haveAuthor || !havePaper {
			// Endpoint never made it into the store; skip the edge.
			continue
		}
		err := p.DAO.CreateRelationship(ctx, authorNodeID, paperNodeID, RelAuthored, map[string]any{
			"order":            rel.AuthorOrder,
			"is_corresponding": rel.IsCorresponding,
		})
		if err != nil {
			p.Logger.Error("Failed to create authored edge",
				zap.String("paper_id", rel.PaperID),
				zap.String("author_id", rel.AuthorID),
				zap.Error(err))
			return err
		}
		stats.AuthoredEdges++
	}
	p.Logger.Info("Authorship edges synced", zap.Int("count", stats.AuthoredEdges))
	return nil
}
