package graph

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"scholar-graph/models"
)

// fakeDAO records every write in memory.
type fakeDAO struct {
	wiped     bool
	nodes     map[string]map[string]any // handle -> props
	labels    map[string]string         // handle -> label
	edges     []fakeEdge
	nextID    int
	failWipe  bool
	failPaper bool
}

type fakeEdge struct {
	from, to, relType string
	props             map[string]any
}

func newFakeDAO() *fakeDAO {
	return &fakeDAO{
		nodes:  map[string]map[string]any{},
		labels: map[string]string{},
	}
}

func (f *fakeDAO) Wipe(ctx context.Context) error {
	if f.failWipe {
		return errors.New("wipe refused")
	}
	f.wiped = true
	f.nodes = map[string]map[string]any{}
	f.labels = map[string]string{}
	f.edges = nil
	return nil
}

func (f *fakeDAO) create(label string, props map[string]any) (string, error) {
	if !f.wiped {
		return "", errors.New("node created before wipe")
	}
	f.nextID++
	handle := fmt.Sprintf("node-%d", f.nextID)
	f.nodes[handle] = props
	f.labels[handle] = label
	return handle, nil
}

func (f *fakeDAO) CreateOrganizationNode(ctx context.Context, props map[string]any) (string, error) {
	return f.create("Organization", props)
}

func (f *fakeDAO) CreateAuthorNode(ctx context.Context, props map[string]any) (string, error) {
	return f.create("Author", props)
}

func (f *fakeDAO) CreatePaperNode(ctx context.Context, props map[string]any) (string, error) {
	if f.failPaper {
		return "", errors.New("paper node refused")
	}
	return f.create("Paper", props)
}

func (f *fakeDAO) CreateRelationship(ctx context.Context, fromID, toID, relType string, props map[string]any) error {
	if _, ok := f.nodes[fromID]; !ok {
		return fmt.Errorf("unknown from handle %s", fromID)
	}
	if _, ok := f.nodes[toID]; !ok {
		return fmt.Errorf("unknown to handle %s", toID)
	}
	f.edges = append(f.edges, fakeEdge{from: fromID, to: toID, relType: relType, props: props})
	return nil
}

func (f *fakeDAO) countLabel(label string) int {
	n := 0
	for _, l := range f.labels {
		if l == label {
			n++
		}
	}
	return n
}

func (f *fakeDAO) countRel(relType string) int {
	n := 0
	for _, e := range f.edges {
		if e.relType == relType {
			n++
		}
	}
	return n
}

func newProjectorDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Organization{},
		&models.Author{},
		&models.Paper{},
		&models.PaperAuthorRelation{},
	))
	return db
}

func seedSnapshot(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.Organization{
		OrgID: "org_001", Name: "MIT", Country: "USA", Abbreviation: "MIT", RankScore: 99.5,
	}).Error)
	require.NoError(t, db.Create(&models.Author{
		AuthorID: "author_0001", Name: "James Smith", OrgID: "org_001",
		HIndex: 30, Orcid: "0000-0001-1234-5678", Email: "james.smith@mit.edu",
	}).Error)
	// Dangling org reference: node still projected, affiliation edge skipped.
	require.NoError(t, db.Create(&models.Author{
		AuthorID: "author_0002", Name: "Mary Johnson", OrgID: "org_999",
		HIndex: 12, Orcid: "0000-0002-1234-5678", Email: "mary.johnson@unknown.edu",
	}).Error)
	require.NoError(t, db.Create(&models.Paper{
		PaperID: "paper_00001", Title: "Advanced Research on Computer Vision",
		Year: 2023, Venue: "CVPR 2023", DOI: "10.1234/aaai.2023.12345",
		Keywords: "Computer Vision;Data Mining", CitationCount: 7,
	}).Error)
	require.NoError(t, db.Create(&models.Paper{
		PaperID: "paper_00002", Title: "Novel Approaches to Data Mining",
		Year: 2021, Venue: "KDD 2021", DOI: "10.5678/kdd.2021.54321",
		Keywords: "Data Mining", CitationCount: 42,
	}).Error)
	require.NoError(t, db.Create(&models.PaperAuthorRelation{
		PaperID: "paper_00001", AuthorID: "author_0001", AuthorOrder: 1, IsCorresponding: true,
	}).Error)
	require.NoError(t, db.Create(&models.PaperAuthorRelation{
		PaperID: "paper_00002", AuthorID: "author_0002", AuthorOrder: 1, IsCorresponding: true,
	}).Error)
}

func TestSyncMirrorsRelationalSnapshot(t *testing.T) {
	db := newProjectorDB(t)
	seedSnapshot(t, db)
	dao := newFakeDAO()

	stats, err := NewProjector(db, dao, zap.NewNop()).Sync(context.Background())
	require.NoError(t, err)

	assert.True(t, dao.wiped)
	assert.Equal(t, 1, stats.OrganizationNodes)
	assert.Equal(t, 2, stats.AuthorNodes)
	assert.Equal(t, 2, stats.PaperNodes)
	assert.Equal(t, 1, stats.AffiliationEdges, "dangling org reference must not produce an edge")
	assert.Equal(t, 2, stats.AuthoredEdges)

	assert.Equal(t, 1, dao.countLabel("Organization"))
	assert.Equal(t, 2, dao.countLabel("Author"))
	assert.Equal(t, 2, dao.countLabel("Paper"))
	assert.Equal(t, 1, dao.countRel(RelAffiliatedWith))
	assert.Equal(t, 2, dao.countRel(RelAuthored))
}

func TestSyncCarriesEntityProperties(t *testing.T) {
	db := newProjectorDB(t)
	seedSnapshot(t, db)
	dao := newFakeDAO()

	_, err := NewProjector(db, dao, zap.NewNop()).Sync(context.Background())
	require.NoError(t, err)

	var authorProps map[string]any
	for handle, label := range dao.labels {
		if label == "Author" && dao.nodes[handle]["id"] == "author_0001" {
			authorProps = dao.nodes[handle]
		}
	}
	require.NotNil(t, authorProps)
	assert.Equal(t, "James Smith", authorProps["name"])
	assert.Equal(t, 30, authorProps["h_index"])
	assert.Equal(t, "0000-0001-1234-5678", authorProps["orcid"])
	assert.Equal(t, "james.smith@mit.edu", authorProps["email"])

	for _, edge := range dao.edges {
		if edge.relType == RelAuthored {
			assert.Equal(t, 1, edge.props["order"])
			assert.Equal(t, true, edge.props["is_corresponding"])
		}
	}
}

func TestSyncSkipsRelationsWithMissingEndpoints(t *testing.T) {
	db := newProjectorDB(t)
	seedSnapshot(t, db)
	// Relation whose author was never loaded: silently skipped.
	require.NoError(t, db.Create(&models.PaperAuthorRelation{
		PaperID: "paper_00001", AuthorID: "author_9999", AuthorOrder: 1, IsCorresponding: true,
	}).Error)
	dao := newFakeDAO()

	stats, err := NewProjector(db, dao, zap.NewNop()).Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.AuthoredEdges)
}

func TestSyncAbortsOnWipeFailure(t *testing.T) {
	db := newProjectorDB(t)
	seedSnapshot(t, db)
	dao := newFakeDAO()
	dao.failWipe = true

	_, err := NewProjector(db, dao, zap.NewNop()).Sync(context.Background())
	require.Error(t, err)
	assert.Empty(t, dao.nodes)
}

func TestSyncPropagatesNodeCreationFailure(t *testing.T) {
	db := newProjectorDB(t)
	seedSnapshot(t, db)
	dao := newFakeDAO()
	dao.failPaper = true

	stats, err := NewProjector(db, dao, zap.NewNop()).Sync(context.Background())
	require.Error(t, err)
	// Best effort: earlier stages already ran, the store stays partial.
	assert.Equal(t, 1, stats.OrganizationNodes)
	assert.Equal(t, 2, stats.AuthorNodes)
	assert.Equal(t, 0, stats.PaperNodes)
}
