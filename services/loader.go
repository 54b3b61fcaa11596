package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"scholar-graph/config"
	"scholar-graph/generator"
	"scholar-graph/models"
)

// LoadStats counts the rows written by one relational load.
type LoadStats struct {
	Organizations int
	Authors       int
	Papers        int
	Relations     int
}

// Loader clears and repopulates the relational store in dependency order.
type Loader struct {
	DB     *gorm.DB
	Config *config.Config
	Gen    *generator.Generator
	Logger *zap.Logger
}

// NewLoader creates a new relational loader.
func NewLoader(cfg *config.Config, db *gorm.DB, gen *generator.Generator, logger *zap.Logger) *Loader {
	return &Loader{
		DB:     db,
		Config: cfg,
		Gen:    gen,
		Logger: logger,
	}
}

// Run executes the full load: reset, organizations, authors, papers with
// their authorship relations. Any failure rolls back the transaction it
// occurred in and aborts the load; rows committed by earlier phases stay.
func (l *Loader) Run(ctx context.Context) (LoadStats, error) {
	var stats LoadStats

	if err := l.reset(ctx); err != nil {
		return stats, err
	}

	orgs, err := l.loadOrganizations(ctx)
	if err != nil {
		return stats, err
	}
	stats.Organizations = len(orgs)

	authors, err := l.loadAuthors(ctx, orgs)
	if err != nil {
		return stats, err
	}
	stats.Authors = len(authors)

	papers, relations, err := l.loadPapers(ctx, authors)
	if err != nil {
		return stats, err
	}
	stats.Papers = papers
	stats.Relations = relations

	l.Logger.Info("Relational load completed",
		zap.Int("organizations", stats.Organizations),
		zap.Int("authors", stats.Authors),
		zap.Int("papers", stats.Papers),
		zap.Int("relations", stats.Relations),
	)
	return stats, nil
}

// reset deletes all rows, dependents before dependencies, in one transaction.
func (l *Loader) reset(ctx context.Context) error {
	l.Logger.Info("Clearing existing data...")
	err := l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.PaperAuthorRelation{},
			&models.Paper{},
			&models.Author{},
			&models.Organization{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		l.Logger.Error("Failed to clear existing data", zap.Error(err))
		return fmt.Errorf("reset: %w", err)
	}
	l.Logger.Info("Existing data cleared")
	return nil
}

// loadOrganizations upserts the organization batch and commits it once.
func (l *Loader) loadOrganizations(ctx context.Context) ([]models.Organization, error) {
	count := l.Config.OrgCount
	if count > len(generator.Universities) {
		l.Logger.Warn("ORG_COUNT exceeds the reference table, clamping",
			zap.Int("requested", count), zap.Int("available", len(generator.Universities)))
		count = len(generator.Universities)
	}

	orgs := make([]models.Organization, 0, count)
	err := l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, uni := range generator.Universities[:count] {
			org := models.Organization{
				OrgID:        fmt.Sprintf("org_%03d", i+1),
				Name:         uni.Name,
				Country:      uni.Country,
				Abbreviation: uni.Abbreviation,
				RankScore:    uni.RankScore,
				PaperCount:   0,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "org_id"}},
				UpdateAll: true,
			}).Create(&org).Error; err != nil {
				return err
			}
			orgs = append(orgs, org)
		}
		return nil
	})
	if err != nil {
		l.Logger.Error("Failed to load organizations", zap.Error(err))
		return nil, fmt.Errorf("organization phase: %w", err)
	}
	l.Logger.Info("Organizations created", zap.Int("count", len(orgs)))
	return orgs, nil
}

// loadAuthors creates AuthorsPerOrg authors for each organization, one
// transaction per organization so a failure only loses that batch.
func (l *Loader) loadAuthors(ctx context.Context, orgs []models.Organization) ([]models.Author, error) {
	authors := make([]models.Author, 0, len(orgs)*l.Config.AuthorsPerOrg)
	counter := 1

	for _, org := range orgs {
		err := l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for j := 0; j < l.Config.AuthorsPerOrg; j++ {
				name := generator.AuthorName(org.Country, counter-1)
				author := models.Author{
					AuthorID:   fmt.Sprintf("author_%04d", counter),
					Name:       name,
					OrgID:      org.OrgID,
					HIndex:     l.Gen.HIndex(),
					PaperCount: 0,
					Orcid:      l.Gen.Orcid(),
					Email:      generator.Email(name, org.Country, org.Abbreviation),
				}
				if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "author_id"}},
					UpdateAll: true,
				}).Create(&author).Error; err != nil {
					return err
				}
				authors = append(authors, author)
				counter++
			}
			return nil
		})
		if err != nil {
			l.Logger.Error("Failed to load authors",
				zap.String("org_id", org.OrgID), zap.Error(err))
			return nil, fmt.Errorf("author phase (%s): %w", org.OrgID, err)
		}
		l.Logger.Info("Authors created",
			zap.String("organization", org.Name), zap.Int("count", l.Config.AuthorsPerOrg))
	}
	return authors, nil
}

// loadPapers creates PapersPerAuthor papers plus their authorship relations
// for each author, one transaction per author. Papers are written before
// their relations inside the shared transaction, so the relation table's
// foreign key to papers is always satisfied.
func (l *Loader) loadPapers(ctx context.Context, authors []models.Author) (int, int, error) {
	papers := 0
	relations := 0
	counter := 1

	for idx, author := range authors {
		err := l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			paperIDs := make([]string, 0, l.Config.PapersPerAuthor)
			for k := 0; k < l.Config.PapersPerAuthor; k++ {
				paperID := fmt.Sprintf("paper_%05d", counter)
				year := l.Gen.Year()
				paper := models.Paper{
					PaperID:       paperID,
					Title:         generator.PaperTitle(counter - 1),
					Abstract:      generator.Abstract(counter - 1),
					Year:          year,
					Venue:         l.Gen.Venue(year),
					DOI:           l.Gen.DOI(year),
					Keywords:      l.Gen.Keywords(),
					URL:           generator.PaperURL(paperID),
					CitationCount: l.Gen.CitationCount(),
				}
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "paper_id"}},
					UpdateAll: true,
				}).Create(&paper).Error; err != nil {
					return err
				}
				paperIDs = append(paperIDs, paperID)
				counter++
			}

			for _, paperID := range paperIDs {
				rel := models.PaperAuthorRelation{
					PaperID:         paperID,
					AuthorID:        author.AuthorID,
					AuthorOrder:     1,
					IsCorresponding: true,
				}
				if err := tx.Omit(clause.Associations).Create(&rel).Error; err != nil {
					return err
				}
			}

			papers += len(paperIDs)
			relations += len(paperIDs)
			return nil
		})
		if err != nil {
			l.Logger.Error("Failed to load papers",
				zap.String("author_id", author.AuthorID), zap.Error(err))
			return papers, relations, fmt.Errorf("paper phase (%s): %w", author.AuthorID, err)
		}

		if (idx+1)%10 == 0 {
			l.Logger.Info("Paper progress",
				zap.Int("authors_done", idx+1),
				zap.Int("authors_total", len(authors)),
				zap.Int("papers", papers))
		}
	}
	return papers, relations, nil
}
