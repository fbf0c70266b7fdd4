package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/aivista/aivista/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("insert into %s: %v", coll, err)
	}
}

// CreateQuery inserts a monitored query for a tenant.
func (f *Fixtures) CreateQuery(ctx context.Context, text, customID string) models.Query {
	f.t.Helper()
	q := models.Query{
		ID:        primitive.NewObjectID(),
		Query:     text,
		CustomID:  customID,
		CreatedAt: time.Now().UTC(),
	}
	f.insert(ctx, "LLMQueries", q)
	return q
}

// CreateKeyword inserts a tracked keyword for a tenant.
func (f *Fixtures) CreateKeyword(ctx context.Context, text, customID, kwType string) models.Keyword {
	f.t.Helper()
	k := models.Keyword{
		ID:        primitive.NewObjectID(),
		Keyword:   text,
		CustomID:  customID,
		Type:      kwType,
		CreatedAt: time.Now().UTC(),
	}
	f.insert(ctx, "LLMKeywords", k)
	return k
}

// CreateTracking inserts a tracking record keyed by custom_id. position may
// be nil for a not-found observation.
func (f *Fixtures) CreateTracking(ctx context.Context, customID, query, keyword string, position *int, found bool) models.Tracking {
	f.t.Helper()
	rec := models.Tracking{
		ID:       primitive.NewObjectID(),
		Query:    query,
		Keyword:  keyword,
		CustomID: customID,
		LLM:      "gpt-4o",
		Position: position,
		Found:    found,
		Date:     time.Now().UTC(),
	}
	f.insert(ctx, "LLMKeywordsTracking", rec)
	return rec
}

// CreateTrackingByDomain inserts a tracking record keyed by the legacy
// customer_domain field instead of custom_id.
func (f *Fixtures) CreateTrackingByDomain(ctx context.Context, domain, query, keyword string, position *int, found bool) models.Tracking {
	f.t.Helper()
	rec := models.Tracking{
		ID:             primitive.NewObjectID(),
		Query:          query,
		Keyword:        keyword,
		CustomerDomain: domain,
		LLM:            "gpt-4o",
		Position:       position,
		Found:          found,
		Date:           time.Now().UTC(),
	}
	f.insert(ctx, "LLMKeywordsTracking", rec)
	return rec
}

// CreateMention inserts a brand mention record keyed by custom_id.
func (f *Fixtures) CreateMention(ctx context.Context, customID, query, brand string, position *int) models.Mention {
	f.t.Helper()
	m := models.Mention{
		ID:       primitive.NewObjectID(),
		Query:    query,
		Brand:    brand,
		CustomID: customID,
		Position: position,
		Date:     time.Now().UTC(),
	}
	f.insert(ctx, "LLMBrandMentions", m)
	return m
}

// CreateQuickWin inserts a quick-win opportunity with the given priority and
// status.
func (f *Fixtures) CreateQuickWin(ctx context.Context, customID, query, priority, status string) models.QuickWin {
	f.t.Helper()
	now := time.Now().UTC()
	w := models.QuickWin{
		ID:                 primitive.NewObjectID(),
		CustomID:           customID,
		Query:              query,
		Category:           models.CategoryLowHangingFruit,
		Opportunity:        "improve ranking for " + query,
		Priority:           priority,
		CompetitorPosition: 1,
		CompetitorName:     "Competitor Inc",
		Gap:                2,
		EstimatedImpact:    "high",
		ActionItems:        []string{"publish comparison page"},
		Status:             status,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	f.insert(ctx, "LLMQuickWins", w)
	return w
}

// CreateEntityExtraction inserts an entity extraction snapshot.
func (f *Fixtures) CreateEntityExtraction(ctx context.Context, customID, query string) models.EntityExtraction {
	f.t.Helper()
	e := models.EntityExtraction{
		ID:       primitive.NewObjectID(),
		Query:    query,
		CustomID: customID,
		Brands:   []models.EntityBrand{{Name: "Acme", Position: 1, Frequency: 3}},
		Date:     time.Now().UTC(),
	}
	f.insert(ctx, "LLMEntityExtraction", e)
	return e
}
