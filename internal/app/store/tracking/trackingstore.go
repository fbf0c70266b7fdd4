package trackingstore

import (
	"context"

	"github.com/aivista/aivista/internal/app/store/records"
	"github.com/aivista/aivista/internal/app/system/tenant"
	"github.com/aivista/aivista/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store reads keyword tracking records. The collection is written only by
// the external ingestion pipeline; this store never mutates it.
type Store struct {
	c *records.Collection[models.Tracking]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.Tracking](db, "LLMKeywordsTracking")}
}

// EnsureIndexes creates tenant-key + date indexes for both legacy key names.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Raw().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "custom_id", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("idx_tracking_custom_id_date"),
		},
		{
			Keys:    bson.D{{Key: "customer_domain", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("idx_tracking_domain_date"),
		},
	})
	return err
}

// List returns tracking records visible to scope, optionally narrowed to a
// query text and keyword, newest first then best position, capped at limit.
func (s *Store) List(ctx context.Context, scope tenant.Scope, queryText, keyword string, limit int64) ([]models.Tracking, error) {
	filter := scope.IngestionFilter()
	if queryText != "" {
		filter["query"] = queryText
	}
	if keyword != "" {
		filter["keyword"] = keyword
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "position", Value: 1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return s.c.Find(ctx, filter, opts)
}

// Recent returns the n most recently dated records under scope, newest
// first. n <= 0 returns the full scoped set.
func (s *Store) Recent(ctx context.Context, scope tenant.Scope, n int64) ([]models.Tracking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if n > 0 {
		opts.SetLimit(n)
	}
	return s.c.Find(ctx, scope.IngestionFilter(), opts)
}

// DistinctQueries returns the distinct query texts with tracking data
// under scope.
func (s *Store) DistinctQueries(ctx context.Context, scope tenant.Scope) ([]string, error) {
	return s.c.Distinct(ctx, "query", scope.IngestionFilter())
}

// Count returns the number of tracking records under scope.
func (s *Store) Count(ctx context.Context, scope tenant.Scope) (int64, error) {
	return s.c.Count(ctx, scope.IngestionFilter())
}
