package mentionstore

import (
	"context"

	"github.com/aivista/aivista/internal/app/store/records"
	"github.com/aivista/aivista/internal/app/system/tenant"
	"github.com/aivista/aivista/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store reads brand mention records. Written only by the external
// ingestion pipeline; read-only here.
type Store struct {
	c *records.Collection[models.Mention]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.Mention](db, "LLMBrandMentions")}
}

// EnsureIndexes creates tenant-key + position indexes for both legacy
// key names.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Raw().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "custom_id", Value: 1}, {Key: "position", Value: 1}},
			Options: options.Index().SetName("idx_mentions_custom_id_position"),
		},
		{
			Keys:    bson.D{{Key: "customer_domain", Value: 1}, {Key: "position", Value: 1}},
			Options: options.Index().SetName("idx_mentions_domain_position"),
		},
	})
	return err
}

// List returns mentions visible to scope, optionally narrowed to a query
// text, best position first then newest, capped at limit.
func (s *Store) List(ctx context.Context, scope tenant.Scope, queryText string, limit int64) ([]models.Mention, error) {
	filter := scope.IngestionFilter()
	if queryText != "" {
		filter["query"] = queryText
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "position", Value: 1}, {Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return s.c.Find(ctx, filter, opts)
}

// DistinctQueries returns the distinct query texts with mentions under scope.
func (s *Store) DistinctQueries(ctx context.Context, scope tenant.Scope) ([]string, error) {
	return s.c.Distinct(ctx, "query", scope.IngestionFilter())
}

// Count returns the number of mentions under scope.
func (s *Store) Count(ctx context.Context, scope tenant.Scope) (int64, error) {
	return s.c.Count(ctx, scope.IngestionFilter())
}
