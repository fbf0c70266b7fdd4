package entitystore

import (
	"context"

	"github.com/aivista/aivista/internal/app/store/records"
	"github.com/aivista/aivista/internal/app/system/tenant"
	"github.com/aivista/aivista/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store reads entity extraction snapshots. Written only by the external
// ingestion pipeline; read-only here.
type Store struct {
	c *records.Collection[models.EntityExtraction]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.EntityExtraction](db, "LLMEntityExtraction")}
}

// EnsureIndexes creates the tenant-key + date index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Raw().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "custom_id", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetName("idx_entities_custom_id_date"),
	})
	return err
}

// List returns extraction snapshots visible to scope, optionally narrowed
// to a query text, newest first.
func (s *Store) List(ctx context.Context, scope tenant.Scope, queryText string) ([]models.EntityExtraction, error) {
	filter := scope.Filter()
	if queryText != "" {
		filter["query"] = queryText
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return s.c.Find(ctx, filter, opts)
}
