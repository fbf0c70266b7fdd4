package querystore

import (
	"context"
	"time"

	"github.com/aivista/aivista/internal/app/store/records"
	"github.com/aivista/aivista/internal/app/system/apperr"
	"github.com/aivista/aivista/internal/app/system/tenant"
	"github.com/aivista/aivista/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *records.Collection[models.Query]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.Query](db, "LLMQueries")}
}

// EnsureIndexes creates the tenant-key index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Raw().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "custom_id", Value: 1}},
		Options: options.Index().SetName("idx_queries_custom_id"),
	})
	return err
}

// List returns the queries visible to scope.
func (s *Store) List(ctx context.Context, scope tenant.Scope) ([]models.Query, error) {
	return s.c.Find(ctx, scope.Filter())
}

// Create inserts a new monitored query for a tenant. Text and tenant id are
// required; the caller sanitizes text beforehand.
func (s *Store) Create(ctx context.Context, text, customID string) (models.Query, error) {
	if text == "" || customID == "" {
		return models.Query{}, apperr.New(apperr.Validation, "query and client ID required")
	}

	q := models.Query{
		ID:        primitive.NewObjectID(),
		Query:     text,
		CustomID:  customID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.Insert(ctx, q); err != nil {
		return models.Query{}, apperr.Wrap(apperr.Storage, "insert failed", err)
	}
	return q, nil
}

// Delete removes a query by id. Returns the number of documents deleted
// (0 or 1); deleting an absent id is not an error here.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.c.DeleteByID(ctx, id)
}

// Count returns the number of queries under scope.
func (s *Store) Count(ctx context.Context, scope tenant.Scope) (int64, error) {
	return s.c.Count(ctx, scope.Filter())
}
