package keywordstore

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
	c *records.Collection[models.Keyword]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.Keyword](db, "LLMKeywords")}
}

// EnsureIndexes creates the tenant-key index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Raw().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "custom_id", Value: 1}},
		Options: options.Index().SetName("idx_keywords_custom_id"),
	})
	return err
}

// List returns the keywords visible to scope.
func (s *Store) List(ctx context.Context, scope tenant.Scope) ([]models.Keyword, error) {
	return s.c.Find(ctx, scope.Filter())
}

// Create inserts a new tracked keyword for a tenant. Type defaults to brand.
func (s *Store) Create(ctx context.Context, text, customID, kwType string) (models.Keyword, error) {
	if text == "" || customID == "" {
		return models.Keyword{}, apperr.New(apperr.Validation, "keyword and client ID required")
	}
	switch kwType {
	case "":
		kwType = models.KeywordBrand
	case models.KeywordBrand, models.KeywordCompetitor:
	default:
		return models.Keyword{}, apperr.New(apperr.Validation, `type must be "brand" or "competitor"`)
	}

	k := models.Keyword{
		ID:        primitive.NewObjectID(),
		Keyword:   text,
		CustomID:  customID,
		Type:      kwType,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.Insert(ctx, k); err != nil {
		return models.Keyword{}, apperr.Wrap(apperr.Storage, "insert failed", err)
	}
	return k, nil
}

// Delete removes a keyword by id. Returns the number of documents deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.c.DeleteByID(ctx, id)
}

// Count returns the number of keywords under scope.
func (s *Store) Count(ctx context.Context, scope tenant.Scope) (int64, error) {
	return s.c.Count(ctx, scope.Filter())
}
