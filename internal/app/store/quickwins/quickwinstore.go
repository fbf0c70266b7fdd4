package quickwinstore

import (
	"context"
	"time"

	"github.com/aivista/aivista/internal/app/store/records"
	"github.com/aivista/aivista/internal/app/system/tenant"
	"github.com/aivista/aivista/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store accesses quick-win opportunity records. Documents are created by
// the external generation process; the only mutation this service performs
// is the status transition.
type Store struct {
	c *records.Collection[models.QuickWin]
}

func New(db *mongo.Database) *Store {
	return &Store{c: records.New[models.QuickWin](db, "LLMQuickWins")}
}

// EnsureIndexes creates the tenant-key index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Raw().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "custom_id", Value: 1}, {Key: "created_at", Value: -1}},
		Options: options.Index().SetName("idx_quickwins_custom_id_created"),
	})
	return err
}

// List returns the quick wins visible to scope, newest first. Ranking is
// the engine's job, not the store's.
func (s *Store) List(ctx context.Context, scope tenant.Scope) ([]models.QuickWin, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return s.c.Find(ctx, scope.Filter(), opts)
}

// GetByID loads one quick win.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.QuickWin, error) {
	return s.c.FindOne(ctx, bson.M{"_id": id})
}

// TransitionStatus conditionally moves a quick win to status, matching only
// when the current status is one of allowedFrom. The conditional filter
// makes the transition atomic: two concurrent callers cannot both win.
// Returns the number of matched documents (0 or 1).
func (s *Store) TransitionStatus(ctx context.Context, id primitive.ObjectID, allowedFrom []string, status string) (int64, error) {
	extra := bson.M{"status": bson.M{"$in": allowedFrom}}
	set := bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}
	return s.c.UpdateByID(ctx, id, extra, set)
}
