// internal/domain/models/keyword.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Keyword types.
const (
	KeywordBrand      = "brand"
	KeywordCompetitor = "competitor"
)

// Keyword is a tracked term belonging to exactly one tenant.
type Keyword struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Keyword   string             `bson:"keyword" json:"keyword"`
	CustomID  string             `bson:"custom_id" json:"custom_id"`
	Type      string             `bson:"type" json:"type"` // brand | competitor
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
