// internal/domain/models/entity.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EntityBrand is one brand extracted from an LLM response, in response order.
type EntityBrand struct {
	Name      string `bson:"name" json:"name"`
	Position  int    `bson:"position" json:"position"`
	Frequency int    `bson:"frequency" json:"frequency"`
}

// EntityURL is one URL extracted from an LLM response, in response order.
type EntityURL struct {
	URL      string `bson:"url" json:"url"`
	Domain   string `bson:"domain" json:"domain"`
	Position int    `bson:"position" json:"position"`
}

// EntityExtraction is an append-only snapshot of the brands and URLs an
// LLM produced for one query on one date.
type EntityExtraction struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Query    string             `bson:"query" json:"query"`
	CustomID string             `bson:"custom_id" json:"custom_id"`
	LLM      string             `bson:"llm" json:"llm"`
	Date     time.Time          `bson:"date" json:"date"`
	Brands   []EntityBrand      `bson:"brands" json:"brands"`
	URLs     []EntityURL        `bson:"urls" json:"urls"`
}
