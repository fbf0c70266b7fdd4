// internal/domain/models/mention.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mention is one observed brand or URL appearance within an LLM response
// to a query. Append-only; written by the external ingestion pipeline.
type Mention struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Query          string             `bson:"query" json:"query"`
	CustomID       string             `bson:"custom_id,omitempty" json:"custom_id,omitempty"`
	CustomerDomain string             `bson:"customer_domain,omitempty" json:"customer_domain,omitempty"`
	Brand          string             `bson:"brand" json:"brand"`
	Position       *int               `bson:"position" json:"position"`
	IsCompetitor   bool               `bson:"is_competitor" json:"is_competitor"`
	URL            *string            `bson:"url" json:"url"`
	Date           time.Time          `bson:"date" json:"date"`
}
