// internal/domain/models/tracking.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tracking is one observed ranking of a keyword for a query against one
// LLM at one point in time. Written only by the external ingestion
// pipeline; read-only to this service.
//
// The tenant key appears under two legacy field names: older ingestion
// runs wrote custom_id, newer ones write customer_domain. Scoped queries
// must match either (see system/tenant).
type Tracking struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Query          string             `bson:"query" json:"query"`
	Keyword        string             `bson:"keyword" json:"keyword"`
	CustomID       string             `bson:"custom_id,omitempty" json:"custom_id,omitempty"`
	CustomerDomain string             `bson:"customer_domain,omitempty" json:"customer_domain,omitempty"`
	LLM            string             `bson:"llm" json:"llm"`
	Position       *int               `bson:"position" json:"position"`
	Found          bool               `bson:"found" json:"found"`
	URL            *string            `bson:"url" json:"url"`
	Date           time.Time          `bson:"date" json:"date"`
}
