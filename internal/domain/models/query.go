// internal/domain/models/query.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Query is a monitored prompt belonging to exactly one tenant.
// Created and deleted by explicit user action, never otherwise mutated.
type Query struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Query     string             `bson:"query" json:"query"`
	CustomID  string             `bson:"custom_id" json:"custom_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
