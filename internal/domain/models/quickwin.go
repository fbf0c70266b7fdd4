// internal/domain/models/quickwin.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuickWin categories.
const (
	CategoryLowHangingFruit = "low-hanging-fruit"
	CategoryContentGap      = "content-gap"
	CategoryOther           = "other"
)

// GapNotApplicable is the sentinel the generator writes when there is no
// comparable position (the brand was absent). It must never be shown as a
// numeric gap.
const GapNotApplicable = -999

// QuickWin is a generated, actionable visibility opportunity. All fields
// except Status and UpdatedAt are set once by the external generation
// process; Status moves through the lifecycle enforced by the quickwin
// engine.
type QuickWin struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomID           string             `bson:"custom_id" json:"custom_id"`
	Query              string             `bson:"query" json:"query"`
	Category           string             `bson:"category" json:"category"`
	Opportunity        string             `bson:"opportunity" json:"opportunity"`
	Priority           string             `bson:"priority" json:"priority"` // high | medium | low
	YourPosition       *int               `bson:"your_position" json:"your_position"`
	CompetitorPosition int                `bson:"competitor_position" json:"competitor_position"`
	CompetitorName     string             `bson:"competitor_name" json:"competitor_name"`
	CompetitorURL      *string            `bson:"competitor_url" json:"competitor_url"`
	Gap                int                `bson:"gap" json:"gap"`
	EstimatedImpact    string             `bson:"estimated_impact" json:"estimated_impact"` // high | medium | low
	ActionItems        []string           `bson:"action_items" json:"action_items"`
	Status             string             `bson:"status" json:"status"` // new | in-progress | completed | dismissed

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
