// Package stats aggregates counts and derived visibility metrics across
// the record collections for the dashboard overview.
package stats

import (
	"context"
	"math"

	"github.com/aivista/aivista/internal/app/quickwin"
	keywordstore "github.com/aivista/aivista/internal/app/store/keywords"
	mentionstore "github.com/aivista/aivista/internal/app/store/mentions"
	querystore "github.com/aivista/aivista/internal/app/store/queries"
	quickwinstore "github.com/aivista/aivista/internal/app/store/quickwins"
	trackingstore "github.com/aivista/aivista/internal/app/store/tracking"
	"github.com/aivista/aivista/internal/app/system/tenant"
	"github.com/aivista/aivista/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Totals are the per-collection record counts visible to a scope.
type Totals struct {
	Queries  int64 `json:"totalQueries"`
	Keywords int64 `json:"totalKeywords"`
	Tracking int64 `json:"totalTracking"`
	Mentions int64 `json:"totalMentions"`
}

// Overview is the dashboard payload: raw counts plus metrics derived from
// the recent tracking window.
type Overview struct {
	Totals
	VisibilityRate   int               `json:"visibilityRate"`
	AveragePosition  float64           `json:"averagePosition"`
	HighPriorityOpen int               `json:"highPriorityOpportunities"`
	RecentActivity   []models.Tracking `json:"recentActivity"`
}

// Service computes aggregates over the scoped record collections.
type Service struct {
	queries   *querystore.Store
	keywords  *keywordstore.Store
	tracking  *trackingstore.Store
	mentions  *mentionstore.Store
	quickwins *quickwinstore.Store

	recentLimit int64
}

// New builds a Service. recentLimit caps the recent-activity window; values
// <= 0 fall back to 10.
func New(db *mongo.Database, recentLimit int64) *Service {
	if recentLimit <= 0 {
		recentLimit = 10
	}
	return &Service{
		queries:     querystore.New(db),
		keywords:    keywordstore.New(db),
		tracking:    trackingstore.New(db),
		mentions:    mentionstore.New(db),
		quickwins:   quickwinstore.New(db),
		recentLimit: recentLimit,
	}
}

// Counts returns the per-collection totals visible to scope. A failure on
// any collection fails the whole call; partial totals would be misleading.
func (s *Service) Counts(ctx context.Context, scope tenant.Scope) (Totals, error) {
	var t Totals
	var err error

	if t.Queries, err = s.queries.Count(ctx, scope); err != nil {
		return Totals{}, err
	}
	if t.Keywords, err = s.keywords.Count(ctx, scope); err != nil {
		return Totals{}, err
	}
	if t.Tracking, err = s.tracking.Count(ctx, scope); err != nil {
		return Totals{}, err
	}
	if t.Mentions, err = s.mentions.Count(ctx, scope); err != nil {
		return Totals{}, err
	}
	return t, nil
}

// Dashboard assembles the overview for scope. Derived metrics come from the
// recent tracking window, not the full history.
func (s *Service) Dashboard(ctx context.Context, scope tenant.Scope) (*Overview, error) {
	totals, err := s.Counts(ctx, scope)
	if err != nil {
		return nil, err
	}

	recent, err := s.tracking.Recent(ctx, scope, s.recentLimit)
	if err != nil {
		return nil, err
	}

	wins, err := s.quickwins.List(ctx, scope)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Totals:           totals,
		VisibilityRate:   VisibilityRate(recent),
		AveragePosition:  AveragePosition(recent),
		HighPriorityOpen: HighPriorityOpenCount(wins),
		RecentActivity:   recent,
	}, nil
}

// VisibilityRate is the percentage of records where the brand was found,
// rounded to the nearest whole percent. Empty input yields 0.
func VisibilityRate(recs []models.Tracking) int {
	if len(recs) == 0 {
		return 0
	}
	found := 0
	for _, r := range recs {
		if r.Found {
			found++
		}
	}
	return int(math.Round(100 * float64(found) / float64(len(recs))))
}

// AveragePosition is the mean position across records where the brand was
// found and a position was recorded, rounded to one decimal. Returns 0 when
// no record qualifies.
func AveragePosition(recs []models.Tracking) float64 {
	sum, n := 0, 0
	for _, r := range recs {
		if r.Found && r.Position != nil {
			sum += *r.Position
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math.Round(10*float64(sum)/float64(n)) / 10
}

// HighPriorityOpenCount counts high-priority quick wins still open, i.e.
// neither completed nor dismissed.
func HighPriorityOpenCount(wins []models.QuickWin) int {
	n := 0
	for _, w := range wins {
		if w.Priority != quickwin.PriorityHigh {
			continue
		}
		if w.Status == quickwin.StatusCompleted || w.Status == quickwin.StatusDismissed {
			continue
		}
		n++
	}
	return n
}
