// Package quickwin ranks opportunity records for display and enforces the
// status lifecycle. This is the one place in the service with real
// computation; everything around it is scoped storage access.
package quickwin

import (
	"context"
	"sort"
	"strconv"

	quickwinstore "github.com/aivista/aivista/internal/app/store/quickwins"
	"github.com/aivista/aivista/internal/app/system/apperr"
	"github.com/aivista/aivista/internal/app/system/metrics"
	"github.com/aivista/aivista/internal/app/system/tenant"
	"github.com/aivista/aivista/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Quick-win statuses.
const (
	StatusNew        = "new"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusDismissed  = "dismissed"
)

// Priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// View is a pre-ranking filter a caller can request.
type View string

const (
	ViewAll        View = "all"
	ViewPriority   View = "priority" // high priority only
	ViewNew        View = StatusNew
	ViewInProgress View = StatusInProgress
	ViewCompleted  View = StatusCompleted
	ViewDismissed  View = StatusDismissed
)

// ParseView validates a caller-supplied view name. Empty means all.
func ParseView(s string) (View, error) {
	switch View(s) {
	case "", ViewAll:
		return ViewAll, nil
	case ViewPriority, ViewNew, ViewInProgress, ViewCompleted, ViewDismissed:
		return View(s), nil
	default:
		return "", apperr.Newf(apperr.Validation, "unknown filter %q", s)
	}
}

// priorityRank orders priorities for the ranking sort. Unknown priorities
// sort last within their partition.
func priorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Filter returns the subset of wins matching the view. Applied before
// ranking, on the full scoped set.
func Filter(wins []models.QuickWin, v View) []models.QuickWin {
	if v == ViewAll {
		return wins
	}
	out := make([]models.QuickWin, 0, len(wins))
	for _, w := range wins {
		switch v {
		case ViewPriority:
			if w.Priority == PriorityHigh {
				out = append(out, w)
			}
		default:
			if w.Status == string(v) {
				out = append(out, w)
			}
		}
	}
	return out
}

// Rank orders wins for display: everything not completed before everything
// completed, then by priority (high, medium, low) within each partition.
// The sort is stable so ties keep their incoming order. The input slice is
// not modified.
func Rank(wins []models.QuickWin) []models.QuickWin {
	out := make([]models.QuickWin, len(wins))
	copy(out, wins)

	sort.SliceStable(out, func(i, j int) bool {
		iDone := out[i].Status == StatusCompleted
		jDone := out[j].Status == StatusCompleted
		if iDone != jDone {
			return !iDone
		}
		return priorityRank(out[i].Priority) < priorityRank(out[j].Priority)
	})
	return out
}

// ValidStatus reports whether s is one of the four lifecycle statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusCompleted, StatusDismissed:
		return true
	}
	return false
}

// allowedFrom returns the statuses a record may hold for a transition to
// the target status to be legal. Completed and dismissed are terminal;
// nothing transitions back to new (the generator sets it at creation).
func allowedFrom(to string) []string {
	switch to {
	case StatusInProgress:
		return []string{StatusNew}
	case StatusCompleted:
		return []string{StatusInProgress}
	case StatusDismissed:
		return []string{StatusNew, StatusInProgress}
	default:
		return nil
	}
}

// GapDisplay renders a gap value for summaries. The generator writes
// models.GapNotApplicable when the brand was absent and there is no
// comparable position; that sentinel must never surface as a number.
func GapDisplay(gap int) string {
	if gap == models.GapNotApplicable {
		return "not applicable"
	}
	return strconv.Itoa(gap)
}

// Engine combines the store with ranking and lifecycle enforcement.
type Engine struct {
	store *quickwinstore.Store
	log   *zap.Logger
}

func NewEngine(db *mongo.Database, logger *zap.Logger) *Engine {
	return &Engine{store: quickwinstore.New(db), log: logger}
}

// Store exposes the underlying store for index creation at startup.
func (e *Engine) Store() *quickwinstore.Store { return e.store }

// List returns the wins visible to scope, filtered by view and ranked.
func (e *Engine) List(ctx context.Context, scope tenant.Scope, view View) ([]models.QuickWin, error) {
	wins, err := e.store.List(ctx, scope)
	if err != nil {
		return nil, err
	}
	return Rank(Filter(wins, view)), nil
}

// Transition moves a quick win to the requested status, enforcing the
// lifecycle: new→in-progress, in-progress→completed, and new or
// in-progress→dismissed. The update is conditional on the current status so
// concurrent transitions cannot silently clobber each other.
//
// Zero matched documents means either the record is gone (not found) or its
// current status forbids the move (conflict); the two are told apart with a
// follow-up read.
func (e *Engine) Transition(ctx context.Context, id primitive.ObjectID, status string) error {
	if !ValidStatus(status) {
		return apperr.Newf(apperr.Validation, "unknown status %q", status)
	}
	from := allowedFrom(status)
	if from == nil {
		return apperr.Newf(apperr.Conflict, "cannot transition back to %q", status)
	}

	matched, err := e.store.TransitionStatus(ctx, id, from, status)
	if err != nil {
		return err
	}
	if matched == 0 {
		win, getErr := e.store.GetByID(ctx, id)
		if getErr != nil {
			return apperr.New(apperr.NotFound, "quick win not found")
		}
		return apperr.Newf(apperr.Conflict, "cannot move quick win from %q to %q", win.Status, status)
	}

	metrics.RecordQuickWinTransition(status)
	e.log.Info("quick win transitioned",
		zap.String("id", id.Hex()),
		zap.String("status", status))
	return nil
}
