package quickwin_test

import (
	"testing"

	"github.com/aivista/aivista/internal/app/quickwin"
	"github.com/aivista/aivista/internal/app/system/apperr"
	"github.com/aivista/aivista/internal/app/system/tenant"
	"github.com/aivista/aivista/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestTransitionLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fix := testutil.NewFixtures(t, db)
	engine := quickwin.NewEngine(db, zap.NewNop())

	w := fix.CreateQuickWin(ctx, "tenant-1", "best crm software", quickwin.PriorityHigh, quickwin.StatusNew)

	// new → in-progress → completed is the happy path.
	if err := engine.Transition(ctx, w.ID, quickwin.StatusInProgress); err != nil {
		t.Fatalf("new→in-progress: %v", err)
	}
	if err := engine.Transition(ctx, w.ID, quickwin.StatusCompleted); err != nil {
		t.Fatalf("in-progress→completed: %v", err)
	}

	// Completed is terminal.
	err := engine.Transition(ctx, w.ID, quickwin.StatusDismissed)
	if apperr.KindOf(err) != apperr.Conflict {
		t.Fatalf("completed→dismissed: got %v, want conflict", err)
	}
}

func TestTransitionSkippingStepRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fix := testutil.NewFixtures(t, db)
	engine := quickwin.NewEngine(db, zap.NewNop())

	w := fix.CreateQuickWin(ctx, "tenant-1", "best crm software", quickwin.PriorityHigh, quickwin.StatusNew)

	// new → completed skips in-progress and must be rejected.
	err := engine.Transition(ctx, w.ID, quickwin.StatusCompleted)
	if apperr.KindOf(err) != apperr.Conflict {
		t.Fatalf("new→completed: got %v, want conflict", err)
	}

	// The record is untouched.
	got, getErr := engine.Store().GetByID(ctx, w.ID)
	if getErr != nil {
		t.Fatalf("get: %v", getErr)
	}
	if got.Status != quickwin.StatusNew {
		t.Fatalf("status changed to %q after rejected transition", got.Status)
	}
}

func TestTransitionDismissFromNew(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fix := testutil.NewFixtures(t, db)
	engine := quickwin.NewEngine(db, zap.NewNop())

	w := fix.CreateQuickWin(ctx, "tenant-1", "best crm software", quickwin.PriorityLow, quickwin.StatusNew)
	if err := engine.Transition(ctx, w.ID, quickwin.StatusDismissed); err != nil {
		t.Fatalf("new→dismissed: %v", err)
	}

	// Dismissed is terminal too.
	err := engine.Transition(ctx, w.ID, quickwin.StatusInProgress)
	if apperr.KindOf(err) != apperr.Conflict {
		t.Fatalf("dismissed→in-progress: got %v, want conflict", err)
	}
}

func TestTransitionUnknownRecord(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	engine := quickwin.NewEngine(db, zap.NewNop())

	err := engine.Transition(ctx, primitive.NewObjectID(), quickwin.StatusInProgress)
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("missing record: got %v, want not found", err)
	}
}

func TestTransitionBadStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	engine := quickwin.NewEngine(db, zap.NewNop())

	err := engine.Transition(ctx, primitive.NewObjectID(), "archived")
	if apperr.KindOf(err) != apperr.Validation {
		t.Fatalf("bad status: got %v, want validation", err)
	}
}

func TestListScopedAndRanked(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fix := testutil.NewFixtures(t, db)
	engine := quickwin.NewEngine(db, zap.NewNop())

	fix.CreateQuickWin(ctx, "tenant-1", "low open", quickwin.PriorityLow, quickwin.StatusNew)
	fix.CreateQuickWin(ctx, "tenant-1", "high done", quickwin.PriorityHigh, quickwin.StatusCompleted)
	fix.CreateQuickWin(ctx, "tenant-1", "high open", quickwin.PriorityHigh, quickwin.StatusNew)
	fix.CreateQuickWin(ctx, "tenant-2", "foreign", quickwin.PriorityHigh, quickwin.StatusNew)

	client, err := tenant.Resolve(tenant.RoleClient, "tenant-1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	wins, err := engine.List(ctx, client, quickwin.ViewAll)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(wins) != 3 {
		t.Fatalf("client sees %d wins, want 3", len(wins))
	}
	if wins[0].Query != "high open" || wins[1].Query != "low open" || wins[2].Query != "high done" {
		t.Fatalf("rank order: %s, %s, %s", wins[0].Query, wins[1].Query, wins[2].Query)
	}

	open, err := engine.List(ctx, client, quickwin.ViewNew)
	if err != nil {
		t.Fatalf("list new: %v", err)
	}
	if len(open) != 2 {
		t.Fatalf("new view returned %d, want 2", len(open))
	}
}
