package quickwins_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aivista/aivista/internal/app/features/quickwins"
	"github.com/aivista/aivista/internal/app/quickwin"
	"github.com/aivista/aivista/internal/domain/models"
	"github.com/aivista/aivista/internal/testutil"
	"go.uber.org/zap"
)

func TestListRankedForClient(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fix := testutil.NewFixtures(t, db)
	h := quickwins.NewHandler(db, zap.NewNop())

	fix.CreateQuickWin(ctx, "tenant-1", "low open", quickwin.PriorityLow, quickwin.StatusNew)
	fix.CreateQuickWin(ctx, "tenant-1", "high done", quickwin.PriorityHigh, quickwin.StatusCompleted)
	fix.CreateQuickWin(ctx, "tenant-1", "high open", quickwin.PriorityHigh, quickwin.StatusNew)
	fix.CreateQuickWin(ctx, "tenant-2", "foreign", quickwin.PriorityHigh, quickwin.StatusNew)

	req := testutil.AsClient(httptest.NewRequest("GET", "/api/quickwins", nil), "tenant-1")
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got []models.QuickWin
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("client sees %d wins, want 3", len(got))
	}
	if got[0].Query != "high open" || got[1].Query != "low open" || got[2].Query != "high done" {
		t.Fatalf("rank order: %s, %s, %s", got[0].Query, got[1].Query, got[2].Query)
	}
}

func TestListFilterParameter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fix := testutil.NewFixtures(t, db)
	h := quickwins.NewHandler(db, zap.NewNop())

	fix.CreateQuickWin(ctx, "tenant-1", "a", quickwin.PriorityHigh, quickwin.StatusNew)
	fix.CreateQuickWin(ctx, "tenant-1", "b", quickwin.PriorityLow, quickwin.StatusCompleted)

	req := testutil.AsClient(httptest.NewRequest("GET", "/api/quickwins?filter=completed", nil), "tenant-1")
	rec := httptest.NewRecorder()
	h.List(rec, req)

	var got []models.QuickWin
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(got) != 1 || got[0].Query != "b" {
		t.Fatalf("completed view: %+v", got)
	}

	// Unknown filter values are rejected, not silently treated as all.
	req = testutil.AsClient(httptest.NewRequest("GET", "/api/quickwins?filter=bogus", nil), "tenant-1")
	rec = httptest.NewRecorder()
	h.List(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bogus filter status = %d, want 400", rec.Code)
	}
}

func TestTransitionEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fix := testutil.NewFixtures(t, db)
	h := quickwins.NewHandler(db, zap.NewNop())

	w := fix.CreateQuickWin(ctx, "tenant-1", "q", quickwin.PriorityHigh, quickwin.StatusNew)

	patch := func(body string) *httptest.ResponseRecorder {
		req := testutil.AsClient(httptest.NewRequest("PATCH", "/api/quickwins", strings.NewReader(body)), "tenant-1")
		rec := httptest.NewRecorder()
		h.Transition(rec, req)
		return rec
	}

	rec := patch(fmt.Sprintf(`{"id":%q,"status":"in-progress"}`, w.ID.Hex()))
	if rec.Code != http.StatusOK {
		t.Fatalf("new→in-progress status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// Repeating the same transition conflicts: the record is no longer new.
	rec = patch(fmt.Sprintf(`{"id":%q,"status":"in-progress"}`, w.ID.Hex()))
	if rec.Code != http.StatusConflict {
		t.Fatalf("repeat transition status = %d, want 409", rec.Code)
	}

	rec = patch(`{"id":"nope","status":"in-progress"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id status = %d, want 400", rec.Code)
	}

	rec = patch(fmt.Sprintf(`{"id":%q,"status":"archived"}`, w.ID.Hex()))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad status = %d, want 400", rec.Code)
	}
}
