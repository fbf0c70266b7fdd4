package queries_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aivista/aivista/internal/app/features/queries"
	"github.com/aivista/aivista/internal/domain/models"
	"github.com/aivista/aivista/internal/testutil"
	"go.uber.org/zap"
)

func TestListAdminSeesAllTenants(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fix := testutil.NewFixtures(t, db)
	h := queries.NewHandler(db, zap.NewNop())

	fix.CreateQuery(ctx, "best crm software", "tenant-1")
	fix.CreateQuery(ctx, "best email tool", "tenant-2")

	req := testutil.AsAdmin(httptest.NewRequest("GET", "/api/queries", nil))
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got []models.Query
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("admin sees %d queries, want 2", len(got))
	}
}

func TestListClientSeesOwnTenantOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fix := testutil.NewFixtures(t, db)
	h := queries.NewHandler(db, zap.NewNop())

	fix.CreateQuery(ctx, "best crm software", "tenant-1")
	fix.CreateQuery(ctx, "best email tool", "tenant-2")

	req := testutil.AsClient(httptest.NewRequest("GET", "/api/queries", nil), "tenant-1")
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got []models.Query
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if len(got) != 1 || got[0].CustomID != "tenant-1" {
		t.Fatalf("client result: %+v", got)
	}
}

func TestListClientWithoutTenantForbidden(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := queries.NewHandler(db, zap.NewNop())

	// Trusted-parameter identity: a client with no clientId must fail
	// closed, never fall through to the unrestricted view.
	req := httptest.NewRequest("GET", "/api/queries", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestCreatePinsClientToOwnTenant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := queries.NewHandler(db, zap.NewNop())

	body := strings.NewReader(`{"query":"best crm software","clientId":"tenant-2"}`)
	req := testutil.AsClient(httptest.NewRequest("POST", "/api/queries", body), "tenant-1")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got models.Query
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if got.CustomID != "tenant-1" {
		t.Fatalf("client created query for tenant %q", got.CustomID)
	}
}

func TestDeleteMissingQueryNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := queries.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("DELETE", "/api/queries/64b000000000000000000000", nil)
	req = testutil.AsAdmin(testutil.WithChiURLParam(req, "id", "64b000000000000000000000"))
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteBadIDRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := queries.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("DELETE", "/api/queries/not-an-id", nil)
	req = testutil.AsAdmin(testutil.WithChiURLParam(req, "id", "not-an-id"))
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
