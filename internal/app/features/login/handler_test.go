package login_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aivista/aivista/internal/app/features/login"
	userstore "github.com/aivista/aivista/internal/app/store/users"
	"github.com/aivista/aivista/internal/app/system/auth"
	"github.com/aivista/aivista/internal/domain/models"
	"github.com/aivista/aivista/internal/testutil"
	"go.uber.org/zap"
)

func initSessions(t *testing.T) {
	t.Helper()
	key := strings.Repeat("k", 32)
	if err := auth.InitSessionStore(key, "test-session", "", false, zap.NewNop()); err != nil {
		t.Fatalf("init session store: %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	initSessions(t)
	h := login.NewHandler(db, zap.NewNop())

	if _, err := userstore.New(db).Create(ctx, models.User{
		Email:    "client@example.com",
		Name:     "Test Client",
		Role:     "client",
		ClientID: "tenant-1",
	}, "s3cret-pass"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	body := strings.NewReader(`{"email":"Client@Example.com","password":"s3cret-pass"}`)
	req := httptest.NewRequest("POST", "/api/login", body)
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	// A session cookie is set and the password never leaves the server.
	if len(rec.Result().Cookies()) == 0 {
		t.Fatal("no session cookie set")
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatal("password field present in login response")
	}
	if resp["clientId"] != "tenant-1" {
		t.Fatalf("clientId = %v, want tenant-1", resp["clientId"])
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	initSessions(t)
	h := login.NewHandler(db, zap.NewNop())

	if _, err := userstore.New(db).Create(ctx, models.User{
		Email: "client@example.com", Role: "client", ClientID: "tenant-1",
	}, "s3cret-pass"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	// Wrong password and unknown email yield the same response.
	for _, body := range []string{
		`{"email":"client@example.com","password":"wrong"}`,
		`{"email":"nobody@example.com","password":"s3cret-pass"}`,
	} {
		req := httptest.NewRequest("POST", "/api/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Login(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d for body %s", rec.Code, body)
		}
	}
}

func TestLoginRateLimited(t *testing.T) {
	db := testutil.SetupTestDB(t)
	initSessions(t)
	h := login.NewHandler(db, zap.NewNop())

	body := `{"email":"nobody@example.com","password":"x"}`
	var last int
	for i := 0; i < 11; i++ {
		req := httptest.NewRequest("POST", "/api/login", strings.NewReader(body))
		req.RemoteAddr = "10.1.2.3:5555"
		rec := httptest.NewRecorder()
		h.Login(rec, req)
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("11th attempt status = %d, want 429", last)
	}
}
