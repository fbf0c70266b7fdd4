package userstore_test

import (
	"errors"
	"strings"
	"testing"

	userstore "github.com/aivista/aivista/internal/app/store/users"
	"github.com/aivista/aivista/internal/domain/models"
	"github.com/aivista/aivista/internal/testutil"
)

func TestCreateAndGetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	u, err := store.Create(ctx, models.User{
		Email:    "  Client@Example.COM ",
		Name:     "Test Client",
		Role:     "client",
		ClientID: "tenant-1",
	}, "s3cret-pass")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Email != "client@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if !strings.HasPrefix(u.Password, "$2") {
		t.Fatal("password stored without bcrypt hash")
	}

	got, err := store.GetByEmail(ctx, "CLIENT@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ClientID != "tenant-1" {
		t.Fatalf("clientId = %q, want tenant-1", got.ClientID)
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	base := models.User{Email: "dup@example.com", Role: "client", ClientID: "tenant-1"}
	if _, err := store.Create(ctx, base, "pass-one"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := store.Create(ctx, base, "pass-two")
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Fatalf("duplicate create: got %v, want ErrDuplicateEmail", err)
	}
}

func TestCreateClientNeedsTenant(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)

	_, err := store.Create(ctx, models.User{Email: "c@example.com", Role: "client"}, "pass")
	if err == nil {
		t.Fatal("client without tenant id was accepted")
	}
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	store := userstore.New(db)

	u, err := store.Create(ctx, models.User{
		Email: "verify@example.com", Role: "client", ClientID: "tenant-1",
	}, "correct horse")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if ok, legacy := userstore.VerifyPassword(&u, "correct horse"); !ok || legacy {
		t.Fatalf("hashed verify: ok=%v legacy=%v", ok, legacy)
	}
	if ok, _ := userstore.VerifyPassword(&u, "wrong"); ok {
		t.Fatal("wrong password accepted")
	}
}

func TestVerifyPasswordLegacyPlaintext(t *testing.T) {
	// Accounts predating the hash migration hold the password verbatim.
	u := models.User{Password: "plain-old-password"}
	ok, legacy := userstore.VerifyPassword(&u, "plain-old-password")
	if !ok || !legacy {
		t.Fatalf("legacy verify: ok=%v legacy=%v", ok, legacy)
	}
	if ok, _ := userstore.VerifyPassword(&u, "nope"); ok {
		t.Fatal("wrong legacy password accepted")
	}
}
