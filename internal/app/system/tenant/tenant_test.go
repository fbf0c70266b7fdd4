package tenant_test

import (
	"errors"
	"testing"

	"github.com/aivista/aivista/internal/app/system/tenant"
	"go.mongodb.org/mongo-driver/bson"
)

func TestResolve_Admin(t *testing.T) {
	scope, err := tenant.Resolve("admin", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !scope.Admin() {
		t.Error("expected admin scope")
	}
	if len(scope.Filter()) != 0 {
		t.Errorf("expected unrestricted filter, got %v", scope.Filter())
	}
	if len(scope.IngestionFilter()) != 0 {
		t.Errorf("expected unrestricted ingestion filter, got %v", scope.IngestionFilter())
	}
}

func TestResolve_AdminIgnoresTenantID(t *testing.T) {
	scope, err := tenant.Resolve("admin", "acme")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(scope.Filter()) != 0 {
		t.Error("admin filter must not be restricted by a tenant id")
	}
}

func TestResolve_Client(t *testing.T) {
	scope, err := tenant.Resolve("client", "acme")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if scope.Admin() {
		t.Error("client scope must not be admin")
	}

	filter := scope.Filter()
	if filter["custom_id"] != "acme" {
		t.Errorf("custom_id: got %v, want %q", filter["custom_id"], "acme")
	}
}

func TestResolve_ClientIngestionFilterMatchesBothKeys(t *testing.T) {
	scope, err := tenant.Resolve("client", "acme.com")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	filter := scope.IngestionFilter()
	or, ok := filter["$or"].(bson.A)
	if !ok {
		t.Fatalf("expected $or predicate, got %v", filter)
	}
	if len(or) != 2 {
		t.Fatalf("expected 2 branches, got %d", len(or))
	}

	first, second := or[0].(bson.M), or[1].(bson.M)
	if first["custom_id"] != "acme.com" {
		t.Errorf("custom_id branch: got %v", first)
	}
	if second["customer_domain"] != "acme.com" {
		t.Errorf("customer_domain branch: got %v", second)
	}
}

func TestResolve_ClientWithoutTenantFailsClosed(t *testing.T) {
	_, err := tenant.Resolve("client", "")
	if !errors.Is(err, tenant.ErrMissingTenantID) {
		t.Fatalf("expected ErrMissingTenantID, got %v", err)
	}

	_, err = tenant.Resolve("client", "   ")
	if !errors.Is(err, tenant.ErrMissingTenantID) {
		t.Fatalf("expected ErrMissingTenantID for whitespace tenant id, got %v", err)
	}
}

func TestResolve_UnknownRole(t *testing.T) {
	_, err := tenant.Resolve("superuser", "acme")
	if !errors.Is(err, tenant.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestResolve_RoleNormalized(t *testing.T) {
	scope, err := tenant.Resolve("  Admin ", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !scope.Admin() {
		t.Error("expected admin scope for mixed-case role")
	}
}

func TestOwns(t *testing.T) {
	admin, _ := tenant.Resolve("admin", "")
	if !admin.Owns("anything") {
		t.Error("admin must own every tenant key")
	}

	client, _ := tenant.Resolve("client", "acme")
	if !client.Owns("acme") {
		t.Error("client must own its own tenant key")
	}
	if client.Owns("other") {
		t.Error("client must not own another tenant key")
	}
}
