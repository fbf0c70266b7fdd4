// Package tenant resolves a caller's identity into the Mongo predicate that
// scopes every read and write in the service.
//
// Terminology: Tenant Keys
//   - custom_id: the tenant key written by the dashboard and older ingestion runs
//   - customer_domain: the tenant key newer ingestion runs write on tracking
//     and mention documents
//
// The two names identify the same tenant. The duality is resolved here and
// nowhere else; callers see one logical tenant key.
package tenant

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Caller roles.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// Tenant key field names as stored.
const (
	FieldCustomID       = "custom_id"
	FieldCustomerDomain = "customer_domain"
)

var (
	// ErrMissingTenantID is returned when a client-role caller has no tenant id.
	// Scoping fails closed: a client without a tenant never gets an
	// unrestricted predicate.
	ErrMissingTenantID = errors.New("client caller has no tenant id")

	// ErrUnknownRole is returned for roles other than admin and client.
	ErrUnknownRole = errors.New(`role must be "admin" or "client"`)
)

// Scope is the resolved visibility of one caller. The zero value is not
// valid; always obtain a Scope through Resolve.
type Scope struct {
	role     string
	tenantID string
}

// Resolve turns a (role, tenant id) pair into a Scope. Client callers must
// carry a non-empty tenant id.
func Resolve(role, tenantID string) (Scope, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	tenantID = strings.TrimSpace(tenantID)

	switch role {
	case RoleAdmin:
		return Scope{role: RoleAdmin}, nil
	case RoleClient:
		if tenantID == "" {
			return Scope{}, ErrMissingTenantID
		}
		return Scope{role: RoleClient, tenantID: tenantID}, nil
	default:
		return Scope{}, ErrUnknownRole
	}
}

// Admin reports whether the scope is unrestricted.
func (s Scope) Admin() bool {
	return s.role == RoleAdmin
}

// TenantID returns the caller's tenant id, empty for admins.
func (s Scope) TenantID() string {
	return s.tenantID
}

// Filter returns the predicate for collections that store the tenant key
// under custom_id only (queries, keywords, entity extractions, quick wins).
// Admin scopes match everything.
func (s Scope) Filter() bson.M {
	if s.Admin() {
		return bson.M{}
	}
	return bson.M{FieldCustomID: s.tenantID}
}

// IngestionFilter returns the predicate for ingestion-written collections
// (tracking, mentions), where the tenant key may live under either legacy
// field name.
func (s Scope) IngestionFilter() bson.M {
	if s.Admin() {
		return bson.M{}
	}
	return bson.M{"$or": bson.A{
		bson.M{FieldCustomID: s.tenantID},
		bson.M{FieldCustomerDomain: s.tenantID},
	}}
}

// Owns reports whether a document tenant key belongs to this scope.
// Admin scopes own everything.
func (s Scope) Owns(tenantKey string) bool {
	return s.Admin() || tenantKey == s.tenantID
}
