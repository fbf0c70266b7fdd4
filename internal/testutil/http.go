package testutil

import (
	"context"
	"net/http"

	"github.com/aivista/aivista/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// AsAdmin injects an admin session user into the request context.
func AsAdmin(r *http.Request) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Test Admin",
		Email: "admin@test.com",
		Role:  "admin",
	})
}

// AsClient injects a client session user for the given tenant into the
// request context.
func AsClient(r *http.Request, tenantID string) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:       primitive.NewObjectID().Hex(),
		Name:     "Test Client",
		Email:    "client@test.com",
		Role:     "client",
		TenantID: tenantID,
	})
}
