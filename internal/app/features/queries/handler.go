// Package queries serves the monitored-query CRUD endpoints.
package queries

import (
	"net/http"

	querystore "github.com/aivista/aivista/internal/app/store/queries"
	"github.com/aivista/aivista/internal/app/system/apperr"
	"github.com/aivista/aivista/internal/app/system/authz"
	"github.com/aivista/aivista/internal/app/system/metrics"
	"github.com/aivista/aivista/internal/app/system/sanitize"
	"github.com/aivista/aivista/internal/app/system/webutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Queries *querystore.Store
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Queries: querystore.New(db), Log: logger}
}

// List handles GET /api/queries, returning the queries visible to the caller.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := authz.Scope(r)
	if err != nil {
		metrics.RecordScopeDenied()
		webutil.Error(w, h.Log, err)
		return
	}

	list, err := h.Queries.List(r.Context(), scope)
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	webutil.JSON(w, http.StatusOK, list)
}

type createRequest struct {
	Query    string `json:"query"`
	ClientID string `json:"clientId"`
}

// Create handles POST /api/queries. Admins may create on behalf of any
// tenant via clientId; clients are pinned to their own tenant regardless of
// what the body claims.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	scope, err := authz.Scope(r)
	if err != nil {
		metrics.RecordScopeDenied()
		webutil.Error(w, h.Log, err)
		return
	}

	var req createRequest
	if err := webutil.Decode(r, &req); err != nil {
		webutil.Error(w, h.Log, err)
		return
	}

	customID := req.ClientID
	if !scope.Admin() {
		customID = scope.TenantID()
	}

	q, err := h.Queries.Create(r.Context(), sanitize.Text(req.Query), customID)
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	webutil.JSON(w, http.StatusCreated, q)
}

// Delete handles DELETE /api/queries/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		webutil.Error(w, h.Log, apperr.New(apperr.Validation, "invalid query id"))
		return
	}

	deleted, err := h.Queries.Delete(r.Context(), id)
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	if deleted == 0 {
		webutil.Error(w, h.Log, apperr.New(apperr.NotFound, "Query not found"))
		return
	}
	webutil.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
