// Package keywords serves the tracked-keyword CRUD endpoints.
package keywords

import (
	"net/http"

	keywordstore "github.com/aivista/aivista/internal/app/store/keywords"
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
	Keywords *keywordstore.Store
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Keywords: keywordstore.New(db), Log: logger}
}

// List handles GET /api/keywords.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := authz.Scope(r)
	if err != nil {
		metrics.RecordScopeDenied()
		webutil.Error(w, h.Log, err)
		return
	}

	list, err := h.Keywords.List(r.Context(), scope)
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	webutil.JSON(w, http.StatusOK, list)
}

type createRequest struct {
	Keyword  string `json:"keyword"`
	Type     string `json:"type"`
	ClientID string `json:"clientId"`
}

// Create handles POST /api/keywords. Clients are pinned to their own tenant.
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

	k, err := h.Keywords.Create(r.Context(), sanitize.Text(req.Keyword), customID, req.Type)
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	webutil.JSON(w, http.StatusCreated, k)
}

// Delete handles DELETE /api/keywords/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		webutil.Error(w, h.Log, apperr.New(apperr.Validation, "invalid keyword id"))
		return
	}

	deleted, err := h.Keywords.Delete(r.Context(), id)
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	if deleted == 0 {
		webutil.Error(w, h.Log, apperr.New(apperr.NotFound, "Keyword not found"))
		return
	}
	webutil.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
