// Package entities serves read-only access to entity extraction snapshots.
package entities

import (
	"net/http"

	entitystore "github.com/aivista/aivista/internal/app/store/entities"
	"github.com/aivista/aivista/internal/app/system/authz"
	"github.com/aivista/aivista/internal/app/system/metrics"
	"github.com/aivista/aivista/internal/app/system/webutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Entities *entitystore.Store
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Entities: entitystore.New(db), Log: logger}
}

// List handles GET /api/entities, newest snapshots first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := authz.Scope(r)
	if err != nil {
		metrics.RecordScopeDenied()
		webutil.Error(w, h.Log, err)
		return
	}

	list, err := h.Entities.List(r.Context(), scope, r.URL.Query().Get("query"))
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	webutil.JSON(w, http.StatusOK, list)
}
