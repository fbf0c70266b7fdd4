// Package overview serves the dashboard aggregate endpoint.
package overview

import (
	"net/http"

	"github.com/aivista/aivista/internal/app/stats"
	"github.com/aivista/aivista/internal/app/system/authz"
	"github.com/aivista/aivista/internal/app/system/metrics"
	"github.com/aivista/aivista/internal/app/system/webutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Stats *stats.Service
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, recentLimit int64, logger *zap.Logger) *Handler {
	return &Handler{Stats: stats.New(db, recentLimit), Log: logger}
}

// Serve handles GET /api/stats: per-collection totals plus visibility
// metrics derived from the recent tracking window. An admin sees the whole
// corpus; a client sees only their tenant's slice.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	scope, err := authz.Scope(r)
	if err != nil {
		metrics.RecordScopeDenied()
		webutil.Error(w, h.Log, err)
		return
	}

	ov, err := h.Stats.Dashboard(r.Context(), scope)
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	webutil.JSON(w, http.StatusOK, ov)
}
