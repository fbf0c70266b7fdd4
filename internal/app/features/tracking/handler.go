// Package tracking serves read-only access to keyword tracking results.
package tracking

import (
	"net/http"

	trackingstore "github.com/aivista/aivista/internal/app/store/tracking"
	"github.com/aivista/aivista/internal/app/system/authz"
	"github.com/aivista/aivista/internal/app/system/metrics"
	"github.com/aivista/aivista/internal/app/system/webutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Tracking *trackingstore.Store
	Log      *zap.Logger

	// ResultLimit caps how many records List returns per request.
	ResultLimit int64
}

func NewHandler(db *mongo.Database, resultLimit int64, logger *zap.Logger) *Handler {
	return &Handler{Tracking: trackingstore.New(db), ResultLimit: resultLimit, Log: logger}
}

// List handles GET /api/tracking. Optional query/keyword parameters narrow
// the result; records come back newest first, best position first within a
// date.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := authz.Scope(r)
	if err != nil {
		metrics.RecordScopeDenied()
		webutil.Error(w, h.Log, err)
		return
	}

	q := r.URL.Query()
	list, err := h.Tracking.List(r.Context(), scope, q.Get("query"), q.Get("keyword"), h.ResultLimit)
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	webutil.JSON(w, http.StatusOK, list)
}

// Queries handles GET /api/tracking/queries: the distinct query texts that
// have tracking data under the caller's scope.
func (h *Handler) Queries(w http.ResponseWriter, r *http.Request) {
	scope, err := authz.Scope(r)
	if err != nil {
		metrics.RecordScopeDenied()
		webutil.Error(w, h.Log, err)
		return
	}

	queries, err := h.Tracking.DistinctQueries(r.Context(), scope)
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	webutil.JSON(w, http.StatusOK, queries)
}
