// Package mentions serves read-only access to brand mention records.
package mentions

import (
	"net/http"

	mentionstore "github.com/aivista/aivista/internal/app/store/mentions"
	"github.com/aivista/aivista/internal/app/system/authz"
	"github.com/aivista/aivista/internal/app/system/metrics"
	"github.com/aivista/aivista/internal/app/system/webutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Mentions *mentionstore.Store
	Log      *zap.Logger

	ResultLimit int64
}

func NewHandler(db *mongo.Database, resultLimit int64, logger *zap.Logger) *Handler {
	return &Handler{Mentions: mentionstore.New(db), ResultLimit: resultLimit, Log: logger}
}

// List handles GET /api/mentions. Best (lowest) position first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := authz.Scope(r)
	if err != nil {
		metrics.RecordScopeDenied()
		webutil.Error(w, h.Log, err)
		return
	}

	list, err := h.Mentions.List(r.Context(), scope, r.URL.Query().Get("query"), h.ResultLimit)
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	webutil.JSON(w, http.StatusOK, list)
}

// Queries handles GET /api/mentions/queries: the distinct query texts with
// mention data under the caller's scope.
func (h *Handler) Queries(w http.ResponseWriter, r *http.Request) {
	scope, err := authz.Scope(r)
	if err != nil {
		metrics.RecordScopeDenied()
		webutil.Error(w, h.Log, err)
		return
	}

	queries, err := h.Mentions.DistinctQueries(r.Context(), scope)
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	webutil.JSON(w, http.StatusOK, queries)
}
