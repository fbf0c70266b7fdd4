// Package quickwins serves the opportunity list and its status lifecycle.
package quickwins

import (
	"net/http"

	"github.com/aivista/aivista/internal/app/quickwin"
	"github.com/aivista/aivista/internal/app/system/apperr"
	"github.com/aivista/aivista/internal/app/system/authz"
	"github.com/aivista/aivista/internal/app/system/metrics"
	"github.com/aivista/aivista/internal/app/system/webutil"
	"github.com/aivista/aivista/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Engine *quickwin.Engine
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Engine: quickwin.NewEngine(db, logger), Log: logger}
}

// List handles GET /api/quickwins. The optional filter parameter selects a
// view (all, priority, new, in-progress, completed, dismissed); the result
// is ranked with open records first, then by priority.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	scope, err := authz.Scope(r)
	if err != nil {
		metrics.RecordScopeDenied()
		webutil.Error(w, h.Log, err)
		return
	}

	view, err := quickwin.ParseView(r.URL.Query().Get("filter"))
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}

	wins, err := h.Engine.List(r.Context(), scope, view)
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}

	out := make([]winResponse, len(wins))
	for i, win := range wins {
		out[i] = winResponse{QuickWin: win, GapDisplay: quickwin.GapDisplay(win.Gap)}
	}
	webutil.JSON(w, http.StatusOK, out)
}

// winResponse renders a quick win with the gap sentinel resolved to a
// display string.
type winResponse struct {
	models.QuickWin
	GapDisplay string `json:"gap_display"`
}

type transitionRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Transition handles PATCH /api/quickwins. The body names the record and
// the target status; illegal moves come back 409, unknown records 404.
func (h *Handler) Transition(w http.ResponseWriter, r *http.Request) {
	var req transitionRequest
	if err := webutil.Decode(r, &req); err != nil {
		webutil.Error(w, h.Log, err)
		return
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		webutil.Error(w, h.Log, apperr.New(apperr.Validation, "invalid quick win id"))
		return
	}

	if err := h.Engine.Transition(r.Context(), id, req.Status); err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	webutil.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
