// Package users serves account listing and provisioning.
package users

import (
	"net/http"
	"strings"

	userstore "github.com/aivista/aivista/internal/app/store/users"
	"github.com/aivista/aivista/internal/app/system/apperr"
	"github.com/aivista/aivista/internal/app/system/authz"
	"github.com/aivista/aivista/internal/app/system/metrics"
	"github.com/aivista/aivista/internal/app/system/sanitize"
	"github.com/aivista/aivista/internal/app/system/tenant"
	"github.com/aivista/aivista/internal/app/system/webutil"
	"github.com/aivista/aivista/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Users: userstore.New(db), Log: logger}
}

// List handles GET /api/users. Admin only. The password hash never leaves
// the model (json:"-"), so the full documents are safe to return.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if !authz.IsAdmin(r) {
		metrics.RecordScopeDenied()
		webutil.Error(w, h.Log, apperr.New(apperr.UnauthorizedScope, "admin access required"))
		return
	}

	users, err := h.Users.List(r.Context())
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	webutil.JSON(w, http.StatusOK, users)
}

type createRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	ClientID string `json:"clientId"`
}

// Create handles POST /api/users. Admin only. A client user created without
// a tenant id gets a fresh one minted, so every client account is scopeable
// from birth.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if !authz.IsAdmin(r) {
		metrics.RecordScopeDenied()
		webutil.Error(w, h.Log, apperr.New(apperr.UnauthorizedScope, "admin access required"))
		return
	}

	var req createRequest
	if err := webutil.Decode(r, &req); err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		webutil.Error(w, h.Log, apperr.New(apperr.Validation, "email and password required"))
		return
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = tenant.RoleClient
	}
	clientID := strings.TrimSpace(req.ClientID)
	if role == tenant.RoleClient && clientID == "" {
		clientID = uuid.NewString()
	}

	u, err := h.Users.Create(r.Context(), models.User{
		Email:    req.Email,
		Name:     sanitize.Text(req.Name),
		Role:     role,
		ClientID: clientID,
	}, req.Password)
	if err != nil {
		webutil.Error(w, h.Log, err)
		return
	}

	h.Log.Info("user created",
		zap.String("email", u.Email),
		zap.String("role", u.Role),
		zap.String("clientId", u.ClientID))
	webutil.JSON(w, http.StatusCreated, u)
}
