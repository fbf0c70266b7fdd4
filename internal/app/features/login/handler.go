// Package login serves the credential check and session endpoints.
package login

import (
	"net/http"
	"strings"
	"time"

	userstore "github.com/aivista/aivista/internal/app/store/users"
	"github.com/aivista/aivista/internal/app/system/apperr"
	"github.com/aivista/aivista/internal/app/system/auth"
	"github.com/aivista/aivista/internal/app/system/ratelimit"
	"github.com/aivista/aivista/internal/app/system/webutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Users   *userstore.Store
	Limiter *ratelimit.Limiter
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Users:   userstore.New(db),
		Limiter: ratelimit.New(10, time.Minute),
		Log:     logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/login. A bad email and a bad password produce the
// same response so the endpoint does not leak which emails exist.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ClientIP(r)
	if !h.Limiter.Allow(ip) {
		h.Log.Warn("login rate limited", zap.String("ip", ip))
		webutil.JSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many attempts, try again later"})
		return
	}

	var req loginRequest
	if err := webutil.Decode(r, &req); err != nil {
		webutil.Error(w, h.Log, err)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		webutil.Error(w, h.Log, apperr.New(apperr.Validation, "email and password required"))
		return
	}

	u, err := h.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if userstore.IsNotFound(err) {
			webutil.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		webutil.Error(w, h.Log, err)
		return
	}

	ok, legacy := userstore.VerifyPassword(u, req.Password)
	if !ok {
		webutil.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		return
	}
	if legacy {
		h.Log.Warn("user authenticated with legacy plaintext credential",
			zap.String("email", u.Email))
	}
	if u.Status == userstore.StatusDisabled {
		webutil.JSON(w, http.StatusUnauthorized, map[string]string{"error": "account disabled"})
		return
	}

	h.Limiter.Reset(ip)

	if err := h.Users.TouchLastLogin(r.Context(), u.ID); err != nil {
		h.Log.Warn("failed to stamp last login", zap.Error(err))
	}

	if err := auth.SignIn(w, r, auth.SessionUser{
		ID:       u.ID.Hex(),
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		TenantID: u.ClientID,
	}); err != nil {
		h.Log.Error("session save failed", zap.Error(err))
		webutil.Error(w, h.Log, apperr.Wrap(apperr.Storage, "could not establish session", err))
		return
	}

	h.Log.Info("user signed in", zap.String("email", u.Email), zap.String("role", u.Role))
	webutil.JSON(w, http.StatusOK, u)
}

// Logout handles POST /api/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r); err != nil {
		h.Log.Warn("session clear failed", zap.Error(err))
	}
	webutil.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
