// Package webutil holds the small JSON request/response helpers shared by
// every feature handler.
package webutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aivista/aivista/internal/app/system/apperr"
	"go.uber.org/zap"
)

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Decode reads a JSON request body into v. A malformed body is a
// validation error.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Wrap(apperr.Validation, "invalid request body", err)
	}
	return nil
}

// Error writes err as a JSON error response, choosing the status from the
// error kind. Storage failures are logged; the rest are caller mistakes and
// only surface in the response.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	kind := apperr.KindOf(err)
	status := statusFor(kind)

	if kind == apperr.Storage && log != nil {
		log.Warn("request failed", zap.Error(err))
	}
	// Context cancellation while talking to the store shows up unclassified;
	// it is already mapped to Storage by KindOf.
	if errors.Is(err, http.ErrHandlerTimeout) {
		status = http.StatusServiceUnavailable
	}

	JSON(w, status, map[string]string{"error": apperr.Message(err)})
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.Validation:
		return http.StatusBadRequest
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.UnauthorizedScope:
		return http.StatusForbidden
	case apperr.Conflict:
		return http.StatusConflict
	default:
		return http.StatusServiceUnavailable
	}
}
