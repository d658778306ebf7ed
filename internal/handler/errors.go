package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/errors"
	u "github.com/chaedirdwiantara/bankSavingSystem-API/internal/utils"
)

// handleServiceError maps a service error to its HTTP status. Storage
// failures are logged and answered with a generic message.
func handleServiceError(w http.ResponseWriter, logger *slog.Logger, err error, operation string) {
	switch errors.KindOf(err) {
	case errors.KindValidation:
		u.WriteError(w, http.StatusBadRequest, "validation error", err.Error())
	case errors.KindInsufficientBalance:
		u.WriteError(w, http.StatusBadRequest, "insufficient balance", err.Error())
	case errors.KindNotFound:
		u.WriteError(w, http.StatusNotFound, err.Error(), "")
	case errors.KindConflict:
		u.WriteError(w, http.StatusConflict, "resource in use", err.Error())
	default:
		logger.Error("internal server error during "+operation, "error", err.Error())
		u.WriteError(w, http.StatusInternalServerError, "internal server error", "")
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}, operation string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Warn("invalid "+operation+" request", "error", err.Error())
		u.WriteError(w, http.StatusBadRequest, "invalid request payload", err.Error())
		return false
	}
	return true
}
