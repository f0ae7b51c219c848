package handlers

import (
	"context"
	"errors"
	"net/http"

	"blogapi/internal/logger"
	"blogapi/internal/services"
	helpers "blogapi/internal/utils/helpres"

	"go.uber.org/zap"
)

const (
	msgUsernameTaken = "Username already taken"
	msgIDMismatch    = "Request path id and request body id values must match"
	msgNotFound      = "Not found"
	msgInternal      = "Internal server error"
	msgInvalidJSON   = "Invalid JSON"
)

// writeError маппит ошибки сервисов на HTTP-статусы.
// Детали внутренних ошибок только логируются.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		helpers.Text(w, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, services.ErrConflict):
		helpers.Text(w, http.StatusBadRequest, msgUsernameTaken)
	case errors.Is(err, services.ErrBadRequest):
		helpers.Error(w, http.StatusBadRequest, msgIDMismatch)
	case errors.Is(err, services.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, msgNotFound)
	default:
		logger.WithCtx(ctx).Error("Внутренняя ошибка", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, msgInternal)
	}
}
