package handlers

import (
	"context"
	"net/http"
	"time"

	"blogapi/internal/logger"
	helpers "blogapi/internal/utils/helpres"

	"go.uber.org/zap"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary Проверка доступности хранилища
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} helpers.ErrorResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.WithCtx(r.Context()).Warn("Хранилище недоступно", zap.Error(err))
		helpers.Error(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
