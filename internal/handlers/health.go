package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

// Check проверка доступности одной зависимости
type Check struct {
	Name string
	Ping func(ctx context.Context) error
	// Optional зависимость без которой сервис работает в деградированном режиме
	Optional bool
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	checks []Check
	logger *zap.Logger
}

// NewHealthHandler создает новый HealthHandler
func NewHealthHandler(logger *zap.Logger, checks ...Check) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		logger: logger,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// run опрашивает зависимости. ready ложно, если недоступна обязательная зависимость.
func (h *HealthHandler) run(ctx context.Context) (resp HealthResponse, ready bool) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	resp = HealthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	ready = true

	for _, c := range h.checks {
		if err := c.Ping(ctx); err != nil {
			h.logger.Warn("health check failed",
				zap.String("dependency", c.Name),
				zap.Bool("optional", c.Optional),
				zap.Error(err),
			)
			resp.Checks[c.Name] = "unavailable"
			resp.Status = "degraded"
			if !c.Optional {
				ready = false
			}
			continue
		}
		resp.Checks[c.Name] = "ok"
	}

	return resp, ready
}

// Health возвращает статус приложения и каждой зависимости
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp, ready := h.run(r.Context())

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, h.logger, status, resp)
}

// Ready возвращает готовность принимать трафик
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if _, ready := h.run(r.Context()); !ready {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
