package http

import (
	"context"
	"net/http"
	"time"

	"github.com/cmlabs-hris/working-date-go/internal/handler/http/response"
)

// ReadinessCheck probes one dependency.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthHandler interface {
	Ready(w http.ResponseWriter, r *http.Request)
}

type HealthHandlerImpl struct {
	checks  []ReadinessCheck
	timeout time.Duration
}

func NewHealthHandler(timeout time.Duration, checks ...ReadinessCheck) HealthHandler {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HealthHandlerImpl{checks: checks, timeout: timeout}
}

type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Ready implements HealthHandler. Every check runs; any failure yields 503.
func (h *HealthHandlerImpl) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	body := readinessResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK
	for _, c := range h.checks {
		if err := c.Check(ctx); err != nil {
			body.Checks[c.Name] = err.Error()
			body.Status = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		body.Checks[c.Name] = "ok"
	}

	response.JSON(w, status, body)
}
