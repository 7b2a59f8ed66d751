package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/oggyb/twilio-bridge/internal/response"
)

// HealthChecker reports whether backing services are reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HomeHandler serves basic root and health endpoints.
type HomeHandler struct {
	health HealthChecker
}

// NewHomeHandler returns a new HomeHandler.
func NewHomeHandler(health HealthChecker) *HomeHandler { return &HomeHandler{health: health} }

// Index godoc
// @Summary     Welcome endpoint
// @Description Simple root endpoint that returns a welcome message.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.WelcomeResponse
// @Router      / [get]
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	payload := response.WelcomePayload{
		Message: "Welcome to the Twilio SMS bridge",
	}

	response.RespondJSON(w, http.StatusOK, payload)
}

// Health godoc
// @Summary     Health check
// @Description Returns ok when the API and its cache are reachable.
// @Tags        home
// @Produce     json
// @Success     200 {object} response.HealthResponse
// @Failure     503 {object} response.JSONResponse
// @Router      /health [get]
func (h *HomeHandler) Health(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.health.Health(ctx); err != nil {
			response.RespondError(w, http.StatusServiceUnavailable, "cache unreachable")
			return
		}
	}

	payload := response.HealthPayload{
		Status: "ok",
	}

	response.RespondJSON(w, http.StatusOK, payload)
}
