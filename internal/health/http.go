package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/sales-insights/pkg/logger"
	"github.com/tair/sales-insights/pkg/respond"
)

const checkTimeout = 2 * time.Second

// Handler serves GET /health
type Handler struct {
	checker     Checker
	serviceName string
}

func NewHandler(checker Checker, serviceName string) *Handler {
	return &Handler{checker: checker, serviceName: serviceName}
}

// RegisterRoutes registers the health check endpoint
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} respond.Response
// @Failure 503 {object} respond.Response
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	if err := h.checker.Check(ctx); err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Health check failed")
		respond.Error(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	respond.JSON(w, http.StatusOK, respond.Response{
		Success: true,
		Message: h.serviceName + " is healthy",
	})
}
