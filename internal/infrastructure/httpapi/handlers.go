// Package httpapi exposes the tracking and calculation services as a JSON API.
package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Laman1911/AS-Calculation/internal/infrastructure/sse"
	"github.com/Laman1911/AS-Calculation/internal/infrastructure/wiring"
	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/tracking"
)

// Actor recorded in the audit trail for mutations made through the API.
const actor = "api"

type Handlers struct {
	services *wiring.AppServices
	logger   *slog.Logger
	events   *sse.Handler
}

// New builds the handlers and subscribes an event stream to the audit trail.
func New(services *wiring.AppServices, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	events := sse.NewHandler()
	services.Audit.Subscribe(events.Publish)
	return &Handlers{services: services, logger: logger, events: events}
}

// respondError maps domain errors to status codes and writes {"error", "code"}.
func (h *Handlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "INVALID_ARGUMENT"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": "NOT_FOUND"})
	case errors.Is(err, tracking.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "INVALID_TRANSITION"})
	default:
		h.logger.Error("request failed", "path", c.FullPath(), "error", err, "request_id", c.GetString(requestIDKey))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": "INTERNAL"})
	}
}

// paramID parses a path id. Non-numeric input is rejected the same way as a non-positive id.
func paramID(c *gin.Context, name, kind string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, domain.InvalidArgument(kind + " ID must be valid")
	}
	return id, nil
}

func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return domain.InvalidArgument("Invalid request body: " + err.Error())
	}
	return nil
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Events streams audit events as Server-Sent Events.
func (h *Handlers) Events(c *gin.Context) {
	h.events.ServeHTTP(c.Writer, c.Request)
}
