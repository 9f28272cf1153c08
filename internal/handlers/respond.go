package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"nextgen/interview-coach/internal/services"
)

// PanelHeader lets a client name its panel instance. Requests without it are
// keyed by client IP.
const PanelHeader = "X-Panel-ID"

func panelKey(c *fiber.Ctx) string {
	if id := c.Get(PanelHeader); id != "" {
		return id
	}
	return c.IP()
}

// requestContext bounds a model call by the configured request timeout.
func requestContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), timeout)
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func invalidID(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid " + what + " ID format",
	})
}

func invalidPayload(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid request payload",
	})
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		status, message = fiber.StatusBadRequest, verr.Message
	case errors.Is(err, services.ErrValidation):
		status, message = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrNotFound):
		status, message = fiber.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrPermission):
		status, message = fiber.StatusForbidden, "Could not access microphone"
	case errors.Is(err, services.ErrBusy):
		status, message = fiber.StatusConflict, "Another request is already in progress"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status, message = fiber.StatusRequestTimeout, "Request cancelled or timed out"
	default:
		log.Printf("❌ %s %s failed: %v", c.Method(), c.Path(), err)
	}

	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}
