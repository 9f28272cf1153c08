package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"nextgen/interview-coach/internal/models"
	"nextgen/interview-coach/internal/services"
)

type ChatHandler struct {
	chat    services.ChatService
	timeout time.Duration
}

func NewChatHandler(chat services.ChatService, timeout time.Duration) *ChatHandler {
	return &ChatHandler{chat: chat, timeout: timeout}
}

// HandleOptions handles GET /chat/options
func (h *ChatHandler) HandleOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"personalities": services.Personalities,
		"languages":     services.Languages,
		"quick_actions": services.QuickActions,
	})
}

// HandleSend handles POST /chat/messages
func (h *ChatHandler) HandleSend(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	result, err := h.chat.Send(ctx, panelKey(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
