package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"nextgen/interview-coach/internal/models"
	"nextgen/interview-coach/internal/services"
)

type CodeHandler struct {
	analyzer services.CodeAnalyzerService
	timeout  time.Duration
}

func NewCodeHandler(analyzer services.CodeAnalyzerService, timeout time.Duration) *CodeHandler {
	return &CodeHandler{analyzer: analyzer, timeout: timeout}
}

// HandleAnalyze handles POST /code/analyze
func (h *CodeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	result, err := h.analyzer.Analyze(ctx, panelKey(c), req.Code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
