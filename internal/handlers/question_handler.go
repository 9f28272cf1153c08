package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"nextgen/interview-coach/internal/models"
	"nextgen/interview-coach/internal/services"
)

type QuestionHandler struct {
	generator services.QuestionGeneratorService
	timeout   time.Duration
}

func NewQuestionHandler(generator services.QuestionGeneratorService, timeout time.Duration) *QuestionHandler {
	return &QuestionHandler{generator: generator, timeout: timeout}
}

// HandleOptions handles GET /questions/options
func (h *QuestionHandler) HandleOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"roles":        services.JobRoles,
		"experience":   services.ExperienceLevels,
		"types":        services.QuestionTypes,
		"difficulties": services.DifficultyLevels,
	})
}

// HandleGenerate handles POST /questions/generate
func (h *QuestionHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	result, err := h.generator.Generate(ctx, panelKey(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
