package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"nextgen/interview-coach/internal/models"
	"nextgen/interview-coach/internal/services"
)

type AssessmentHandler struct {
	assessments services.AssessmentService
}

func NewAssessmentHandler(assessments services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

// HandleList handles GET /assessments?category=
func (h *AssessmentHandler) HandleList(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"categories":  services.SkillCategories,
		"assessments": h.assessments.Catalog(c.Query("category")),
	})
}

// HandleStart handles POST /assessments/:id/start
func (h *AssessmentHandler) HandleStart(c *fiber.Ctx) error {
	attempt, err := h.assessments.Start(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(attempt)
}

// HandleGet handles GET /attempts/:id
func (h *AssessmentHandler) HandleGet(c *fiber.Ctx) error {
	return h.withAttempt(c, h.assessments.Get)
}

// HandleAnswer handles POST /attempts/:id/answers
func (h *AssessmentHandler) HandleAnswer(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, "attempt")
	}

	var req models.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}
	if req.QuestionID == "" || req.Answer == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "question_id and answer are required",
		})
	}

	attempt, err := h.assessments.Answer(id, req.QuestionID, *req.Answer)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(attempt)
}

// HandlePause handles POST /attempts/:id/pause
func (h *AssessmentHandler) HandlePause(c *fiber.Ctx) error {
	return h.withAttempt(c, h.assessments.Pause)
}

// HandleResume handles POST /attempts/:id/resume
func (h *AssessmentHandler) HandleResume(c *fiber.Ctx) error {
	return h.withAttempt(c, h.assessments.Resume)
}

// HandleFinish handles POST /attempts/:id/finish
func (h *AssessmentHandler) HandleFinish(c *fiber.Ctx) error {
	return h.withAttempt(c, h.assessments.Finish)
}

func (h *AssessmentHandler) withAttempt(c *fiber.Ctx, op func(uuid.UUID) (*models.AssessmentAttempt, error)) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, "attempt")
	}

	attempt, err := op(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(attempt)
}
