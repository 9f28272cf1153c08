package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"nextgen/interview-coach/internal/models"
	"nextgen/interview-coach/internal/services"
)

type MockInterviewHandler struct {
	interviews services.MockInterviewService
	timeout    time.Duration
}

func NewMockInterviewHandler(interviews services.MockInterviewService, timeout time.Duration) *MockInterviewHandler {
	return &MockInterviewHandler{interviews: interviews, timeout: timeout}
}

// HandleOptions handles GET /mock-interviews/options
func (h *MockInterviewHandler) HandleOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"roles":        services.JobRoles,
		"companies":    services.Companies,
		"types":        services.InterviewTypes,
		"difficulties": services.DifficultyLevels,
	})
}

// HandleStart handles POST /mock-interviews
func (h *MockInterviewHandler) HandleStart(c *fiber.Ctx) error {
	var req models.StartInterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}

	session, err := h.interviews.Start(panelKey(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// HandleGet handles GET /mock-interviews/:id
func (h *MockInterviewHandler) HandleGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, "interview")
	}

	session, err := h.interviews.Get(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// HandleNext handles POST /mock-interviews/:id/next
func (h *MockInterviewHandler) HandleNext(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, "interview")
	}

	session, err := h.interviews.Next(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// HandleRecording handles POST /mock-interviews/:id/recording. The raw body
// is one media chunk.
func (h *MockInterviewHandler) HandleRecording(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, "interview")
	}

	recording, err := h.interviews.AppendRecording(id, c.Body())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(recording)
}

// HandleEnd handles POST /mock-interviews/:id/end
func (h *MockInterviewHandler) HandleEnd(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, "interview")
	}

	var req models.EndInterviewRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return invalidPayload(c)
		}
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	result, err := h.interviews.End(ctx, panelKey(c), id, req.Transcript)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
