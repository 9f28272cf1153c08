package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"nextgen/interview-coach/internal/models"
	"nextgen/interview-coach/internal/services"
)

type CommunicationHandler struct {
	trainer services.CommunicationService
	timeout time.Duration
}

func NewCommunicationHandler(trainer services.CommunicationService, timeout time.Duration) *CommunicationHandler {
	return &CommunicationHandler{trainer: trainer, timeout: timeout}
}

// HandleExercises handles GET /communication/exercises?type=&difficulty=
func (h *CommunicationHandler) HandleExercises(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"types":     services.ExerciseTypes,
		"exercises": h.trainer.Exercises(c.Query("type"), c.Query("difficulty")),
	})
}

// HandleStartRecording handles POST /communication/recordings
func (h *CommunicationHandler) HandleStartRecording(c *fiber.Ctx) error {
	var req models.StartRecordingRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}

	session, err := h.trainer.StartRecording(panelKey(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// HandleChunk handles POST /communication/recordings/:id/chunks
func (h *CommunicationHandler) HandleChunk(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, "recording")
	}

	session, err := h.trainer.AppendChunk(id, c.Body())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(session)
}

// HandleStop handles POST /communication/recordings/:id/stop
func (h *CommunicationHandler) HandleStop(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, "recording")
	}

	var req models.StopRecordingRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return invalidPayload(c)
		}
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	result, err := h.trainer.StopRecording(ctx, panelKey(c), id, req.Transcript)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
