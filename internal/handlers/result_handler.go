package handlers

import (
	"encoding/json"
	"mime"
	"time"

	"github.com/gofiber/fiber/v2"

	"nextgen/interview-coach/internal/models"
	"nextgen/interview-coach/internal/repositories"
	"nextgen/interview-coach/internal/services"
)

const defaultHistoryLimit = 20

type ResultHandler struct {
	history repositories.GenerationRepository
}

func NewResultHandler(history repositories.GenerationRepository) *ResultHandler {
	return &ResultHandler{history: history}
}

// HandleList handles GET /results?panel=&limit=
func (h *ResultHandler) HandleList(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultHistoryLimit)
	if limit < 0 {
		limit = defaultHistoryLimit
	}

	records, err := h.history.List(models.Panel(c.Query("panel")), limit)
	if err != nil {
		return respondError(c, err)
	}

	entries := make([]models.HistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, models.HistoryEntry{
			ID:            r.ID.String(),
			Panel:         r.Panel,
			Source:        r.Source,
			Title:         r.Title,
			FailureReason: r.FailureReason,
			CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{
		"results": entries,
	})
}

// HandleGet handles GET /results/:id
func (h *ResultHandler) HandleGet(c *fiber.Ctx) error {
	record, err := h.find(c)
	if err != nil || record == nil {
		return err
	}

	return c.JSON(fiber.Map{
		"id":             record.ID,
		"panel":          record.Panel,
		"source":         record.Source,
		"title":          record.Title,
		"failure_reason": record.FailureReason,
		"created_at":     record.CreatedAt,
		"data":           json.RawMessage(record.Payload),
	})
}

// HandleExport handles GET /results/:id/export
func (h *ResultHandler) HandleExport(c *fiber.Ctx) error {
	record, body, err := h.pretty(c)
	if err != nil || record == nil {
		return err
	}

	c.Set(fiber.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{
		"filename": services.ExportFilename(record.Title),
	}))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(body)
}

// HandleCopy handles GET /results/:id/copy
func (h *ResultHandler) HandleCopy(c *fiber.Ctx) error {
	record, body, err := h.pretty(c)
	if err != nil || record == nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Send(body)
}

// find writes the error response itself and returns a nil record when the
// lookup fails.
func (h *ResultHandler) find(c *fiber.Ctx) (*models.GenerationRecord, error) {
	id, err := parseID(c)
	if err != nil {
		return nil, invalidID(c, "result")
	}

	record, err := h.history.FindByID(id)
	if err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Result not found",
		})
	}
	return record, nil
}

func (h *ResultHandler) pretty(c *fiber.Ctx) (*models.GenerationRecord, []byte, error) {
	record, err := h.find(c)
	if err != nil || record == nil {
		return nil, nil, err
	}

	body, err := services.PrettyJSON(json.RawMessage(record.Payload))
	if err != nil {
		return nil, nil, respondError(c, err)
	}
	return record, body, nil
}
