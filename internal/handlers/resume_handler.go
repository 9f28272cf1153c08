package handlers

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"nextgen/interview-coach/internal/models"
	"nextgen/interview-coach/internal/repositories"
	"nextgen/interview-coach/internal/services"
)

type ResumeHandler struct {
	analyzer       services.ResumeAnalyzerService
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	parser         services.DocumentParser
	maxFileSize    int64
	timeout        time.Duration
}

func NewResumeHandler(
	analyzer services.ResumeAnalyzerService,
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	parser services.DocumentParser,
	maxFileSize int64,
	timeout time.Duration,
) *ResumeHandler {
	return &ResumeHandler{
		analyzer:       analyzer,
		docRepo:        docRepo,
		storageService: storageService,
		parser:         parser,
		maxFileSize:    maxFileSize,
		timeout:        timeout,
	}
}

// HandleUpload handles POST /resume/upload
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume uploaded. Please upload 'resume' as a PDF or text file.",
		})
	}

	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".pdf", ".txt":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please upload a PDF or text file",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file, "resume")
	if err != nil {
		return respondError(c, err)
	}

	content, err := h.parser.ExtractText(filePath)
	if err != nil {
		h.cleanup(filename)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to read resume: %v", err),
		})
	}

	doc := models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: file.Filename,
		FileType:         "resume",
		FilePath:         filePath,
		ExtractedText:    content.Text,
		PageCount:        content.PageCount,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		// Cleanup uploaded file if database insert fails
		h.cleanup(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save resume document record",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Resume uploaded successfully",
		"document": models.UploadResponse{
			ID:           doc.ID.String(),
			Filename:     doc.Filename,
			OriginalName: doc.OriginalFileName,
			FileType:     doc.FileType,
			PageCount:    doc.PageCount,
			TextLength:   len(doc.ExtractedText),
		},
	})
}

func (h *ResumeHandler) cleanup(filename string) {
	if err := h.storageService.DeleteFile(filename); err != nil {
		log.Printf("⚠️  Failed to remove %s: %v", filename, err)
	}
}

// HandleAnalyze handles POST /resume/analyze
func (h *ResumeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload(c)
	}

	var documentID *uuid.UUID
	if req.DocumentID != "" {
		id, err := uuid.Parse(req.DocumentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid document_id format",
			})
		}
		documentID = &id
	}

	ctx, cancel := requestContext(c, h.timeout)
	defer cancel()

	result, err := h.analyzer.Analyze(ctx, panelKey(c), req.ResumeText, documentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
