package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every panel handler mounted under the API prefix.
type Handlers struct {
	Code          *CodeHandler
	Resume        *ResumeHandler
	Questions     *QuestionHandler
	Chat          *ChatHandler
	Assessments   *AssessmentHandler
	MockInterview *MockInterviewHandler
	Communication *CommunicationHandler
	Results       *ResultHandler
}

// Endpoints lists the routes registered by RegisterRoutes.
var Endpoints = []string{
	"GET /api/v1/health",
	"POST /api/v1/code/analyze",
	"POST /api/v1/resume/upload",
	"POST /api/v1/resume/analyze",
	"GET /api/v1/questions/options",
	"POST /api/v1/questions/generate",
	"GET /api/v1/chat/options",
	"POST /api/v1/chat/messages",
	"GET /api/v1/assessments",
	"POST /api/v1/assessments/:id/start",
	"GET /api/v1/attempts/:id",
	"POST /api/v1/attempts/:id/answers",
	"POST /api/v1/attempts/:id/pause",
	"POST /api/v1/attempts/:id/resume",
	"POST /api/v1/attempts/:id/finish",
	"GET /api/v1/mock-interviews/options",
	"POST /api/v1/mock-interviews",
	"GET /api/v1/mock-interviews/:id",
	"POST /api/v1/mock-interviews/:id/next",
	"POST /api/v1/mock-interviews/:id/recording",
	"POST /api/v1/mock-interviews/:id/end",
	"GET /api/v1/communication/exercises",
	"POST /api/v1/communication/recordings",
	"POST /api/v1/communication/recordings/:id/chunks",
	"POST /api/v1/communication/recordings/:id/stop",
	"GET /api/v1/results",
	"GET /api/v1/results/:id",
	"GET /api/v1/results/:id/export",
	"GET /api/v1/results/:id/copy",
}

func RegisterRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/code/analyze", h.Code.HandleAnalyze)

	api.Post("/resume/upload", h.Resume.HandleUpload)
	api.Post("/resume/analyze", h.Resume.HandleAnalyze)

	api.Get("/questions/options", h.Questions.HandleOptions)
	api.Post("/questions/generate", h.Questions.HandleGenerate)

	api.Get("/chat/options", h.Chat.HandleOptions)
	api.Post("/chat/messages", h.Chat.HandleSend)

	api.Get("/assessments", h.Assessments.HandleList)
	api.Post("/assessments/:id/start", h.Assessments.HandleStart)
	api.Get("/attempts/:id", h.Assessments.HandleGet)
	api.Post("/attempts/:id/answers", h.Assessments.HandleAnswer)
	api.Post("/attempts/:id/pause", h.Assessments.HandlePause)
	api.Post("/attempts/:id/resume", h.Assessments.HandleResume)
	api.Post("/attempts/:id/finish", h.Assessments.HandleFinish)

	api.Get("/mock-interviews/options", h.MockInterview.HandleOptions)
	api.Post("/mock-interviews", h.MockInterview.HandleStart)
	api.Get("/mock-interviews/:id", h.MockInterview.HandleGet)
	api.Post("/mock-interviews/:id/next", h.MockInterview.HandleNext)
	api.Post("/mock-interviews/:id/recording", h.MockInterview.HandleRecording)
	api.Post("/mock-interviews/:id/end", h.MockInterview.HandleEnd)

	api.Get("/communication/exercises", h.Communication.HandleExercises)
	api.Post("/communication/recordings", h.Communication.HandleStartRecording)
	api.Post("/communication/recordings/:id/chunks", h.Communication.HandleChunk)
	api.Post("/communication/recordings/:id/stop", h.Communication.HandleStop)

	api.Get("/results", h.Results.HandleList)
	api.Get("/results/:id", h.Results.HandleGet)
	api.Get("/results/:id/export", h.Results.HandleExport)
	api.Get("/results/:id/copy", h.Results.HandleCopy)
}

// ErrorHandler renders errors returned from handlers and fiber itself.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
