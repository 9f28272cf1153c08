package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nextgen/interview-coach/internal/config"
	"nextgen/interview-coach/internal/handlers"
	"nextgen/interview-coach/internal/repositories"
	"nextgen/interview-coach/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initializes repositories
	var (
		docRepo     repositories.DocumentRepository
		historyRepo repositories.GenerationRepository
	)
	switch cfg.Database.Driver {
	case config.DriverMemory:
		docRepo = repositories.NewMemoryDocumentRepository()
		historyRepo = repositories.NewMemoryGenerationRepository()
		log.Println("⚠️  Using in-memory repositories, history is lost on restart")
	default:
		db, err := config.InitDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}
		docRepo = repositories.NewDocumentRepository(db)
		historyRepo = repositories.NewGenerationRepository(db)
	}
	log.Println("✅ Repositories initialized successfully")

	// Initialize storage
	uploadStorage := services.NewStorageService(cfg.Storage.UploadPath, ".pdf", ".txt")
	if err := uploadStorage.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}
	recordingStorage := services.NewStorageService(cfg.Recording.Path)
	if err := recordingStorage.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create recording directory: %v", err)
	}

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize Qdrant
	var qdrantService services.QdrantService
	if cfg.Qdrant.Enabled() {
		qdrantService, err = services.NewQdrantService(cfg.Qdrant)
		if err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
		}
		if err := qdrantService.InitCollection(ctx); err != nil {
			log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
		}
		defer qdrantService.Close()
		log.Println("✅ Qdrant initialized successfully")
	} else {
		log.Println("⚠️  QDRANT_URL not set, prompts run without reference material")
	}
	knowledge := services.NewKnowledgeBase(geminiService, qdrantService)

	// Initialize pipeline and panels
	pipeline := services.NewPipeline(geminiService, historyRepo, services.NewBusyGuard())
	rng := services.NewRandomSource(uint64(time.Now().UnixNano()))
	genCfg := services.GenerationConfig{
		Temperature:     cfg.Gemini.Temperature,
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
	}

	recorder := services.NewRecorder(
		recordingStorage,
		cfg.Recording.IdleGrace,
		cfg.Recording.ReapInterval,
		time.Now,
	)
	recorder.Start(ctx)

	codeAnalyzer := services.NewCodeAnalyzerService(pipeline, rng, genCfg)
	resumeAnalyzer := services.NewResumeAnalyzerService(pipeline, docRepo, genCfg)
	questionGenerator := services.NewQuestionGeneratorService(pipeline, knowledge, genCfg)
	chatService := services.NewChatService(pipeline, rng, genCfg)
	assessmentService := services.NewAssessmentService(time.Now)
	mockInterviewService := services.NewMockInterviewService(pipeline, recorder, knowledge, rng, genCfg, time.Now)
	communicationService := services.NewCommunicationService(pipeline, recorder, rng, genCfg)

	retention := cfg.Sessions.Retention
	sweeper := services.NewSweeper(cfg.Sessions.SweepInterval,
		services.Sweep{Name: "mock interviews", Fn: func() int { return mockInterviewService.Prune(retention) }},
		services.Sweep{Name: "assessment attempts", Fn: func() int { return assessmentService.Prune(retention) }},
		services.Sweep{Name: "communication analyses", Fn: communicationService.Prune},
	)
	sweeper.Start(ctx)
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	timeout := cfg.Server.RequestTimeout
	h := &handlers.Handlers{
		Code: handlers.NewCodeHandler(codeAnalyzer, timeout),
		Resume: handlers.NewResumeHandler(
			resumeAnalyzer,
			docRepo,
			uploadStorage,
			services.NewDocumentParser(),
			cfg.Storage.MaxFileSize,
			timeout,
		),
		Questions:     handlers.NewQuestionHandler(questionGenerator, timeout),
		Chat:          handlers.NewChatHandler(chatService, timeout),
		Assessments:   handlers.NewAssessmentHandler(assessmentService),
		MockInterview: handlers.NewMockInterviewHandler(mockInterviewService, timeout),
		Communication: handlers.NewCommunicationHandler(communicationService, timeout),
		Results:       handlers.NewResultHandler(historyRepo),
	}
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Interview Coach API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: timeout + 10*time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + handlers.PanelHeader,
	}))

	if cfg.Server.MetricsEnabled {
		services.RegisterMetrics()
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	// Routes
	handlers.RegisterRoutes(app, h)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message":   "Interview Coach API",
			"version":   "1.0.0",
			"endpoints": handlers.Endpoints,
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		recorder.Stop()
		sweeper.Stop()
		cancel()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
