package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"recruitly/cv-assistant/internal/config"
	"recruitly/cv-assistant/internal/handlers"
	"recruitly/cv-assistant/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize services
	storageService := services.NewStorageService()
	pdfParser := services.NewPDFParserService()
	resultParser := services.NewResultParser()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI once; the client is shared read-only by all requests
	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.MaxOutputTokens,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Printf("✅ Gemini AI initialized successfully (model: %s)", geminiService.ModelName())

	analysisClient := services.NewAnalysisClient(geminiService, cfg.Gemini.Temperature)
	worker := services.NewWorker(cfg.Analysis.Concurrency)
	analyzerService := services.NewAnalyzerService(pdfParser, analysisClient, worker)
	log.Printf("✅ Analyzer service initialized (concurrency: %d)", worker.Concurrency())

	// Initialize Handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService, storageService)
	parseHandler := handlers.NewParseHandler(resultParser)
	log.Println("✅ Handlers initialized")

	// Create Fiber app. No write timeout: a batch runs until every file is analyzed.
	app := fiber.New(fiber.Config{
		AppName:      "Recruitly AI CV Assistant API",
		ReadTimeout:  30 * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept",
		ExposeHeaders: handlers.AnalysisIDHeader,
	}))

	// Routes
	handlers.SetupRoutes(app, analyzeHandler, parseHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
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
