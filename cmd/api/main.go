package main

import (
	"errors"
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

	"alfredoptarigan/cv-parser/internal/config"
	"alfredoptarigan/cv-parser/internal/handlers"
	"alfredoptarigan/cv-parser/internal/middleware"
	"alfredoptarigan/cv-parser/internal/models"
	"alfredoptarigan/cv-parser/internal/ratelimiter"
	"alfredoptarigan/cv-parser/internal/services"
)

const (
	appName    = "CV Parser API"
	appVersion = "1.0.0"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize rate limiter (single instance shared across handlers)
	limiter := ratelimiter.New(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	log.Printf("✅ Rate limiter initialized (%d requests / %s)\n", cfg.RateLimit.Requests, cfg.RateLimit.Window)

	// Initialize services
	extractor := services.NewDocumentExtractor()

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	parserService := services.NewCVParserService(
		extractor,
		geminiService,
		cfg.Gemini.Timeout,
		cfg.Gemini.MaxRetries,
		cfg.Gemini.Temperature,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	parseHandler := handlers.NewParseHandler(parserService, cfg.Upload.MaxFileSize)
	docsHandler := handlers.NewDocsHandler(appName, appVersion)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * cfg.Gemini.Timeout,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Rate limiting applies to every route, docs included
	app.Use(middleware.RateLimit(limiter))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/cv/parse", parseHandler.HandleParse)
	api.Get("/openapi.json", docsHandler.HandleOpenAPI)

	// Documentation page
	app.Get("/docs", docsHandler.HandleSwaggerUI)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to " + appName,
			"version": appVersion,
			"endpoints": []string{
				"POST /api/v1/cv/parse",
				"GET /api/v1/health",
				"GET /api/v1/openapi.json",
				"GET /docs",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		limiter.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s/docs\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error: err.Error(),
	})
}
