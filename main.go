package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"

	"blububb/internal/handlers"
	"blububb/internal/services"
	"blububb/internal/store"
	"blububb/pkg/events"
)

func main() {
	// --- Configuration ---
	// Viper reads from environment variables with sensible local defaults.
	viper.SetDefault("APP_PORT", ":5000")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("STATIC_DIR", "web")
	viper.SetDefault("STORAGE_DRIVER", "file") // file | sqlite | postgres
	viper.SetDefault("DATABASE_PATH", "blububb.db")
	viper.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=blububb port=5432 sslmode=disable")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "blububb123")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publication
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	staticDir := viper.GetString("STATIC_DIR")
	uploadDir := viper.GetString("UPLOAD_DIR")

	// --- Initialize Document Store ---
	st, err := newStore()
	if err != nil {
		log.Fatalf("Failed to initialize document store: %v", err)
	}

	// --- Initialize Event Publisher (optional) ---
	var publisher services.Publisher
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err := events.NewClient(events.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	}

	// --- Initialize Services ---
	productService := services.NewProductService(st)
	memberService := services.NewMemberService(st)
	transactionService := services.NewTransactionService(st, publisher)
	reportService := services.NewReportService(st)
	uploadService, err := services.NewUploadService(uploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload service: %v", err)
	}
	adminAuth := services.NewAdminAuthService(
		viper.GetString("ADMIN_USERNAME"),
		viper.GetString("ADMIN_PASSWORD"),
		viper.GetString("JWT_SECRET"),
	)

	// --- Initialize Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	memberHandler := handlers.NewMemberHandler(memberService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	reportHandler := handlers.NewReportHandler(reportService)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	adminHandler := handlers.NewAdminHandler(adminAuth)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger

	// --- API Routes ---
	api := app.Group("/api")
	productHandler.RegisterRoutes(api)
	memberHandler.RegisterRoutes(api)
	transactionHandler.RegisterRoutes(api)
	reportHandler.RegisterRoutes(api)
	uploadHandler.RegisterRoutes(api)
	adminHandler.RegisterRoutes(api)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Static Files ---
	// Uploaded images are served back by filename; the storefront front-end
	// is served from the static directory with an SPA fallback to index.html.
	app.Static("/uploads", uploadDir)
	app.Static("/", staticDir)
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") || strings.HasPrefix(c.Path(), "/uploads/") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Not found",
			})
		}
		return c.SendFile(filepath.Join(staticDir, "index.html"))
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// newStore builds the document store selected by STORAGE_DRIVER. The file
// backend is the default; sqlite and postgres keep the same collection
// documents in a database table instead.
func newStore() (store.Store, error) {
	switch driver := viper.GetString("STORAGE_DRIVER"); driver {
	case "sqlite":
		return store.NewSQLiteStore(viper.GetString("DATABASE_PATH"))
	case "postgres":
		return store.NewPostgresStore(viper.GetString("DATABASE_DSN"))
	default:
		return store.NewFileStore(viper.GetString("DATA_DIR"))
	}
}
