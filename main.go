package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/disha-labs/disha-backend/database"
	"github.com/disha-labs/disha-backend/internal/dialog"
	"github.com/disha-labs/disha-backend/internal/handlers"
	"github.com/disha-labs/disha-backend/internal/i18n"
	"github.com/disha-labs/disha-backend/internal/jobs"
	"github.com/disha-labs/disha-backend/internal/knowledge"
	"github.com/disha-labs/disha-backend/internal/models"
	"github.com/disha-labs/disha-backend/internal/recommend"
	"github.com/disha-labs/disha-backend/internal/routes"
	"github.com/disha-labs/disha-backend/internal/sms"
	"github.com/disha-labs/disha-backend/internal/storage"
)

const version = "1.0.0"

func main() {
	// Load .env file for local development
	if os.Getenv("INSTANCE_CONNECTION_NAME") == "" {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("⚠️  No .env file found - checking environment variables")
		}
	}

	// Initialize storage
	var store storage.Store
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		db, err := database.Connect()
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}

		log.Println("🔄 Running database migrations...")
		if err := db.AutoMigrate(&models.Session{}, &models.Opportunity{}); err != nil {
			log.Fatal("Failed to migrate database: ", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(db)
	}

	// Outbound channel. The dialog still works without it: form posts
	// get their reply in the TwiML response.
	var sender sms.Sender
	twilioSender, err := sms.NewTwilioSender()
	if err != nil {
		log.Printf("⚠️  Twilio not configured, replies limited to webhook response: %v", err)
	} else {
		sender = twilioSender
		log.Println("✅ Twilio sender initialized")
	}

	// Static configuration: phrase tables, question flows and the
	// knowledge base are loaded once and never mutated.
	translator := i18n.NewTranslator()
	kb := knowledge.NewBase()

	manager := dialog.NewManager(store, kb, translator)
	recommendService := recommend.NewService(store, nil)

	sweep := jobs.NewCatalogSweepJob(store, 6*time.Hour)
	sweep.Start()

	app := fiber.New(fiber.Config{
		AppName: "Disha Backend v" + version,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Service overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "Disha Backend API",
			"version": version,
			"status":  "healthy",
			"storage": storageType(),
			"endpoints": fiber.Map{
				"health":    "/health",
				"webhook":   "/webhook/sms",
				"test_sms":  "/test/sms",
				"recommend": "/recommend",
				"admin":     "/admin",
			},
		})
	})

	smsHandler := handlers.NewSMSHandler(manager, sender)
	recommendHandler := handlers.NewRecommendHandler(recommendService)
	adminHandler := handlers.NewAdminHandler(store, manager)
	healthHandler := handlers.NewHealthHandler(version, storageType())

	routes.SetupRoutes(app, smsHandler, recommendHandler, adminHandler, healthHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		sweep.Stop()
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 Disha Backend starting on port %s", port)
	log.Printf("📊 Storage: %s", storageType())
	log.Printf("📱 SMS delivery: %s", senderStatus(sender))
	log.Println("========================================")

	log.Fatal(app.Listen(":" + port))
}

func storageType() string {
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}

func senderStatus(sender sms.Sender) string {
	if sender == nil {
		return "Webhook reply only"
	}
	return "Twilio configured"
}
