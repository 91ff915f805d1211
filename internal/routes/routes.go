package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/disha-labs/disha-backend/internal/handlers"
	"github.com/disha-labs/disha-backend/internal/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(
	app *fiber.App,
	smsHandler *handlers.SMSHandler,
	recommendHandler *handlers.RecommendHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)

	// ========== WEBHOOK ROUTES ==========
	webhooks := app.Group("/webhook")

	// Twilio signature validation is skipped in development so local
	// tunnels keep working.
	if os.Getenv("ENVIRONMENT") == "development" || os.Getenv("DISABLE_WEBHOOK_VALIDATION") == "true" {
		webhooks.Post("/sms", smsHandler.HandleWebhook)
	} else {
		webhooks.Post("/sms", middleware.ValidateTwilioSignature(), smsHandler.HandleWebhook)
	}

	// Test endpoint for development, no Twilio involved
	app.Post("/test/sms", smsHandler.HandleTestWebhook)

	// ========== RANKING PIPELINE ==========
	app.Post("/recommend", recommendHandler.Recommend)
	app.Get("/recommend/:id/alternatives", recommendHandler.Alternatives)

	// ========== ADMIN ROUTES ==========
	admin := app.Group("/admin")
	admin.Get("/sessions", adminHandler.ListSessions)
	admin.Get("/sessions/:phone", adminHandler.GetSession)
	admin.Delete("/sessions/:phone", adminHandler.ResetSession)
	admin.Post("/opportunities", adminHandler.CreateOpportunity)
	admin.Get("/opportunities", adminHandler.ListOpportunities)
	admin.Delete("/opportunities/:id", adminHandler.DeleteOpportunity)
}
