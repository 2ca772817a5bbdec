package webhookRoutes

import (
	controllers "lms/controllers/webhook"

	"github.com/gofiber/fiber/v2"
)

// SetupWebhookRoutes sets up the payment provider callback routes. No auth
// middleware here; the Stripe signature is the authentication.
func SetupWebhookRoutes(app *fiber.App) {
	app.Post("/api/webhook/stripe", controllers.StripeWebhook)
}
