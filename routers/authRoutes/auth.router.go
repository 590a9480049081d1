package authRoutes

import (
	authController "coursecart/controllers/auth"
	authValidator "coursecart/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes registers registration and login endpoints
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", authValidator.Register(), authController.Register)
	auth.Post("/login", authValidator.Login(), authController.Login)
}
