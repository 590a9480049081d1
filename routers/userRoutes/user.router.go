package userRoutes

import (
	courseController "coursecart/controllers/course"
	"coursecart/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes registers JWT-protected user-scoped endpoints
func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/api/user", middleware.JWTMiddleware)

	user.Get("/enrollments", courseController.GetUserEnrollments)
	user.Get("/certificates", courseController.GetUserCertificates)
}
