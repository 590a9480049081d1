package checkoutRoutes

import (
	checkoutController "coursecart/controllers/checkout"
	checkoutValidator "coursecart/validators/checkout"

	"github.com/gofiber/fiber/v2"
)

// SetupCheckoutRoutes registers checkout and discount endpoints
func SetupCheckoutRoutes(app *fiber.App) {
	app.Post("/api/checkout", checkoutValidator.Checkout(), checkoutController.Checkout)
	app.Get("/api/discounts/:code", checkoutController.GetDiscountCode)
}
