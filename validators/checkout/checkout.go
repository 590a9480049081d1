package checkoutValidator

import (
	"coursecart/middleware"

	"github.com/gofiber/fiber/v2"
)

// CheckoutItem is one purchased course with its price snapshot
type CheckoutItem struct {
	ID    uint    `json:"id"` // course id
	Price float64 `json:"price"`
}

// CheckoutRequest is the checkout request body
type CheckoutRequest struct {
	UserID       uint           `json:"userId"`
	Items        []CheckoutItem `json:"items"`
	Total        float64        `json:"total"`
	DiscountCode string         `json:"discountCode"`
}

// Checkout validator middleware
func Checkout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CheckoutRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if len(reqData.Items) == 0 {
			errors["items"] = "At least one item is required!"
		}
		for _, item := range reqData.Items {
			if item.ID == 0 {
				errors["items"] = "Each item must reference a course!"
				break
			}
		}
		if reqData.Total < 0 {
			errors["total"] = "Total cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCheckout", reqData)
		return c.Next()
	}
}
