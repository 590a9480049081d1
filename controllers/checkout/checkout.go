package checkoutController

import (
	"coursecart/database"
	"coursecart/middleware"
	"coursecart/models"
	courseModels "coursecart/models/course"
	"coursecart/utils"
	checkoutValidator "coursecart/validators/checkout"
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Checkout creates a completed order with its line items and enrolls the
// buyer in each purchased course. The whole sequence runs in one transaction,
// so a mid-sequence failure leaves no partial order behind.
func Checkout(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCheckout").(*checkoutValidator.CheckoutRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User not found!", nil)
	}

	// Recompute the total server-side instead of trusting the caller
	subtotal := 0.0
	for _, item := range reqData.Items {
		subtotal += item.Price
	}

	expectedTotal := subtotal
	if reqData.DiscountCode != "" {
		discount, err := lookupDiscountCode(db, reqData.DiscountCode)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid or expired discount code!", nil)
		}
		expectedTotal = subtotal * (1 - discount.DiscountPercent/100)
	}

	if math.Abs(expectedTotal-reqData.Total) > 0.01 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Order total does not match item prices!", nil)
	}

	order := models.Order{
		UserID:      reqData.UserID,
		TotalAmount: reqData.Total,
		Status:      models.OrderPending,
	}

	var enrolledCourseIDs []uint

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range reqData.Items {
			orderItem := models.OrderItem{
				OrderID:  order.ID,
				CourseID: item.ID,
				Price:    item.Price,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		// Payment is simulated, the order completes as soon as its items exist
		if err := tx.Model(&order).Update("status", models.OrderCompleted).Error; err != nil {
			return err
		}

		for _, item := range reqData.Items {
			// Buying a course twice reuses the existing enrollment
			var existing courseModels.Enrollment
			if err := tx.Where("user_id = ? AND course_id = ? AND is_deleted = ?", reqData.UserID, item.ID, false).
				First(&existing).Error; err == nil {
				continue
			}

			enrollment := courseModels.Enrollment{
				UserID:     reqData.UserID,
				CourseID:   item.ID,
				EnrolledAt: time.Now(),
			}
			if err := tx.Create(&enrollment).Error; err != nil {
				return err
			}
			enrolledCourseIDs = append(enrolledCourseIDs, item.ID)
		}

		return nil
	})

	if err != nil {
		log.Printf("Checkout failed for user %d: %v", reqData.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process checkout!", nil)
	}

	// Enrollment confirmations go out after commit, best effort
	for _, courseID := range enrolledCourseIDs {
		var course courseModels.Course
		if err := db.Where("id = ?", courseID).First(&course).Error; err == nil {
			utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order created successfully.", fiber.Map{
		"orderId": order.ID,
	})
}

// GetDiscountCode validates a discount code for the cart page
func GetDiscountCode(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Discount code is required!", nil)
	}

	discount, err := lookupDiscountCode(database.Database.Db, code)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Discount code not found or expired!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Discount code valid.", fiber.Map{
		"code":            discount.Code,
		"discountPercent": discount.DiscountPercent,
	})
}

// lookupDiscountCode fetches an active, unexpired discount code
func lookupDiscountCode(db *gorm.DB, code string) (*models.DiscountCode, error) {
	var discount models.DiscountCode
	err := db.Where("code = ? AND active = ? AND is_deleted = ?", code, true, false).
		Where("expires_at IS NULL OR expires_at > ?", time.Now()).
		First(&discount).Error
	if err != nil {
		return nil, err
	}
	return &discount, nil
}
