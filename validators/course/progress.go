package courseValidator

import (
	"coursecart/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgressRequest is the lesson progress update body
type UpdateProgressRequest struct {
	UserID    uint `json:"userId"`
	LessonID  uint `json:"lessonId"`
	Completed bool `json:"completed"`
}

// CourseID validates the :courseId route param and stores it as an int
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("courseId"))
		if err != nil || courseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// UpdateProgress validator middleware
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if reqData.LessonID == 0 {
			errors["lessonId"] = "Lesson ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
