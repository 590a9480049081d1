package courseRoutes

import (
	courseController "coursecart/controllers/course"
	courseValidator "coursecart/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers catalog and progress endpoints
func SetupCourseRoutes(app *fiber.App) {
	courses := app.Group("/api/courses")

	courses.Get("/", courseController.GetCourses)
	courses.Get("/:courseId", courseValidator.CourseID(), courseController.GetCourseDetails)
	courses.Get("/:courseId/progress", courseValidator.CourseID(), courseController.GetCourseProgress)
	courses.Post("/:courseId/progress/update", courseValidator.CourseID(), courseValidator.UpdateProgress(), courseController.UpdateLessonProgress)
}
