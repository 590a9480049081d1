package courseController

import (
	"coursecart/database"
	"coursecart/middleware"
	courseModels "coursecart/models/course"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ModuleWithLessons is a course module with its ordered lessons inlined
type ModuleWithLessons struct {
	courseModels.CourseModule
	Lessons []courseModels.CourseLesson `json:"lessons"`
}

// GetCourses lists the published catalog
func GetCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.Where("is_deleted = ? AND is_published = ?", false, true).
		Order("id asc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetCourseDetails returns one course with its modules and lessons,
// ordered by their position fields.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var modules []courseModels.CourseModule
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("position asc").Find(&modules).Error; err != nil {
		log.Printf("Error fetching modules for course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	result := make([]ModuleWithLessons, len(modules))
	for i, module := range modules {
		result[i] = ModuleWithLessons{CourseModule: module}

		var lessons []courseModels.CourseLesson
		if err := database.Database.Db.Where("module_id = ? AND is_deleted = ?", module.ID, false).
			Order("position asc").Find(&lessons).Error; err != nil {
			log.Printf("Error fetching lessons for module %d: %v", module.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
		}
		result[i].Lessons = lessons
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":  course,
		"modules": result,
	})
}
