package courseController

import (
	"coursecart/database"
	"coursecart/middleware"
	"coursecart/models"
	courseModels "coursecart/models/course"
	"coursecart/utils"
	courseValidator "coursecart/validators/course"
	"errors"
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LessonProgress is one lesson with the user's completion state
type LessonProgress struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// GetCourseProgress reports a user's per-lesson completion and the derived
// percentage for one course.
func GetCourseProgress(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	userID := c.QueryInt("userId")
	if userID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User ID is required!", nil)
	}

	db := database.Database.Db

	// Not enrolled is a normal answer, not an error
	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User is not enrolled in this course.", fiber.Map{
			"enrolled": false,
		})
	}

	lessons, err := courseLessons(db, uint(courseID))
	if err != nil {
		log.Printf("Error fetching lessons for course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	completedByLesson, err := completedLessonMap(db, uint(userID), lessons)
	if err != nil {
		log.Printf("Error fetching progress for user %d in course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	result := make([]LessonProgress, len(lessons))
	completedCount := 0
	for i, lesson := range lessons {
		entry := LessonProgress{ID: lesson.ID, Title: lesson.Title}
		if progress, ok := completedByLesson[lesson.ID]; ok && progress.Completed {
			entry.Completed = true
			entry.CompletedAt = progress.CompletedAt
			completedCount++
		}
		result[i] = entry
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrolled": true,
		"progress": progressPercent(completedCount, len(lessons)),
		"lessons":  result,
	})
}

// UpdateLessonProgress upserts the (user, lesson) progress row, re-derives
// course completion and issues a certificate when the course just reached 100%.
func UpdateLessonProgress(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProgress").(*courseValidator.UpdateProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// The course is derived from the lesson's module rather than trusted
	// from the route.
	var lesson courseModels.CourseLesson
	if err := db.Where("id = ? AND is_deleted = ?", reqData.LessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var module courseModels.CourseModule
	if err := db.Where("id = ?", lesson.ModuleID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}
	courseID := module.CourseID

	progress := courseModels.UserProgress{
		UserID:    reqData.UserID,
		LessonID:  reqData.LessonID,
		Completed: reqData.Completed,
	}
	if reqData.Completed {
		now := time.Now()
		progress.CompletedAt = &now
	}

	// At most one row per (user, lesson); re-sending overwrites the flag
	// and timestamp.
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at", "updated_at"}),
	}).Create(&progress).Error
	if err != nil {
		log.Printf("Error upserting progress for user %d lesson %d: %v", reqData.UserID, reqData.LessonID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	lessons, err := courseLessons(db, courseID)
	if err != nil {
		log.Printf("Error fetching lessons for course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	completedByLesson, err := completedLessonMap(db, reqData.UserID, lessons)
	if err != nil {
		log.Printf("Error fetching progress for user %d in course %d: %v", reqData.UserID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	completedCount := 0
	for _, l := range lessons {
		if row, ok := completedByLesson[l.ID]; ok && row.Completed {
			completedCount++
		}
	}

	// A course with zero lessons never completes
	allCompleted := len(lessons) > 0 && completedCount == len(lessons)
	if !allCompleted {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", fiber.Map{
			"allCompleted": false,
		})
	}

	certificateNumber, err := issueCertificate(db, reqData.UserID, courseID)
	if err != nil {
		log.Printf("Error issuing certificate for user %d course %d: %v", reqData.UserID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course completed, certificate issued!", fiber.Map{
		"allCompleted":      true,
		"certificateNumber": certificateNumber,
	})
}

// issueCertificate mints at most one certificate per (user, course). A second
// call returns the existing number instead of creating another row.
func issueCertificate(db *gorm.DB, userID, courseID uint) (string, error) {
	var existing courseModels.Certificate
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return existing.CertificateNumber, nil
	}

	certificate := courseModels.Certificate{
		UserID:            userID,
		CourseID:          courseID,
		CertificateNumber: utils.CertificateNumber(userID, courseID),
		IssuedAt:          time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&certificate).Error; err != nil {
			return err
		}

		now := time.Now()
		return tx.Model(&courseModels.Enrollment{}).
			Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
			Updates(map[string]interface{}{
				"certificate_issued": true,
				"completed_at":       &now,
			}).Error
	})

	if err != nil {
		// Lost a race against a concurrent issuance; the winner's row is
		// the certificate.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if lookupErr := db.Where("user_id = ? AND course_id = ?", userID, courseID).
				First(&existing).Error; lookupErr == nil {
				return existing.CertificateNumber, nil
			}
		}
		return "", err
	}

	notifyCertificateIssued(db, userID, courseID, certificate.CertificateNumber)

	return certificate.CertificateNumber, nil
}

// notifyCertificateIssued sends the certificate email and webhook, best effort
func notifyCertificateIssued(db *gorm.DB, userID, courseID uint, certificateNumber string) {
	var user models.User
	if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
		log.Printf("Error fetching user %d for certificate notification: %v", userID, err)
		return
	}

	var course courseModels.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		log.Printf("Error fetching course %d for certificate notification: %v", courseID, err)
		return
	}

	utils.SendCertificateEmail(user.Email, user.Name, course.Title, certificateNumber)
	go utils.NotifyCertificateWebhook(userID, courseID, certificateNumber)
}

// courseLessons returns every lesson belonging to the course, via its modules
func courseLessons(db *gorm.DB, courseID uint) ([]courseModels.CourseLesson, error) {
	var moduleIDs []uint
	if err := db.Model(&courseModels.CourseModule{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("position asc").
		Pluck("id", &moduleIDs).Error; err != nil {
		return nil, err
	}

	if len(moduleIDs) == 0 {
		return nil, nil
	}

	var lessons []courseModels.CourseLesson
	if err := db.Where("module_id IN ? AND is_deleted = ?", moduleIDs, false).
		Order("module_id asc, position asc").
		Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// completedLessonMap fetches the user's progress rows for the given lessons
func completedLessonMap(db *gorm.DB, userID uint, lessons []courseModels.CourseLesson) (map[uint]courseModels.UserProgress, error) {
	result := make(map[uint]courseModels.UserProgress, len(lessons))
	if len(lessons) == 0 {
		return result, nil
	}

	lessonIDs := make([]uint, len(lessons))
	for i, lesson := range lessons {
		lessonIDs[i] = lesson.ID
	}

	var rows []courseModels.UserProgress
	if err := db.Where("user_id = ? AND lesson_id IN ?", userID, lessonIDs).Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.LessonID] = row
	}
	return result, nil
}

// progressPercent rounds completion to a whole percentage, 0 for empty courses
func progressPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
