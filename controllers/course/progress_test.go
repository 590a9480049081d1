package courseController

import (
	"bytes"
	"coursecart/config"
	"coursecart/database"
	"coursecart/models"
	courseModels "coursecart/models/course"
	courseValidator "coursecart/validators/course"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/api/courses/", GetCourses)
	app.Get("/api/courses/:courseId", courseValidator.CourseID(), GetCourseDetails)
	app.Get("/api/courses/:courseId/progress", courseValidator.CourseID(), GetCourseProgress)
	app.Post("/api/courses/:courseId/progress/update", courseValidator.CourseID(), courseValidator.UpdateProgress(), UpdateLessonProgress)
	return app, db
}

// seedCourseWithLessons creates a course with one module holding the given
// number of lessons and returns the course and lesson ids.
func seedCourseWithLessons(t *testing.T, db *gorm.DB, lessonCount int) (courseModels.Course, []uint) {
	t.Helper()

	course := courseModels.Course{Title: "Test Course", IsPublished: true}
	require.NoError(t, db.Create(&course).Error)

	module := courseModels.CourseModule{CourseID: course.ID, Title: "Module 1", Position: 1}
	require.NoError(t, db.Create(&module).Error)

	lessonIDs := make([]uint, lessonCount)
	for i := 0; i < lessonCount; i++ {
		lesson := courseModels.CourseLesson{
			ModuleID: module.ID,
			Title:    fmt.Sprintf("Lesson %d", i+1),
			Position: i + 1,
		}
		require.NoError(t, db.Create(&lesson).Error)
		lessonIDs[i] = lesson.ID
	}
	return course, lessonIDs
}

func seedEnrolledUser(t *testing.T, db *gorm.DB, courseID uint) models.User {
	t.Helper()

	user := models.User{Name: "Student", Email: fmt.Sprintf("student%d@x.com", time.Now().UnixNano()), Password: "hash"}
	require.NoError(t, db.Create(&user).Error)

	enrollment := courseModels.Enrollment{UserID: user.ID, CourseID: courseID, EnrolledAt: time.Now()}
	require.NoError(t, db.Create(&enrollment).Error)
	return user
}

func postProgress(t *testing.T, app *fiber.App, courseID, userID, lessonID uint, completed bool) (*http.Response, apiResponse) {
	t.Helper()

	payload, err := json.Marshal(fiber.Map{
		"userId":    userID,
		"lessonId":  lessonID,
		"completed": completed,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", fmt.Sprintf("/api/courses/%d/progress/update", courseID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func getProgress(t *testing.T, app *fiber.App, courseID uint, query string) (*http.Response, apiResponse) {
	t.Helper()

	req := httptest.NewRequest("GET", fmt.Sprintf("/api/courses/%d/progress%s", courseID, query), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func TestProgressCompletionIssuesCertificate(t *testing.T) {
	app, db := setupTest(t)
	course, lessonIDs := seedCourseWithLessons(t, db, 2)
	user := seedEnrolledUser(t, db, course.ID)

	resp, body := postProgress(t, app, course.ID, user.ID, lessonIDs[0], true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, false, body.Data["allCompleted"])

	resp, body = getProgress(t, app, course.ID, fmt.Sprintf("?userId=%d", user.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body.Data["enrolled"])
	require.Equal(t, float64(50), body.Data["progress"])
	require.Len(t, body.Data["lessons"], 2)

	resp, body = postProgress(t, app, course.ID, user.ID, lessonIDs[1], true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body.Data["allCompleted"])

	certificateNumber, ok := body.Data["certificateNumber"].(string)
	require.True(t, ok)
	require.Contains(t, certificateNumber, fmt.Sprintf("CC-%d-%d-", user.ID, course.ID))

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	require.True(t, enrollment.CertificateIssued)
	require.NotNil(t, enrollment.CompletedAt)
}

func TestCertificateIssuedOnlyOnce(t *testing.T) {
	app, db := setupTest(t)
	course, lessonIDs := seedCourseWithLessons(t, db, 1)
	user := seedEnrolledUser(t, db, course.ID)

	_, first := postProgress(t, app, course.ID, user.ID, lessonIDs[0], true)
	require.Equal(t, true, first.Data["allCompleted"])

	// An identical confirmation re-reports completion with the same number
	_, second := postProgress(t, app, course.ID, user.ID, lessonIDs[0], true)
	require.Equal(t, true, second.Data["allCompleted"])
	require.Equal(t, first.Data["certificateNumber"], second.Data["certificateNumber"])

	var certCount int64
	db.Model(&courseModels.Certificate{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&certCount)
	require.EqualValues(t, 1, certCount)
}

func TestProgressUpsertOverwrites(t *testing.T) {
	app, db := setupTest(t)
	course, lessonIDs := seedCourseWithLessons(t, db, 2)
	user := seedEnrolledUser(t, db, course.ID)

	postProgress(t, app, course.ID, user.ID, lessonIDs[0], true)
	postProgress(t, app, course.ID, user.ID, lessonIDs[0], false)

	var rows []courseModels.UserProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lessonIDs[0]).Find(&rows).Error)
	require.Len(t, rows, 1, "upsert keeps a single row per (user, lesson)")
	require.False(t, rows[0].Completed)
	require.Nil(t, rows[0].CompletedAt)
}

func TestProgressRequiresUserID(t *testing.T) {
	app, db := setupTest(t)
	course, _ := seedCourseWithLessons(t, db, 1)

	resp, _ := getProgress(t, app, course.ID, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProgressNotEnrolled(t *testing.T) {
	app, db := setupTest(t)
	course, _ := seedCourseWithLessons(t, db, 1)

	user := models.User{Name: "Outsider", Email: "out@x.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)

	resp, body := getProgress(t, app, course.ID, fmt.Sprintf("?userId=%d", user.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, false, body.Data["enrolled"])
}

func TestEmptyCourseNeverCompletes(t *testing.T) {
	app, db := setupTest(t)
	course, _ := seedCourseWithLessons(t, db, 0)
	user := seedEnrolledUser(t, db, course.ID)

	resp, body := getProgress(t, app, course.ID, fmt.Sprintf("?userId=%d", user.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(0), body.Data["progress"])

	var certCount int64
	db.Model(&courseModels.Certificate{}).Count(&certCount)
	require.EqualValues(t, 0, certCount)
}

func TestUpdateProgressUnknownLesson(t *testing.T) {
	app, db := setupTest(t)
	course, _ := seedCourseWithLessons(t, db, 1)
	user := seedEnrolledUser(t, db, course.ID)

	resp, _ := postProgress(t, app, course.ID, user.ID, 9999, true)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateProgressValidation(t *testing.T) {
	app, db := setupTest(t)
	course, _ := seedCourseWithLessons(t, db, 1)

	payload := []byte(`{"lessonId": 1}`)
	req := httptest.NewRequest("POST", fmt.Sprintf("/api/courses/%d/progress/update", course.ID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProgressPercentRounding(t *testing.T) {
	require.Equal(t, 0, progressPercent(0, 0))
	require.Equal(t, 0, progressPercent(0, 3))
	require.Equal(t, 33, progressPercent(1, 3))
	require.Equal(t, 67, progressPercent(2, 3))
	require.Equal(t, 100, progressPercent(3, 3))
	require.Equal(t, 50, progressPercent(1, 2))
}
