package courseController

import (
	"coursecart/middleware"
	courseModels "coursecart/models/course"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserEnrollmentsAndCertificates(t *testing.T) {
	app, db := setupTest(t)
	app.Get("/api/user/enrollments", middleware.JWTMiddleware, GetUserEnrollments)
	app.Get("/api/user/certificates", middleware.JWTMiddleware, GetUserCertificates)

	course, lessonIDs := seedCourseWithLessons(t, db, 1)
	user := seedEnrolledUser(t, db, course.ID)

	// Completing the single lesson issues a certificate
	_, body := postProgress(t, app, course.ID, user.ID, lessonIDs[0], true)
	require.Equal(t, true, body.Data["allCompleted"])

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	for _, path := range []string{"/api/user/enrollments", "/api/user/certificates"} {
		// No token is rejected
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		req = httptest.NewRequest("GET", path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err = app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	req := httptest.NewRequest("GET", "/api/user/certificates", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	certificates, ok := parsed.Data["certificates"].([]interface{})
	require.True(t, ok)
	require.Len(t, certificates, 1)

	cert := certificates[0].(map[string]interface{})
	require.Equal(t, "Test Course", cert["course_title"])

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&enrollment).Error)
	require.True(t, enrollment.CertificateIssued)
}
