package courseController

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetCoursesListsCatalog(t *testing.T) {
	app, db := setupTest(t)
	seedCourseWithLessons(t, db, 2)
	seedCourseWithLessons(t, db, 1)

	req := httptest.NewRequest("GET", "/api/courses/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	require.Len(t, parsed.Data["courses"], 2)
}

func TestGetCourseDetails(t *testing.T) {
	app, db := setupTest(t)
	course, lessonIDs := seedCourseWithLessons(t, db, 3)

	req := httptest.NewRequest("GET", fmt.Sprintf("/api/courses/%d", course.ID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	modules, ok := parsed.Data["modules"].([]interface{})
	require.True(t, ok)
	require.Len(t, modules, 1)

	lessons, ok := modules[0].(map[string]interface{})["lessons"].([]interface{})
	require.True(t, ok)
	require.Len(t, lessons, len(lessonIDs))
}

func TestGetCourseDetailsNotFound(t *testing.T) {
	app, _ := setupTest(t)

	req := httptest.NewRequest("GET", "/api/courses/4242", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/courses/not-a-number", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
