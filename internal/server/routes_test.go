package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubhashini2006-coder/internship-portal/internal/config"
	"github.com/kirubhashini2006-coder/internship-portal/internal/testutil"
)

func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:           8080,
		Environment:    "test",
		AllowOrigins:   []string{"http://localhost:5173"},
		StorageBackend: config.BackendMemory,
		StorageKey:     "ssp_applications",
		AdminEmail:     "admin@ssp.com",
		AdminPassword:  "admin123",
		AccessKey:      "test-access-key",
		MaxUploadBytes: 1 << 20,
	}
	srv, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)

	return srv, srv.RegisterRoutes().(*gin.Engine)
}

func TestHealth(t *testing.T) {
	_, r := newTestServer(t)

	rec, resp := testutil.MakeJSONRequest(nil, r, "/health", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "up", resp["status"])
	assert.Equal(t, "memory", resp["backend"])
}

func TestAdminRoutesRequireAccessKey(t *testing.T) {
	_, r := newTestServer(t)

	for _, endpoint := range []string{
		"/api/v1/records",
		"/api/v1/dashboard",
		"/api/v1/archive",
		"/api/v1/reports/financial",
	} {
		rec, _ := testutil.MakeJSONRequest(nil, r, endpoint, http.MethodGet)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, endpoint)
	}
}

func TestLoginThenListRecords(t *testing.T) {
	_, r := newTestServer(t)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"email":    "admin@ssp.com",
		"password": "admin123",
	}, r, "/api/v1/auth/login", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	key := resp["access_key"].(string)

	rec, resp = testutil.MakeAuthedJSONRequest(nil, key, r, "/api/v1/records", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), resp["count"])
}

func TestStudentRoutesArePublic(t *testing.T) {
	_, r := newTestServer(t)

	rec, _ := testutil.MakeJSONRequest(nil, r, "/api/v1/colleges", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/v1/workflow/sessions", http.MethodPost)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "form", resp["stage"])
}

func TestSubmittedApplicationVisibleToOffice(t *testing.T) {
	_, r := newTestServer(t)

	rec, resp := testutil.MakeJSONRequest(nil, r, "/api/v1/workflow/sessions", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	base := "/api/v1/workflow/sessions/" + resp["id"].(string)

	rec, _ = testutil.MakeJSONRequest(gin.H{
		"student_name": "Priya Raman",
		"age":          "21",
		"dob":          "2003-02-14",
		"father_name":  "Raman",
		"mobile_no":    "9876543210",
		"emergency_no": "9123456780",
		"course":       "Engineering",
		"year":         "3",
		"college_name": "Anna University, Chennai",
		"from_date":    "2024-05-01",
		"days":         10,
	}, r, base, http.MethodPut)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, r, base+"/advance", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = testutil.MakeJSONRequest(nil, r, base+"/submit", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp = testutil.MakeAuthedJSONRequest(nil, "test-access-key", r, "/api/v1/records?term=priya", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), resp["count"])
}
