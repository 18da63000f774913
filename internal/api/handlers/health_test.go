package handlers

import (
	"net/http"
	"testing"

	"employee-records/internal/testutils"

	"github.com/stretchr/testify/assert"
)

func TestHealthEndpoints(t *testing.T) {
	testutils.RunWithTestSuite(t, func(s *testutils.BaseTestSuite) {
		handler := NewHealthHandler(s.DB)
		httpSuite := testutils.SetupHTTPTest()
		httpSuite.Router.GET("/health", handler.Health)
		httpSuite.Router.GET("/health/ready", handler.Ready)
		httpSuite.Router.GET("/health/live", handler.Live)

		t.Run("health", func(t *testing.T) {
			var response HealthResponse
			testutils.AssertJSONResponse(t, httpSuite.MakeRequest("GET", "/health", nil), http.StatusOK, &response)
			assert.Equal(t, "healthy", response.Status)
			assert.Equal(t, "sqlite", response.Driver)
			assert.Equal(t, "healthy", response.Services["database"])
		})

		t.Run("ready", func(t *testing.T) {
			var response map[string]interface{}
			testutils.AssertJSONResponse(t, httpSuite.MakeRequest("GET", "/health/ready", nil), http.StatusOK, &response)
			assert.Equal(t, true, response["ready"])
		})

		t.Run("live", func(t *testing.T) {
			var response map[string]interface{}
			testutils.AssertJSONResponse(t, httpSuite.MakeRequest("GET", "/health/live", nil), http.StatusOK, &response)
			assert.Equal(t, true, response["alive"])
		})
	})
}

func TestHealthReportsClosedDatabase(t *testing.T) {
	s := testutils.SetupTestSuite(t)
	sqlDB, err := s.DB.DB()
	assert.NoError(t, err)
	_ = sqlDB.Close()

	handler := NewHealthHandler(s.DB)
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", handler.Health)

	var response HealthResponse
	testutils.AssertJSONResponse(t, httpSuite.MakeRequest("GET", "/health", nil), http.StatusServiceUnavailable, &response)
	assert.Equal(t, "unhealthy", response.Status)
}
