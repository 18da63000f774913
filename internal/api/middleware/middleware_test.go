package middleware

import (
	"net/http"
	"testing"

	"employee-records/internal/config"
	"employee-records/internal/logger"
	"employee-records/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.Use(RequestID())
	h.Router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(logger.RequestIDKey))
	})

	t.Run("generates an id", func(t *testing.T) {
		rec := h.MakeRequest(http.MethodGet, "/ping", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		id := rec.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("reuses an incoming id", func(t *testing.T) {
		rec := h.MakeRequestWithHeaders(http.MethodGet, "/ping", nil, map[string]string{RequestIDHeader: "abc-123"})

		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", rec.Body.String())
	})
}

func TestLoggerRecordsRequest(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	h := testutils.SetupHTTPTest()
	h.Router.Use(RequestID(), Logger())
	h.Router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	h.MakeRequestWithHeaders(http.MethodGet, "/missing?x=1", nil, map[string]string{RequestIDHeader: "req-1"})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "GET", entry.Data["method"])
	assert.Equal(t, "/missing?x=1", entry.Data["path"])
	assert.Equal(t, http.StatusNotFound, entry.Data["status"])
	assert.Equal(t, "req-1", entry.Data[logger.RequestIDKey])
}

func TestRecovery(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	h := testutils.SetupHTTPTest()
	h.Router.Use(Recovery())
	h.Router.GET("/boom", func(c *gin.Context) { panic("boom") })

	rec := h.MakeRequest(http.MethodGet, "/boom", nil)

	testutils.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "boom", hook.LastEntry().Data["panic"])
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	h := testutils.SetupHTTPTest()
	h.Router.Use(CORS(cfg))
	h.Router.GET("/api", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		rec := h.MakeRequestWithHeaders(http.MethodGet, "/api", nil, map[string]string{"Origin": "http://localhost:3000"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		rec := h.MakeRequestWithHeaders(http.MethodGet, "/api", nil, map[string]string{"Origin": "http://evil.test"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		rec := h.MakeRequestWithHeaders(http.MethodOptions, "/api", nil, map[string]string{"Origin": "http://localhost:3000"})

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestCORS_Wildcard(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"*", "http://localhost:3000"}}
	h := testutils.SetupHTTPTest()
	h.Router.Use(CORS(cfg))
	h.Router.GET("/api", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("any origin gets wildcard without credentials", func(t *testing.T) {
		rec := h.MakeRequestWithHeaders(http.MethodGet, "/api", nil, map[string]string{"Origin": "http://evil.test"})

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("listed origin keeps credentials", func(t *testing.T) {
		rec := h.MakeRequestWithHeaders(http.MethodGet, "/api", nil, map[string]string{"Origin": "http://localhost:3000"})

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})
}
