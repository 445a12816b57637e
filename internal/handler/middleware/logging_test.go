//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lane-booking/internal/handler/httperr"
	"lane-booking/internal/handler/middleware"
	"lane-booking/internal/pkg/config"
	"lane-booking/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newObservedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.NewLogger(config.NewTestConfig().Log).LoggingMiddleware())
	r.Use(middleware.ErrorHandler())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})
	r.GET("/boom", func(*gin.Context) { panic("lane table corrupted") })
	r.GET("/fail", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("pool closed"), "Internal server error", nil)
	})
	r.GET("/silent", func(c *gin.Context) {
		_ = c.Error(errors.New("recorded only"))
	})
	return r
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	r := newObservedRouter()

	t.Run("generated when absent", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodGet, "/ok", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
		id := w.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		assert.NoError(t, err, "generated ids are uuids: %q", id)
		assert.Contains(t, w.Body.String(), id)
	})

	t.Run("kept from the caller", func(t *testing.T) {
		w := testutil.PerformRequestWithHeaders(t, r, http.MethodGet, "/ok", nil, map[string]string{"X-Request-ID": "mp-retry-7"})
		assert.Equal(t, "mp-retry-7", w.Header().Get("X-Request-ID"))
		assert.Contains(t, w.Body.String(), "mp-retry-7")
	})
}

func TestRecovery_PanicBecomes500(t *testing.T) {
	r := newObservedRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	testutil.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandler(t *testing.T) {
	r := newObservedRouter()

	t.Run("public error body is kept", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodGet, "/fail", nil, "")
		testutil.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, w.Body.String(), "pool closed")
	})

	t.Run("recorded error without a response", func(t *testing.T) {
		w := testutil.PerformRequest(t, r, http.MethodGet, "/silent", nil, "")
		testutil.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}
