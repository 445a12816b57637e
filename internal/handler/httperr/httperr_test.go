//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lane-booking/internal/handler/httperr"
	"lane-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Message   string `json:"message"`
		RequestID string `json:"requestId"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

func abort(t *testing.T, requestID string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
	if requestID != "" {
		c.Set(httperr.RequestIDKey, requestID)
	}
	httperr.AbortWithError(c, http.StatusConflict, errs.New("lane taken"), "Not enough lanes available at 19:00", gin.H{"remaining": 0})
	return w, c
}

func TestAbortWithError(t *testing.T) {
	t.Run("body carries the request id", func(t *testing.T) {
		w, c := abort(t, "req-123")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.True(t, c.IsAborted())

		var body errorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Not enough lanes available at 19:00", body.Error.Message)
		assert.Equal(t, "req-123", body.Error.RequestID)
		assert.EqualValues(t, 0, body.Detail["remaining"])
	})

	t.Run("request id omitted when unset", func(t *testing.T) {
		w, _ := abort(t, "")
		assert.NotContains(t, w.Body.String(), "requestId")
	})

	t.Run("cause kept on the context", func(t *testing.T) {
		_, c := abort(t, "req-1")

		require.Len(t, c.Errors, 1)
		assert.EqualError(t, c.Errors[0].Err, "lane taken")
		resp, ok := c.Errors[0].Meta.(httperr.Response)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, resp.Status)
	})

	t.Run("nil error panics", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Panics(t, func() {
			httperr.AbortWithError(c, http.StatusBadRequest, nil, "bad", nil)
		})
	})
}
