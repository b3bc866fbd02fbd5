package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasksync/config"
	"tasksync/internal/middleware"
	"tasksync/internal/session"
	"tasksync/pkg/log"
	"tasksync/pkg/response"
)

type fixedStatus session.Status

func (s fixedStatus) Status() session.Status { return session.Status(s) }

func newEngine(st session.Status, rl config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), fixedStatus(st), rl)

	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit())
	r.GET("/open", func(c *gin.Context) {
		response.OK(c, gin.H{"trace": log.TraceIDFromContext(c.Request.Context())})
	})
	r.GET("/gated", mw.Verified(), func(c *gin.Context) { response.OK(c, nil) })
	return r
}

var generous = config.RateLimitConfig{PerMin: 6000, Burst: 100}

func TestVerified(t *testing.T) {
	for _, tc := range []struct {
		status session.Status
		code   int
	}{
		{session.StatusVerified, http.StatusOK},
		{session.StatusAbsent, http.StatusUnauthorized},
		{session.StatusInvalid, http.StatusUnauthorized},
		{session.StatusUnreachable, http.StatusServiceUnavailable},
		{session.StatusVerifying, http.StatusConflict},
	} {
		t.Run(tc.status.String(), func(t *testing.T) {
			w := httptest.NewRecorder()
			newEngine(tc.status, generous).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/gated", nil))
			assert.Equal(t, tc.code, w.Code)

			if tc.code != http.StatusOK {
				var resp response.Resp
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Contains(t, resp.Message, tc.status.String())
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine(session.StatusVerified, generous)

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
		id := w.Header().Get(middleware.RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Contains(t, w.Body.String(), id)
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
		assert.Contains(t, w.Body.String(), "req-42")
	})
}

func TestRateLimit(t *testing.T) {
	r := newEngine(session.StatusVerified, config.RateLimitConfig{PerMin: 1, Burst: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
