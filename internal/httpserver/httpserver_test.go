package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasksync/config"
	"tasksync/internal/session"
	"tasksync/internal/task"
	"tasksync/pkg/log"
)

type stubSession struct {
	session.UseCase
	status session.Status
}

func (s stubSession) Status() session.Status { return s.status }

type stubTasks struct {
	task.UseCase
}

func newTestServer(t *testing.T, st session.Status) http.Handler {
	t.Helper()
	srv, err := New(log.NewNop(), Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        "test",
		Environment: "production",
		RateLimit:   config.RateLimitConfig{PerMin: 6000, Burst: 100},
		Session:     stubSession{status: st},
		Tasks:       stubTasks{},
	})
	require.NoError(t, err)
	return srv.Handler()
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNewValidates(t *testing.T) {
	_, err := New(log.NewNop(), Config{Logger: log.NewNop(), Mode: "test"})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Logger: log.NewNop(), Mode: "test", Port: 1})
	assert.Error(t, err, "domains are required")
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t, session.StatusVerified)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(h, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	}
}

func TestReadyWaitsForSession(t *testing.T) {
	w := get(newTestServer(t, session.StatusVerifying), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = get(newTestServer(t, session.StatusUnreachable), "/ready")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "unreachable")
}

func TestDomainRoutes(t *testing.T) {
	h := newTestServer(t, session.StatusAbsent)

	w := get(h, "/api/v1/session")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"absent"`)

	w = get(h, "/api/v1/tasks")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
