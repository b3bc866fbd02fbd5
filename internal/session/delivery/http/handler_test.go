package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasksync/internal/model"
	"tasksync/internal/session"
	"tasksync/pkg/log"
	"tasksync/pkg/response"
)

type fakeSession struct {
	status    session.Status
	signInErr error
	regErr    error
	retryErr  error
	logouts   int
	acks      int
	signedIn  session.SignInInput
}

func (f *fakeSession) Restore(ctx context.Context) (session.Status, error) { return f.status, nil }
func (f *fakeSession) RetryVerification(ctx context.Context) (session.Status, error) {
	if f.retryErr != nil {
		return f.status, f.retryErr
	}
	f.status = session.StatusVerified
	return f.status, nil
}
func (f *fakeSession) SignIn(ctx context.Context, input session.SignInInput) error {
	f.signedIn = input
	if f.signInErr != nil {
		return f.signInErr
	}
	f.status = session.StatusVerified
	return nil
}
func (f *fakeSession) Register(ctx context.Context, input session.SignInInput) error { return f.regErr }
func (f *fakeSession) Login(ctx context.Context, cred model.Credential) error        { return nil }
func (f *fakeSession) Logout(ctx context.Context) error {
	f.logouts++
	f.status = session.StatusAbsent
	return nil
}
func (f *fakeSession) Acknowledge(ctx context.Context) error {
	if f.status != session.StatusInvalid {
		return session.ErrInvalidTransition
	}
	f.acks++
	f.status = session.StatusAbsent
	return nil
}
func (f *fakeSession) Status() session.Status                        { return f.status }
func (f *fakeSession) Credential() (model.Credential, bool)          { return "", false }
func (f *fakeSession) Authorized() (model.Credential, uint64, bool)  { return "", 0, false }
func (f *fakeSession) IsCurrent(generation uint64) bool              { return false }
func (f *fakeSession) Reject(ctx context.Context, generation uint64) {}
func (f *fakeSession) Subscribe(fn session.Listener) func()          { return func() {} }

func serve(t *testing.T, uc *fakeSession, method, path, body string) (int, response.Resp) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/session"), New(log.NewNop(), uc))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func statusOf(t *testing.T, resp response.Resp) string {
	t.Helper()
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok, "data: %#v", resp.Data)
	return data["status"].(string)
}

func TestStatus(t *testing.T) {
	code, resp := serve(t, &fakeSession{status: session.StatusUnreachable}, http.MethodGet, "/api/v1/session", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "unreachable", statusOf(t, resp))
	assert.Equal(t, true, resp.Data.(map[string]any)["can_retry"])
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &fakeSession{}
		code, resp := serve(t, uc, http.MethodPost, "/api/v1/session/login", `{"username":"alice","password":"pw"}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "verified", statusOf(t, resp))
		assert.Equal(t, "alice", uc.signedIn.Username)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		code, _ := serve(t, &fakeSession{}, http.MethodPost, "/api/v1/session/login", `{"username":"alice"}`)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("Rejected", func(t *testing.T) {
		uc := &fakeSession{signInErr: session.ErrAuthRejected}
		code, resp := serve(t, uc, http.MethodPost, "/api/v1/session/login", `{"username":"alice","password":"bad"}`)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "incorrect username or password", resp.Message)
	})

	t.Run("Unreachable", func(t *testing.T) {
		uc := &fakeSession{signInErr: session.ErrUnreachable}
		code, _ := serve(t, uc, http.MethodPost, "/api/v1/session/login", `{"username":"alice","password":"pw"}`)
		assert.Equal(t, http.StatusServiceUnavailable, code)
	})
}

func TestRegister(t *testing.T) {
	uc := &fakeSession{regErr: errors.Join(session.ErrRegistration, errors.New("Username already registered"))}
	code, resp := serve(t, uc, http.MethodPost, "/api/v1/session/register", `{"username":"alice","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, resp.Message, "Username already registered")

	uc.regErr = nil
	code, resp = serve(t, uc, http.MethodPost, "/api/v1/session/register", `{"username":"bob","password":"pw"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "bob", resp.Data.(map[string]any)["username"])
}

func TestLogoutAndRetry(t *testing.T) {
	uc := &fakeSession{status: session.StatusInvalid}
	code, resp := serve(t, uc, http.MethodPost, "/api/v1/session/logout", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "absent", statusOf(t, resp))
	assert.Equal(t, 1, uc.logouts)

	uc.retryErr = session.ErrInvalidTransition
	code, _ = serve(t, uc, http.MethodPost, "/api/v1/session/retry", "")
	assert.Equal(t, http.StatusConflict, code)

	uc.status, uc.retryErr = session.StatusUnreachable, nil
	code, resp = serve(t, uc, http.MethodPost, "/api/v1/session/retry", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "verified", statusOf(t, resp))
}

func TestAcknowledge(t *testing.T) {
	uc := &fakeSession{status: session.StatusInvalid}
	code, resp := serve(t, uc, http.MethodPost, "/api/v1/session/acknowledge", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "absent", statusOf(t, resp))
	assert.Equal(t, 1, uc.acks)
	assert.Equal(t, 0, uc.logouts)

	code, _ = serve(t, uc, http.MethodPost, "/api/v1/session/acknowledge", "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, 1, uc.acks)
}
