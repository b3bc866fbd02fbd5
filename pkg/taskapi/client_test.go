package taskapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgLog "tasksync/pkg/log"
	"tasksync/pkg/taskapi"
)

func TestTaskAPIClient(t *testing.T) {
	var lastAuth, lastRequestID string

	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		var req taskapi.Credentials
		json.NewDecoder(r.Body).Decode(&req)
		if req.Username == "taken" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":"Username already registered"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 3, "username": req.Username})
	})
	mux.HandleFunc("/users/login", func(w http.ResponseWriter, r *http.Request) {
		var req taskapi.Credentials
		json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Incorrect username/password"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok", "token_type": "bearer"})
	})
	mux.HandleFunc("/tasks", func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		lastRequestID = r.Header.Get("X-Request-ID")
		switch r.Method {
		case http.MethodGet:
			if r.URL.Query().Get("status") == "broken" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`[{"id":7,"title":"Buy milk","description":"2% milk","summary":"milk","status":"pending","created_at":"2024-05-01T10:00:00Z"}]`))
		case http.MethodPost:
			var req taskapi.CreateTaskRequest
			json.NewDecoder(r.Body).Decode(&req)
			summary := "sum: " + req.Description
			json.NewEncoder(w).Encode(taskapi.Task{ID: "8", Title: req.Title, Description: req.Description, Summary: &summary, Status: "pending"})
		}
	})
	mux.HandleFunc("/tasks/8", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			var raw map[string]any
			json.NewDecoder(r.Body).Decode(&raw)
			if _, ok := raw["description"]; ok {
				w.WriteHeader(http.StatusUnprocessableEntity)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{"id": 8, "title": raw["title"], "status": "pending"})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	mux.HandleFunc("/tasks/8/complete", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": 8, "status": "completed"})
	})
	mux.HandleFunc("/tasks/8/pending", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/tasks/9", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		var req taskapi.SearchRequest
		json.NewDecoder(r.Body).Decode(&req)
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		json.NewEncoder(w).Encode([]taskapi.Task{{ID: "1", Title: req.SearchTerm}})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := taskapi.New(ts.URL, time.Second)
	ctx := context.Background()

	t.Run("Register", func(t *testing.T) {
		user, err := client.Register(ctx, "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, taskapi.ID("3"), user.ID)

		_, err = client.Register(ctx, "taken", "secret")
		require.Error(t, err)
		assert.ErrorIs(t, err, taskapi.ErrBadRequest)
		var se *taskapi.StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "Username already registered", se.Detail)
	})

	t.Run("Login", func(t *testing.T) {
		token, err := client.Login(ctx, "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, "tok", token)

		_, err = client.Login(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, taskapi.ErrUnauthorized)
	})

	t.Run("ListTasks", func(t *testing.T) {
		tasks, err := client.ListTasks(pkgLog.WithTraceID(ctx, "trace-1"), "tok", taskapi.ListOptions{})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, taskapi.ID("7"), tasks[0].ID)
		assert.Equal(t, "milk", *tasks[0].Summary)
		assert.Equal(t, "Bearer tok", lastAuth)
		assert.Equal(t, "trace-1", lastRequestID)

		_, err = client.ListTasks(ctx, "tok", taskapi.ListOptions{Status: "broken"})
		assert.ErrorIs(t, err, taskapi.ErrServer)
		assert.NotEmpty(t, lastRequestID)
	})

	t.Run("Probe", func(t *testing.T) {
		assert.NoError(t, client.Probe(ctx, "tok", 1))
	})

	t.Run("SearchTasks", func(t *testing.T) {
		tasks, err := client.SearchTasks(ctx, "tok", "milk")
		require.NoError(t, err)
		assert.Equal(t, "milk", tasks[0].Title)

		_, err = client.SearchTasks(ctx, "other", "milk")
		assert.ErrorIs(t, err, taskapi.ErrUnauthorized)
	})

	t.Run("CreateTask", func(t *testing.T) {
		task, err := client.CreateTask(ctx, "tok", taskapi.CreateTaskRequest{Title: "Buy milk", Description: "2% milk"})
		require.NoError(t, err)
		assert.Equal(t, "sum: 2% milk", *task.Summary)
	})

	t.Run("UpdateTask", func(t *testing.T) {
		title := "Renamed"
		task, err := client.UpdateTask(ctx, "tok", "8", taskapi.UpdateTaskRequest{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", task.Title)

		desc := "x"
		_, err = client.UpdateTask(ctx, "tok", "8", taskapi.UpdateTaskRequest{Description: &desc})
		assert.ErrorIs(t, err, taskapi.ErrBadRequest)
	})

	t.Run("Transitions", func(t *testing.T) {
		task, err := client.CompleteTask(ctx, "tok", "8")
		require.NoError(t, err)
		assert.Equal(t, "completed", task.Status)

		task, err = client.ReopenTask(ctx, "tok", "8")
		require.NoError(t, err)
		assert.Nil(t, task)
	})

	t.Run("DeleteTask", func(t *testing.T) {
		assert.NoError(t, client.DeleteTask(ctx, "tok", "8"))
		assert.ErrorIs(t, client.DeleteTask(ctx, "tok", "9"), taskapi.ErrNotFound)
	})

	t.Run("Server Down", func(t *testing.T) {
		badClient := taskapi.New("http://localhost:59999", time.Second)
		err := badClient.Probe(ctx, "tok", 1)
		assert.ErrorIs(t, err, taskapi.ErrNetwork)
		assert.NotErrorIs(t, err, taskapi.ErrUnauthorized)
	})

	t.Run("Timeout", func(t *testing.T) {
		slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer slow.Close()

		err := taskapi.New(slow.URL, 20*time.Millisecond).Probe(ctx, "tok", 1)
		assert.ErrorIs(t, err, taskapi.ErrNetwork)
	})
}

func TestStatusErrorClassification(t *testing.T) {
	cases := []struct {
		code int
		want error
	}{
		{http.StatusUnauthorized, taskapi.ErrUnauthorized},
		{http.StatusForbidden, taskapi.ErrUnauthorized},
		{http.StatusNotFound, taskapi.ErrNotFound},
		{http.StatusConflict, taskapi.ErrBadRequest},
		{http.StatusBadGateway, taskapi.ErrServer},
	}
	for _, tc := range cases {
		err := &taskapi.StatusError{Op: "x", Code: tc.code}
		assert.ErrorIs(t, err, tc.want, "code %d", tc.code)
	}
	assert.NotErrorIs(t, &taskapi.StatusError{Code: http.StatusUnauthorized}, taskapi.ErrBadRequest)
}
