package taskapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ID is a backend identifier. The backend emits integers; strings are
// accepted as well.
type ID string

// UnmarshalJSON accepts both JSON strings and JSON numbers.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Credentials is the body for POST /users and POST /users/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by POST /users/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// User is the body returned by POST /users.
type User struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
}

// Task is the backend task object.
type Task struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Summary     *string   `json:"summary"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListOptions filters GET /tasks.
type ListOptions struct {
	Limit  int    // 0 means no limit
	Status string // "pending", "completed", or "" for all
}

// CreateTaskRequest is the body for POST /tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateTaskRequest is the body for PUT /tasks/{id}. Nil fields are omitted.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// SearchRequest is the body for POST /search.
type SearchRequest struct {
	SearchTerm string `json:"search_term"`
}
