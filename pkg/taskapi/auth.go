package taskapi

import (
	"context"
	"fmt"
	"net/http"
)

// Register creates an account via POST /users.
func (c *Client) Register(ctx context.Context, username, password string) (*User, error) {
	var user User
	err := c.do(ctx, "register", http.MethodPost, "/users", "", Credentials{Username: username, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges username and password for an access token via POST /users/login.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp LoginResponse
	err := c.do(ctx, "login", http.MethodPost, "/users/login", "", Credentials{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("taskapi login: %w", ErrEmptyBody)
	}
	return resp.AccessToken, nil
}

// Probe performs the lightweight authenticated request used to verify a
// credential: GET /tasks?limit=N. The body is discarded.
func (c *Client) Probe(ctx context.Context, token string, limit int) error {
	if limit <= 0 {
		limit = 1
	}
	return c.do(ctx, "probe", http.MethodGet, fmt.Sprintf("/tasks?limit=%d", limit), token, nil, nil)
}
