package taskapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListTasks lists tasks via GET /tasks.
func (c *Client) ListTasks(ctx context.Context, token string, opt ListOptions) ([]Task, error) {
	q := url.Values{}
	if opt.Limit > 0 {
		q.Set("limit", strconv.Itoa(opt.Limit))
	}
	if opt.Status != "" {
		q.Set("status", opt.Status)
	}
	path := "/tasks"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	tasks := []Task{}
	if err := c.do(ctx, "list tasks", http.MethodGet, path, token, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SearchTasks runs a server-side search via POST /search.
func (c *Client) SearchTasks(ctx context.Context, token, term string) ([]Task, error) {
	tasks := []Task{}
	if err := c.do(ctx, "search tasks", http.MethodPost, "/search", token, SearchRequest{SearchTerm: term}, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a task via POST /tasks. The response carries the
// server-computed summary.
func (c *Client) CreateTask(ctx context.Context, token string, req CreateTaskRequest) (*Task, error) {
	var task Task
	if err := c.do(ctx, "create task", http.MethodPost, "/tasks", token, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask updates title and/or description via PUT /tasks/{id}.
func (c *Client) UpdateTask(ctx context.Context, token, id string, req UpdateTaskRequest) (*Task, error) {
	var task Task
	if err := c.do(ctx, "update task", http.MethodPut, taskPath(id), token, req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CompleteTask marks a task completed via PUT /tasks/{id}/complete.
func (c *Client) CompleteTask(ctx context.Context, token, id string) (*Task, error) {
	return c.transition(ctx, "complete task", token, id, "complete")
}

// ReopenTask marks a task pending via PUT /tasks/{id}/pending.
func (c *Client) ReopenTask(ctx context.Context, token, id string) (*Task, error) {
	return c.transition(ctx, "reopen task", token, id, "pending")
}

// transition issues a bodiless status transition. Backends that answer with
// an empty body yield a nil task and no error.
func (c *Client) transition(ctx context.Context, op, token, id, verb string) (*Task, error) {
	var task Task
	err := c.do(ctx, op, http.MethodPut, fmt.Sprintf("%s/%s", taskPath(id), verb), token, nil, &task)
	if errors.Is(err, ErrEmptyBody) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task via DELETE /tasks/{id}.
func (c *Client) DeleteTask(ctx context.Context, token, id string) error {
	return c.do(ctx, "delete task", http.MethodDelete, taskPath(id), token, nil, nil)
}

func taskPath(id string) string {
	return "/tasks/" + url.PathEscape(id)
}
