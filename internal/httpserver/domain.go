package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"tasksync/internal/middleware"
	sessionHTTP "tasksync/internal/session/delivery/http"
	taskHTTP "tasksync/internal/task/delivery/http"
)

// setupSessionDomain registers /api/v1/session.
func (srv HTTPServer) setupSessionDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := sessionHTTP.New(srv.l, srv.session)
	sessionHTTP.RegisterRoutes(api.Group("/session"), h)

	srv.l.Infof(ctx, "Session domain registered")
	return nil
}

// setupTaskDomain registers /api/v1/tasks and /api/v1/selection behind the
// verified-session gate.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := taskHTTP.New(srv.l, srv.tasks)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
