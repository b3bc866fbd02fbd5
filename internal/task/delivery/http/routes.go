package http

import (
	"github.com/gin-gonic/gin"

	"tasksync/internal/middleware"
)

// RegisterRoutes maps the task endpoints under rg. Every route requires a
// verified session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Verified())
	{
		tasks.GET("", h.Load)
		tasks.GET("/view", h.View)
		tasks.POST("", h.Create)
		tasks.PATCH("/:id", h.Update)
		tasks.POST("/:id/toggle", h.Toggle)
		tasks.DELETE("/:id", h.Delete)
		tasks.PUT("/:id/select", h.Select)
	}

	rg.DELETE("/selection", mw.Verified(), h.ClearSelection)
}
