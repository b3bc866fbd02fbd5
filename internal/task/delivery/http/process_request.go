package http

import (
	"github.com/gin-gonic/gin"

	"tasksync/internal/model"
	pkgErrors "tasksync/pkg/errors"
)

// processLoadReq reads the search term and the optional status filter.
func (h *handler) processLoadReq(c *gin.Context) (loadReq, error) {
	req := loadReq{Query: c.Query("q")}
	switch status := model.TaskStatus(c.Query("status")); status {
	case "", model.TaskStatusPending, model.TaskStatusCompleted:
		req.Status = status
	default:
		return req, pkgErrors.NewHTTPError(400, "status must be pending or completed")
	}
	return req, nil
}

// processCreateReq binds the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "invalid task body")
	}
	return req, nil
}

// processUpdateReq binds the partial edit body and the id URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "invalid task body")
	}
	req.ID = c.Param("id")
	return req, nil
}
