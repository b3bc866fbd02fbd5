package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasksync/internal/model"
	pkgErrors "tasksync/pkg/errors"
	"tasksync/pkg/response"
)

// Load godoc
// @Summary     Load tasks
// @Description Replaces the task list with a fresh server answer. A non-blank q switches to search mode.
// @Tags        Tasks
// @Produce     json
// @Param       q query string false "Search term"
// @Param       status query string false "Only pending or completed tasks (list mode)"
// @Failure     400 {object} response.Resp "Invalid status filter"
// @Success     200 {object} viewResp
// @Failure     401 {object} response.Resp "Session not verified"
// @Failure     502 {object} response.Resp "Backend error"
// @Failure     503 {object} response.Resp "Backend unreachable"
// @Router      /api/v1/tasks [GET]
func (h *handler) Load(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoadReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	if err := h.uc.Load(ctx, req.toMode()); err != nil {
		h.l.Warnf(ctx, "uc.Load: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newViewResp(h.uc.View()))
}

// View godoc
// @Summary     Current view
// @Description Returns the local task state without contacting the backend.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} viewResp
// @Router      /api/v1/tasks/view [GET]
func (h *handler) View(c *gin.Context) {
	response.OK(c, newViewResp(h.uc.View()))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a task. The server computes its summary.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Backend unreachable"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTaskResp(created))
}

// Update godoc
// @Summary     Edit a task
// @Description Applies a partial edit at once and persists it. On failure the list is reloaded.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} viewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Backend error"
// @Failure     503 {object} response.Resp "Backend unreachable"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Update(ctx, model.TaskID(req.ID), req.toFields()); err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), map[string]interface{}{"view": newViewResp(h.uc.View())})
		return
	}

	response.OK(c, newViewResp(h.uc.View()))
}

// Toggle godoc
// @Summary     Toggle completion
// @Description Flips pending/completed at once and persists it. On failure the list is reloaded.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} viewResp
// @Failure     502 {object} response.Resp "Backend error"
// @Failure     503 {object} response.Resp "Backend unreachable"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ToggleStatus(ctx, model.TaskID(c.Param("id"))); err != nil {
		h.l.Warnf(ctx, "uc.ToggleStatus: %v", err)
		response.Error(c, h.mapError(err), map[string]interface{}{"view": newViewResp(h.uc.View())})
		return
	}

	response.OK(c, newViewResp(h.uc.View()))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes the task at once and persists the removal. On failure the list is reloaded.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} viewResp
// @Failure     502 {object} response.Resp "Backend error"
// @Failure     503 {object} response.Resp "Backend unreachable"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, model.TaskID(c.Param("id"))); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), map[string]interface{}{"view": newViewResp(h.uc.View())})
		return
	}

	response.OK(c, newViewResp(h.uc.View()))
}

// Select godoc
// @Summary     Open a task
// @Description Marks a task as the one open for detail.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/select [PUT]
func (h *handler) Select(c *gin.Context) {
	if !h.uc.Select(model.TaskID(c.Param("id"))) {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusNotFound, "task is not in the current view"), nil)
		return
	}

	v := h.uc.View()
	if v.Selected == nil {
		response.Error(c, pkgErrors.ErrNotFound, nil)
		return
	}
	response.OK(c, newTaskResp(*v.Selected))
}

// ClearSelection godoc
// @Summary     Close the open task
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} viewResp
// @Router      /api/v1/selection [DELETE]
func (h *handler) ClearSelection(c *gin.Context) {
	h.uc.ClearSelection()
	response.OK(c, newViewResp(h.uc.View()))
}
