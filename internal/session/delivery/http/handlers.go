package http

import (
	"github.com/gin-gonic/gin"

	"tasksync/pkg/response"
)

// Status godoc
// @Summary     Session status
// @Description Returns the current session status.
// @Tags        Session
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/session [GET]
func (h *handler) Status(c *gin.Context) {
	response.OK(c, h.newStatusResp())
}

// Login godoc
// @Summary     Sign in
// @Description Authenticates against the backend and stores the issued credential.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Credentials"
// @Success     200 {object} statusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Incorrect username or password"
// @Failure     503 {object} response.Resp "Backend unreachable"
// @Router      /api/v1/session/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SignIn(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.SignIn: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatusResp())
}

// Register godoc
// @Summary     Create an account
// @Description Creates a backend account. It does not sign in.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       body body credentialsReq true "Credentials"
// @Success     200 {object} registerResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Backend unreachable"
// @Router      /api/v1/session/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCredentialsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Register(ctx, req.toInput()); err != nil {
		h.l.Warnf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, registerResp{Username: req.Username})
}

// Logout godoc
// @Summary     Sign out
// @Description Purges the credential. Safe to call in any state.
// @Tags        Session
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/session/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatusResp())
}

// Acknowledge godoc
// @Summary     Acknowledge an invalid session
// @Description Moves an expired or revoked session back to absent so the client can sign in again.
// @Tags        Session
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     409 {object} response.Resp "Session is not invalid"
// @Router      /api/v1/session/acknowledge [POST]
func (h *handler) Acknowledge(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Acknowledge(ctx); err != nil {
		h.l.Warnf(ctx, "uc.Acknowledge: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatusResp())
}

// Retry godoc
// @Summary     Retry verification
// @Description Re-probes the backend after a connection error.
// @Tags        Session
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     409 {object} response.Resp "Session is not in a connection error state"
// @Router      /api/v1/session/retry [POST]
func (h *handler) Retry(c *gin.Context) {
	ctx := c.Request.Context()

	if _, err := h.uc.RetryVerification(ctx); err != nil {
		h.l.Warnf(ctx, "uc.RetryVerification: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatusResp())
}
