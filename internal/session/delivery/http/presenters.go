package http

import (
	"tasksync/internal/session"
)

// --- Request DTOs ---

type credentialsReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r credentialsReq) toInput() session.SignInInput {
	return session.SignInInput{
		Username: r.Username,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type statusResp struct {
	Status        session.Status `json:"status" swaggertype:"string"`
	Authenticated bool           `json:"authenticated"`
	CanRetry      bool           `json:"can_retry"`
}

func (h *handler) newStatusResp() statusResp {
	st := h.uc.Status()
	return statusResp{
		Status:        st,
		Authenticated: st == session.StatusVerified,
		CanRetry:      st == session.StatusUnreachable,
	}
}

type registerResp struct {
	Username string `json:"username"`
}
