package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "tasksync/pkg/errors"
)

func (h *handler) processCredentialsReq(c *gin.Context) (credentialsReq, error) {
	var req credentialsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, "username and password are required")
	}
	return req, nil
}
