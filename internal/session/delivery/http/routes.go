package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the session endpoints. None of them require a verified
// session since they are how a session is obtained.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.Status)
	rg.POST("/login", h.Login)
	rg.POST("/register", h.Register)
	rg.POST("/logout", h.Logout)
	rg.POST("/acknowledge", h.Acknowledge)
	rg.POST("/retry", h.Retry)
}
