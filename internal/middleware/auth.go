package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasksync/internal/session"
	pkgErrors "tasksync/pkg/errors"
	"tasksync/pkg/response"
)

// Verified lets a request through only while the session is verified. The
// current status is returned so the client can route to login, retry, or wait.
func (m Middleware) Verified() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := m.session.Status()
		if st == session.StatusVerified {
			c.Next()
			return
		}

		code := http.StatusUnauthorized
		switch st {
		case session.StatusUnreachable:
			code = http.StatusServiceUnavailable
		case session.StatusLoading, session.StatusVerifying:
			code = http.StatusConflict
		}
		response.Error(c,
			pkgErrors.NewHTTPError(code, fmt.Sprintf("session is %s", st)),
			map[string]interface{}{"status": st.String()},
		)
	}
}
