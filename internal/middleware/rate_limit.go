package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"timeflow/pkg/response"
)

var errRateLimited = errors.New("too many resolution requests, slow down")

// RateLimit caps the rate of LLM-backed endpoints. The budget is shared
// across all clients since this is a single-user deployment.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: request rejected")
			response.ErrorWithStatus(c, http.StatusTooManyRequests, errRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}
