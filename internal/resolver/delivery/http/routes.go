package http

import (
	"github.com/gin-gonic/gin"

	"timeflow/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods. Resolution
// calls are rate limited because each one costs an upstream LLM request.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	res := rg.Group("/resolver")
	{
		res.POST("/resolve", mw.RateLimit(), h.Resolve)
	}
}
