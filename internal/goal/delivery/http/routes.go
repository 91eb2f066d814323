package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	goals := rg.Group("/goals")
	{
		goals.POST("", h.Create)
		goals.GET("", h.List)
		goals.GET("/:id", h.Detail)
		goals.PUT("/:id", h.Update)
		goals.DELETE("/:id", h.Delete)
		goals.GET("/:id/progress", h.Progress)
	}
}
