package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tags := rg.Group("/tags")
	{
		tags.POST("", h.Create)
		tags.GET("", h.List)
		tags.PUT("/:id", h.Update)
		tags.DELETE("/:id", h.Delete)
	}
}
