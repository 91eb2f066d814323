package http

import (
	"github.com/gin-gonic/gin"

	"timeflow/internal/task"
	"timeflow/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case task.ErrTaskNotFound:
		response.NotFound(c, err)
	case task.ErrEmptyTitle:
		response.Error(c, err)
	default:
		response.InternalError(c)
	}
}
