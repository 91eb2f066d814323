package http

import (
	"github.com/gin-gonic/gin"

	"timeflow/internal/event"
	"timeflow/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case event.ErrEventNotFound:
		response.NotFound(c, err)
	case event.ErrEmptyTitle, event.ErrInvalidSpan, event.ErrInvalidRange:
		response.Error(c, err)
	default:
		response.InternalError(c)
	}
}
