package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timeflow/internal/tag"
	"timeflow/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case tag.ErrTagNotFound:
		response.NotFound(c, err)
	case tag.ErrDuplicateName:
		response.ErrorWithStatus(c, http.StatusConflict, err)
	case tag.ErrEmptyName:
		response.Error(c, err)
	default:
		response.InternalError(c)
	}
}
