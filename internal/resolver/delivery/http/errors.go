package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"timeflow/internal/resolver"
	"timeflow/pkg/response"
)

// mapError translates resolution errors into HTTP responses. Extraction
// failures return 422 so the client offers the user an edit-and-resubmit
// path instead of a retry loop.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case resolver.ErrEmptyInput, resolver.ErrInvalidTimezone:
		response.Error(c, err)
	case resolver.ErrSchemaViolation, resolver.ErrToolLoopExceeded, resolver.ErrDegenerateSpan:
		response.ErrorWithStatus(c, http.StatusUnprocessableEntity, err)
	default:
		response.InternalError(c)
	}
}
