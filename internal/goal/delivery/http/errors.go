package http

import (
	"github.com/gin-gonic/gin"

	"timeflow/internal/goal"
	"timeflow/pkg/response"
)

// mapError translates domain errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	switch err {
	case goal.ErrGoalNotFound:
		response.NotFound(c, err)
	case goal.ErrEmptyName, goal.ErrInvalidPeriod, goal.ErrInvalidComparison,
		goal.ErrInvalidTarget, goal.ErrNoEligibleTags:
		response.Error(c, err)
	default:
		response.InternalError(c)
	}
}
