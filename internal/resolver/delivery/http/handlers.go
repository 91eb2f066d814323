package http

import (
	"github.com/gin-gonic/gin"

	"timeflow/pkg/response"
)

// Resolve godoc
// @Summary     Resolve events from natural language
// @Description Turns a free-form sentence plus a reference instant into a chronologically ordered sequence of proposed events. Nothing is persisted; the caller saves confirmed events via the event endpoints.
// @Tags        Resolver
// @Accept      json
// @Produce     json
// @Param       body body resolveReq true "Text to resolve"
// @Success     200 {object} resolveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Unprocessable - edit the text and resubmit"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/resolver/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Resolve(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Resolve: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newResolveResp(output, req.Debug))
}
