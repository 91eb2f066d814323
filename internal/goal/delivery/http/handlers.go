package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"timeflow/pkg/response"
)

// Create godoc
// @Summary     Create a goal
// @Description Creates a recurring time goal measured against tagged events.
// @Tags        Goal
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Goal data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List goals
// @Description Returns all goals.
// @Tags        Goal
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get goal detail
// @Description Returns a single goal by its ID.
// @Tags        Goal
// @Accept      json
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a goal
// @Description Updates an existing goal. All fields are optional (partial update).
// @Tags        Goal
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Goal ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a goal
// @Description Permanently removes a goal by ID.
// @Tags        Goal
// @Accept      json
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// Progress godoc
// @Summary     Get goal progress
// @Description Measures the goal's current period (or the period containing the given reference instant) against logged events.
// @Tags        Goal
// @Accept      json
// @Produce     json
// @Param       id  path  string true  "Goal ID"
// @Param       ref query string false "Reference instant (RFC3339, default now)"
// @Success     200 {object} progressResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{id}/progress [GET]
func (h *handler) Progress(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	ref := time.Now().UTC()
	if raw := c.Query("ref"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		ref = parsed
	}

	progress, err := h.uc.GoalProgress(ctx, id, ref)
	if err != nil {
		h.l.Errorf(ctx, "uc.GoalProgress: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newProgressResp(progress))
}
