package http

import (
	"github.com/gin-gonic/gin"

	"timeflow/pkg/response"
)

// Create godoc
// @Summary     Log a time event
// @Description Logs a single time event with an absolute start and end instant.
// @Tags        Event
// @Accept      json
// @Produce     json
// @Param       body body eventReq true "Event data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
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

// CreateBatch godoc
// @Summary     Log a batch of time events
// @Description Logs several events at once, typically a confirmed resolution result. The batch is validated as a whole before any event is written.
// @Tags        Event
// @Accept      json
// @Produce     json
// @Param       body body createBatchReq true "Events to log"
// @Success     200 {object} createBatchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/batch [POST]
func (h *handler) CreateBatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateBatchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateBatch(ctx, req.toInputs())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateBatch: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newCreateBatchResp(output))
}

// List godoc
// @Summary     List logged events
// @Description Returns logged events ordered by start time, optionally limited to a window.
// @Tags        Event
// @Accept      json
// @Produce     json
// @Param       from query string false "Window start (RFC3339)"
// @Param       to   query string false "Window end (RFC3339)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get event detail
// @Description Returns a single logged event by its ID.
// @Tags        Event
// @Accept      json
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [GET]
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
// @Summary     Update a logged event
// @Description Updates an existing event. All fields are optional (partial update).
// @Tags        Event
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Event ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [PUT]
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
// @Summary     Delete a logged event
// @Description Permanently removes a logged event by ID.
// @Tags        Event
// @Accept      json
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [DELETE]
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
