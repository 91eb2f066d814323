package http

import (
	"time"

	"timeflow/internal/event"
	"timeflow/internal/model"
)

// --- Request DTOs ---

type eventReq struct {
	Title       string    `json:"title"       binding:"required,min=1,max=255"`
	Description string    `json:"description" binding:"max=1000"`
	StartTime   time.Time `json:"start_time"  binding:"required"`
	EndTime     time.Time `json:"end_time"    binding:"required"`
	TagIDs      []string  `json:"tag_ids"`
}

func (r eventReq) toInput() event.CreateEventInput {
	return event.CreateEventInput{
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		TagIDs:      r.TagIDs,
	}
}

type createBatchReq struct {
	Events []eventReq `json:"events" binding:"required,min=1,dive"`
}

func (r createBatchReq) toInputs() []event.CreateEventInput {
	inputs := make([]event.CreateEventInput, len(r.Events))
	for i, ev := range r.Events {
		inputs[i] = ev.toInput()
	}
	return inputs
}

type listReq struct {
	From   time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To     time.Time `form:"to"   time_format:"2006-01-02T15:04:05Z07:00"`
	Limit  int       `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset int       `form:"offset" binding:"omitempty,min=0"`
}

func (r listReq) toInput() event.ListEventsInput {
	return event.ListEventsInput{From: r.From, To: r.To, Limit: r.Limit, Offset: r.Offset}
}

type updateReq struct {
	ID          string    `json:"-"` // populated from URI param
	Title       string    `json:"title"       binding:"omitempty,min=1,max=255"`
	Description string    `json:"description" binding:"omitempty,max=1000"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	TagIDs      []string  `json:"tag_ids"`
}

func (r updateReq) toInput() event.UpdateEventInput {
	return event.UpdateEventInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		TagIDs:      r.TagIDs,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	TagIDs          []string  `json:"tag_ids"`
	CalendarLink    string    `json:"calendar_link,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		ID:              ev.ID,
		Title:           ev.Title,
		Description:     ev.Description,
		StartTime:       ev.StartTime,
		EndTime:         ev.EndTime,
		DurationMinutes: ev.DurationMinutes,
		TagIDs:          ev.TagIDs,
		CalendarLink:    ev.CalendarLink,
		CreatedAt:       ev.CreatedAt,
		UpdatedAt:       ev.UpdatedAt,
	}
}

type createResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newCreateResp(out event.CreateEventOutput) createResp {
	return createResp{Event: newEventResp(out.Event)}
}

type createBatchResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newCreateBatchResp(out event.CreateBatchOutput) createBatchResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return createBatchResp{Events: events}
}

type listResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newListResp(out event.ListEventsOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = newEventResp(ev)
	}
	return listResp{Events: events}
}

type detailResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newDetailResp(out event.DetailEventOutput) detailResp {
	return detailResp{Event: newEventResp(out.Event)}
}

type updateResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newUpdateResp(out event.UpdateEventOutput) updateResp {
	return updateResp{Event: newEventResp(out.Event)}
}
