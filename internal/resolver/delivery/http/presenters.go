package http

import (
	"time"

	"timeflow/internal/resolver"
)

// --- Request DTOs ---

type resolveReq struct {
	Text          string    `json:"text"           binding:"required,min=1,max=2000"`
	ReferenceTime time.Time `json:"reference_time"`
	Timezone      string    `json:"timezone"       binding:"omitempty,max=64"`
	AllowedTags   []string  `json:"allowed_tags"`
	Debug         bool      `json:"debug"`
}

func (r resolveReq) toInput() resolver.ResolveInput {
	return resolver.ResolveInput{
		Text:          r.Text,
		ReferenceTime: r.ReferenceTime,
		Timezone:      r.Timezone,
		AllowedTags:   r.AllowedTags,
	}
}

// --- Response DTOs ---

type proposedEventResp struct {
	Title           string   `json:"title"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	Tags            []string `json:"tags"`
	DurationMinutes int      `json:"duration_minutes"`
}

type debugResp struct {
	Prompt      string `json:"prompt"`
	RawResponse string `json:"raw_response"`
}

type resolveResp struct {
	Events []proposedEventResp `json:"events"`
	Debug  *debugResp          `json:"debug,omitempty"`
}

func (h *handler) newResolveResp(out resolver.ResolveOutput, debug bool) resolveResp {
	events := make([]proposedEventResp, len(out.Events))
	for i, ev := range out.Events {
		events[i] = proposedEventResp{
			Title:           ev.Title,
			StartTime:       ev.StartTime.UTC().Format(time.RFC3339),
			EndTime:         ev.EndTime.UTC().Format(time.RFC3339),
			Tags:            ev.Tags,
			DurationMinutes: ev.DurationMinutes,
		}
	}

	resp := resolveResp{Events: events}
	if debug {
		resp.Debug = &debugResp{Prompt: out.Prompt, RawResponse: out.RawResponse}
	}
	return resp
}
