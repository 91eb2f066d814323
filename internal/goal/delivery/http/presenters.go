package http

import (
	"time"

	"timeflow/internal/goal"
	"timeflow/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name           string   `json:"name"             binding:"required,min=1,max=255"`
	TimePeriod     string   `json:"time_period"      binding:"required,oneof=daily weekly monthly"`
	TargetHours    float64  `json:"target_hours"     binding:"required,gt=0"`
	Comparison     string   `json:"comparison"       binding:"required,oneof=at-least no-more-than"`
	EligibleTagIDs []string `json:"eligible_tag_ids" binding:"required,min=1"`
}

func (r createReq) toInput() goal.CreateGoalInput {
	return goal.CreateGoalInput{
		Name:           r.Name,
		TimePeriod:     model.TimePeriod(r.TimePeriod),
		TargetHours:    r.TargetHours,
		Comparison:     model.Comparison(r.Comparison),
		EligibleTagIDs: r.EligibleTagIDs,
	}
}

type updateReq struct {
	ID             string   `json:"-"` // populated from URI param
	Name           string   `json:"name"             binding:"omitempty,min=1,max=255"`
	TimePeriod     string   `json:"time_period"      binding:"omitempty,oneof=daily weekly monthly"`
	TargetHours    float64  `json:"target_hours"     binding:"omitempty,gt=0"`
	Comparison     string   `json:"comparison"       binding:"omitempty,oneof=at-least no-more-than"`
	EligibleTagIDs []string `json:"eligible_tag_ids"`
}

func (r updateReq) toInput() goal.UpdateGoalInput {
	return goal.UpdateGoalInput{
		ID:             r.ID,
		Name:           r.Name,
		TimePeriod:     model.TimePeriod(r.TimePeriod),
		TargetHours:    r.TargetHours,
		Comparison:     model.Comparison(r.Comparison),
		EligibleTagIDs: r.EligibleTagIDs,
	}
}

// --- Response DTOs ---

type goalResp struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	TimePeriod     string    `json:"time_period"`
	TargetHours    float64   `json:"target_hours"`
	Comparison     string    `json:"comparison"`
	EligibleTagIDs []string  `json:"eligible_tag_ids"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func newGoalResp(g model.Goal) goalResp {
	return goalResp{
		ID:             g.ID,
		Name:           g.Name,
		TimePeriod:     string(g.TimePeriod),
		TargetHours:    g.TargetHours,
		Comparison:     string(g.Comparison),
		EligibleTagIDs: g.EligibleTagIDs,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

type createResp struct {
	Goal goalResp `json:"goal"`
}

func (h *handler) newCreateResp(out goal.CreateGoalOutput) createResp {
	return createResp{Goal: newGoalResp(out.Goal)}
}

type listResp struct {
	Goals []goalResp `json:"goals"`
}

func (h *handler) newListResp(out goal.ListGoalsOutput) listResp {
	goals := make([]goalResp, len(out.Goals))
	for i, g := range out.Goals {
		goals[i] = newGoalResp(g)
	}
	return listResp{Goals: goals}
}

type detailResp struct {
	Goal goalResp `json:"goal"`
}

func (h *handler) newDetailResp(out goal.DetailGoalOutput) detailResp {
	return detailResp{Goal: newGoalResp(out.Goal)}
}

type updateResp struct {
	Goal goalResp `json:"goal"`
}

func (h *handler) newUpdateResp(out goal.UpdateGoalOutput) updateResp {
	return updateResp{Goal: newGoalResp(out.Goal)}
}

type progressResp struct {
	Goal        goalResp  `json:"goal"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
	LoggedHours float64   `json:"logged_hours"`
	TargetHours float64   `json:"target_hours"`
	Percent     float64   `json:"percent"`
	OnTrack     bool      `json:"on_track"`
}

func (h *handler) newProgressResp(p goal.Progress) progressResp {
	return progressResp{
		Goal:        newGoalResp(p.Goal),
		PeriodStart: p.PeriodStart,
		PeriodEnd:   p.PeriodEnd,
		LoggedHours: p.LoggedHours,
		TargetHours: p.TargetHours,
		Percent:     p.Percent,
		OnTrack:     p.OnTrack,
	}
}
