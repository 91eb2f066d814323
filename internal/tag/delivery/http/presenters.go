package http

import (
	"time"

	"timeflow/internal/model"
	"timeflow/internal/tag"
)

// --- Request DTOs ---

type createReq struct {
	Name  string `json:"name"  binding:"required,min=1,max=100"`
	Color string `json:"color" binding:"omitempty,max=32"`
}

func (r createReq) toInput() tag.CreateTagInput {
	return tag.CreateTagInput{
		Name:  r.Name,
		Color: r.Color,
	}
}

type updateReq struct {
	ID    string `json:"-"` // populated from URI param
	Name  string `json:"name"  binding:"omitempty,min=1,max=100"`
	Color string `json:"color" binding:"omitempty,max=32"`
}

func (r updateReq) toInput() tag.UpdateTagInput {
	return tag.UpdateTagInput{
		ID:    r.ID,
		Name:  r.Name,
		Color: r.Color,
	}
}

// --- Response DTOs ---

type tagResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func newTagResp(t model.Tag) tagResp {
	return tagResp{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
	}
}

type createResp struct {
	Tag tagResp `json:"tag"`
}

func (h *handler) newCreateResp(out tag.CreateTagOutput) createResp {
	return createResp{Tag: newTagResp(out.Tag)}
}

type listResp struct {
	Tags []tagResp `json:"tags"`
}

func (h *handler) newListResp(out tag.ListTagsOutput) listResp {
	tags := make([]tagResp, len(out.Tags))
	for i, t := range out.Tags {
		tags[i] = newTagResp(t)
	}
	return listResp{Tags: tags}
}

type updateResp struct {
	Tag tagResp `json:"tag"`
}

func (h *handler) newUpdateResp(out tag.UpdateTagOutput) updateResp {
	return updateResp{Tag: newTagResp(out.Tag)}
}
