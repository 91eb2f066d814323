package tag

import "timeflow/internal/model"

// --- UseCase Inputs ---

type CreateTagInput struct {
	Name  string
	Color string
}

type UpdateTagInput struct {
	ID    string
	Name  string
	Color string
}

// --- UseCase Outputs ---

type CreateTagOutput struct {
	Tag model.Tag
}

type ListTagsOutput struct {
	Tags []model.Tag
}

type UpdateTagOutput struct {
	Tag model.Tag
}
