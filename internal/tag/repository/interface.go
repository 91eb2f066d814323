package repository

import (
	"context"

	"timeflow/internal/model"
)

// Repository defines all data access methods for the Tag entity.
type Repository interface {
	CreateTag(ctx context.Context, opt CreateTagOptions) (model.Tag, error)
	GetOneTag(ctx context.Context, opt GetOneTagOptions) (model.Tag, error)
	ListTags(ctx context.Context) ([]model.Tag, error)
	UpdateTag(ctx context.Context, opt UpdateTagOptions) (model.Tag, error)
	DeleteTag(ctx context.Context, id string) error
}
