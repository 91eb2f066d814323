package http

import (
	"timeflow/internal/tag"
	"timeflow/pkg/log"
)

type handler struct {
	l  log.Logger
	uc tag.UseCase
}

// New creates a new HTTP handler for the tag domain.
func New(l log.Logger, uc tag.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
