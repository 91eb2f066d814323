package http

import (
	"timeflow/internal/resolver"
	"timeflow/pkg/log"
)

type handler struct {
	l  log.Logger
	uc resolver.UseCase
}

// New creates a new HTTP handler for the resolver.
func New(l log.Logger, uc resolver.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
