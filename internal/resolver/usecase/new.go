package usecase

import (
	"timeflow/internal/agent"
	"timeflow/internal/resolver"
	"timeflow/internal/tag"
	"timeflow/pkg/llmprovider"
	pkgLog "timeflow/pkg/log"
)

const DefaultMaxToolCalls = 3

type implUseCase struct {
	l            pkgLog.Logger
	llm          *llmprovider.Manager
	registry     *agent.ToolRegistry
	tags         tag.UseCase
	timezone     string
	maxToolCalls int
}

// New creates a new resolver UseCase instance.
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	registry *agent.ToolRegistry,
	tags tag.UseCase,
	timezone string,
	maxToolCalls int,
) resolver.UseCase {
	if timezone == "" {
		timezone = "UTC"
	}
	if maxToolCalls <= 0 {
		maxToolCalls = DefaultMaxToolCalls
	}
	return &implUseCase{
		l:            l,
		llm:          llm,
		registry:     registry,
		tags:         tags,
		timezone:     timezone,
		maxToolCalls: maxToolCalls,
	}
}
