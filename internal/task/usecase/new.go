package usecase

import (
	"timeflow/internal/task"
	"timeflow/internal/task/repository"
	pkgLog "timeflow/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) task.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
