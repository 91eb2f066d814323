package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"timeflow/internal/tag"
	"timeflow/internal/tag/repository"
	pkgLog "timeflow/pkg/log"
)

const vocabularyCacheKey = "vocabulary"

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	cache *lru.Cache[string, []string]
}

// New creates a new tag UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) tag.UseCase {
	cache, err := lru.New[string, []string](1)
	if err != nil {
		panic(err)
	}
	return &implUseCase{
		l:     l,
		repo:  repo,
		cache: cache,
	}
}
