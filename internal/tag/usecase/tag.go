package usecase

import (
	"context"
	"errors"
	"strings"

	"timeflow/internal/tag"
	"timeflow/internal/tag/repository"
)

func (uc *implUseCase) Create(ctx context.Context, input tag.CreateTagInput) (tag.CreateTagOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return tag.CreateTagOutput{}, tag.ErrEmptyName
	}

	created, err := uc.repo.CreateTag(ctx, repository.CreateTagOptions{
		Name:  name,
		Color: input.Color,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return tag.CreateTagOutput{}, tag.ErrDuplicateName
		}
		uc.l.Errorf(ctx, "tag.usecase.Create: %v", err)
		return tag.CreateTagOutput{}, err
	}

	uc.refreshVocabulary(ctx)

	return tag.CreateTagOutput{Tag: created}, nil
}

func (uc *implUseCase) List(ctx context.Context) (tag.ListTagsOutput, error) {
	tags, err := uc.repo.ListTags(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "tag.usecase.List: %v", err)
		return tag.ListTagsOutput{}, err
	}

	return tag.ListTagsOutput{Tags: tags}, nil
}

func (uc *implUseCase) Update(ctx context.Context, input tag.UpdateTagInput) (tag.UpdateTagOutput, error) {
	updated, err := uc.repo.UpdateTag(ctx, repository.UpdateTagOptions{
		ID:    input.ID,
		Name:  strings.TrimSpace(input.Name),
		Color: input.Color,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return tag.UpdateTagOutput{}, tag.ErrTagNotFound
		case errors.Is(err, repository.ErrDuplicateName):
			return tag.UpdateTagOutput{}, tag.ErrDuplicateName
		}
		uc.l.Errorf(ctx, "tag.usecase.Update: %v", err)
		return tag.UpdateTagOutput{}, err
	}

	uc.refreshVocabulary(ctx)

	return tag.UpdateTagOutput{Tag: updated}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTag(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return tag.ErrTagNotFound
		}
		uc.l.Errorf(ctx, "tag.usecase.Delete: %v", err)
		return err
	}

	uc.refreshVocabulary(ctx)

	return nil
}

func (uc *implUseCase) Vocabulary(ctx context.Context) ([]string, error) {
	if names, ok := uc.cache.Get(vocabularyCacheKey); ok {
		return names, nil
	}

	names, err := uc.loadVocabulary(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "tag.usecase.Vocabulary: %v", err)
		return nil, err
	}
	uc.cache.Add(vocabularyCacheKey, names)

	return names, nil
}

func (uc *implUseCase) loadVocabulary(ctx context.Context) ([]string, error) {
	tags, err := uc.repo.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}

	return names, nil
}

// refreshVocabulary replaces the cached vocabulary after a mutation. A load
// failure only evicts the stale entry; the next Vocabulary call retries.
func (uc *implUseCase) refreshVocabulary(ctx context.Context) {
	names, err := uc.loadVocabulary(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "tag.usecase.refreshVocabulary: %v", err)
		uc.cache.Remove(vocabularyCacheKey)
		return
	}
	uc.cache.Add(vocabularyCacheKey, names)
}
