package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"timeflow/internal/model"
	"timeflow/internal/tag"
	"timeflow/internal/tag/repository"
	"timeflow/internal/tag/usecase"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeTagRepo struct {
	createFunc func(opt repository.CreateTagOptions) (model.Tag, error)
	listFunc   func() ([]model.Tag, error)
	updateFunc func(opt repository.UpdateTagOptions) (model.Tag, error)
	deleteFunc func(id string) error
	listCalls  int
}

func (f *fakeTagRepo) CreateTag(ctx context.Context, opt repository.CreateTagOptions) (model.Tag, error) {
	if f.createFunc != nil {
		return f.createFunc(opt)
	}
	return model.Tag{ID: "tag-1", Name: opt.Name, Color: opt.Color}, nil
}

func (f *fakeTagRepo) GetOneTag(ctx context.Context, opt repository.GetOneTagOptions) (model.Tag, error) {
	return model.Tag{}, repository.ErrNotFound
}

func (f *fakeTagRepo) ListTags(ctx context.Context) ([]model.Tag, error) {
	f.listCalls++
	if f.listFunc != nil {
		return f.listFunc()
	}
	return []model.Tag{}, nil
}

func (f *fakeTagRepo) UpdateTag(ctx context.Context, opt repository.UpdateTagOptions) (model.Tag, error) {
	if f.updateFunc != nil {
		return f.updateFunc(opt)
	}
	return model.Tag{ID: opt.ID, Name: opt.Name, Color: opt.Color}, nil
}

func (f *fakeTagRepo) DeleteTag(ctx context.Context, id string) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(id)
	}
	return nil
}

func TestCreate(t *testing.T) {
	t.Run("Empty Name Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &fakeTagRepo{})
		_, err := uc.Create(context.Background(), tag.CreateTagInput{Name: "   "})
		if !errors.Is(err, tag.ErrEmptyName) {
			t.Errorf("expected ErrEmptyName, got %v", err)
		}
	})

	t.Run("Duplicate Name Error", func(t *testing.T) {
		repo := &fakeTagRepo{
			createFunc: func(opt repository.CreateTagOptions) (model.Tag, error) {
				return model.Tag{}, repository.ErrDuplicateName
			},
		}
		uc := usecase.New(&mockLogger{}, repo)
		_, err := uc.Create(context.Background(), tag.CreateTagInput{Name: "work"})
		if !errors.Is(err, tag.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("Successful Create Trims Name", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &fakeTagRepo{})
		out, err := uc.Create(context.Background(), tag.CreateTagInput{Name: " work ", Color: "#ff0000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Tag.Name != "work" {
			t.Errorf("expected trimmed name %q, got %q", "work", out.Tag.Name)
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Not Found Error", func(t *testing.T) {
		repo := &fakeTagRepo{
			updateFunc: func(opt repository.UpdateTagOptions) (model.Tag, error) {
				return model.Tag{}, repository.ErrNotFound
			},
		}
		uc := usecase.New(&mockLogger{}, repo)
		_, err := uc.Update(context.Background(), tag.UpdateTagInput{ID: "missing", Name: "x"})
		if !errors.Is(err, tag.ErrTagNotFound) {
			t.Errorf("expected ErrTagNotFound, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("Not Found Error", func(t *testing.T) {
		repo := &fakeTagRepo{
			deleteFunc: func(id string) error { return repository.ErrNotFound },
		}
		uc := usecase.New(&mockLogger{}, repo)
		if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, tag.ErrTagNotFound) {
			t.Errorf("expected ErrTagNotFound, got %v", err)
		}
	})
}

func TestVocabulary(t *testing.T) {
	t.Run("Caches Tag Names", func(t *testing.T) {
		repo := &fakeTagRepo{
			listFunc: func() ([]model.Tag, error) {
				return []model.Tag{{Name: "food"}, {Name: "work"}}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo)

		names, err := uc.Vocabulary(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(names, []string{"food", "work"}) {
			t.Errorf("unexpected vocabulary: %v", names)
		}

		if _, err := uc.Vocabulary(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.listCalls != 1 {
			t.Errorf("expected single repository load, got %d", repo.listCalls)
		}
	})

	t.Run("Refreshed After Create", func(t *testing.T) {
		tags := []model.Tag{{Name: "food"}}
		repo := &fakeTagRepo{
			listFunc: func() ([]model.Tag, error) { return tags, nil },
		}
		uc := usecase.New(&mockLogger{}, repo)

		if _, err := uc.Vocabulary(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		tags = []model.Tag{{Name: "food"}, {Name: "work"}}
		if _, err := uc.Create(context.Background(), tag.CreateTagInput{Name: "work"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		names, err := uc.Vocabulary(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(names, []string{"food", "work"}) {
			t.Errorf("expected refreshed vocabulary, got %v", names)
		}
	})
}
