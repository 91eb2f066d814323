package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"timeflow/internal/model"
	"timeflow/internal/task"
	"timeflow/internal/task/repository"
	"timeflow/internal/task/usecase"
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

type fakeTaskRepo struct {
	createFunc func(opt repository.CreateTaskOptions) (model.Task, error)
	listFunc   func() ([]model.Task, error)
	updateFunc func(opt repository.UpdateTaskOptions) (model.Task, error)
	deleteFunc func(id string) error
}

func (f *fakeTaskRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if f.createFunc != nil {
		return f.createFunc(opt)
	}
	return model.Task{ID: "task-1", Title: opt.Title, Deadline: opt.Deadline, Tags: opt.Tags}, nil
}

func (f *fakeTaskRepo) GetOneTask(ctx context.Context, id string) (model.Task, error) {
	return model.Task{}, repository.ErrNotFound
}

func (f *fakeTaskRepo) ListTasks(ctx context.Context) ([]model.Task, error) {
	if f.listFunc != nil {
		return f.listFunc()
	}
	return []model.Task{}, nil
}

func (f *fakeTaskRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	if f.updateFunc != nil {
		return f.updateFunc(opt)
	}
	return model.Task{}, repository.ErrNotFound
}

func (f *fakeTaskRepo) DeleteTask(ctx context.Context, id string) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(id)
	}
	return repository.ErrNotFound
}

func TestCreate(t *testing.T) {
	t.Run("Empty Title Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &fakeTaskRepo{})
		_, err := uc.Create(context.Background(), task.CreateTaskInput{Title: "   "})
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
	})

	t.Run("Successful Create Trims Title", func(t *testing.T) {
		deadline := time.Date(2024, 1, 5, 17, 0, 0, 0, time.UTC)
		uc := usecase.New(&mockLogger{}, &fakeTaskRepo{})

		out, err := uc.Create(context.Background(), task.CreateTaskInput{
			Title:    "  Buy shelf brackets  ",
			Deadline: &deadline,
			Tags:     []string{"errands"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Title != "Buy shelf brackets" {
			t.Errorf("expected trimmed title, got %q", out.Task.Title)
		}
		if out.Task.Deadline == nil || !out.Task.Deadline.Equal(deadline) {
			t.Errorf("expected deadline %v, got %v", deadline, out.Task.Deadline)
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Not Found Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &fakeTaskRepo{})
		_, err := uc.Update(context.Background(), task.UpdateTaskInput{ID: "missing", Title: "X"})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Toggles Completion Both Ways", func(t *testing.T) {
		repo := &fakeTaskRepo{
			updateFunc: func(opt repository.UpdateTaskOptions) (model.Task, error) {
				cur := model.Task{ID: opt.ID, Title: "Buy shelf brackets", IsCompleted: true}
				if opt.IsCompleted != nil {
					cur.IsCompleted = *opt.IsCompleted
				}
				return cur, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo)

		uncomplete := false
		out, err := uc.Update(context.Background(), task.UpdateTaskInput{
			ID:          "task-1",
			IsCompleted: &uncomplete,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.IsCompleted {
			t.Errorf("expected task to be reopened")
		}
	})

	t.Run("Nil Completion Leaves State Unchanged", func(t *testing.T) {
		var sawCompleted *bool
		sentinel := true
		sawCompleted = &sentinel
		repo := &fakeTaskRepo{
			updateFunc: func(opt repository.UpdateTaskOptions) (model.Task, error) {
				sawCompleted = opt.IsCompleted
				return model.Task{ID: opt.ID, Title: opt.Title}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repo)

		_, err := uc.Update(context.Background(), task.UpdateTaskInput{ID: "task-1", Title: "Renamed"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sawCompleted != nil {
			t.Errorf("expected nil completion flag to pass through unchanged")
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("Not Found Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &fakeTaskRepo{})
		err := uc.Delete(context.Background(), "missing")
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Successful Delete", func(t *testing.T) {
		repo := &fakeTaskRepo{deleteFunc: func(id string) error { return nil }}
		uc := usecase.New(&mockLogger{}, repo)
		if err := uc.Delete(context.Background(), "task-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
