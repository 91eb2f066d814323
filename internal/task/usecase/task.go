package usecase

import (
	"context"
	"errors"
	"strings"

	"timeflow/internal/task"
	"timeflow/internal/task/repository"
)

func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyTitle
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:    title,
		Deadline: input.Deadline,
		Tags:     input.Tags,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: created}, nil
}

func (uc *implUseCase) List(ctx context.Context) (task.ListTasksOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{Tasks: tasks}, nil
}

func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:          input.ID,
		Title:       strings.TrimSpace(input.Title),
		IsCompleted: input.IsCompleted,
		Deadline:    input.Deadline,
		Tags:        input.Tags,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.UpdateTaskOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Update: %v", err)
		return task.UpdateTaskOutput{}, err
	}

	return task.UpdateTaskOutput{Task: updated}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Delete: %v", err)
		return err
	}

	return nil
}
