package http

import (
	"time"

	"timeflow/internal/model"
	"timeflow/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title    string     `json:"title"    binding:"required,min=1,max=200"`
	Deadline *time.Time `json:"deadline"`
	Tags     []string   `json:"tags"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:    r.Title,
		Deadline: r.Deadline,
		Tags:     r.Tags,
	}
}

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Title       string     `json:"title" binding:"omitempty,min=1,max=200"`
	IsCompleted *bool      `json:"is_completed"`
	Deadline    *time.Time `json:"deadline"`
	Tags        []string   `json:"tags"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		IsCompleted: r.IsCompleted,
		Deadline:    r.Deadline,
		Tags:        r.Tags,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	IsCompleted bool       `json:"is_completed"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		IsCompleted: t.IsCompleted,
		Deadline:    t.Deadline,
		Tags:        t.Tags,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
