package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"timeflow/internal/model"
	"timeflow/internal/task/repository"
)

const timeLayout = time.RFC3339

func (r implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	now := time.Now().UTC()
	t := model.Task{
		ID:        uuid.New().String(),
		Title:     opt.Title,
		Deadline:  opt.Deadline,
		Tags:      opt.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}

	tags, err := json.Marshal(sliceOrEmpty(t.Tags))
	if err != nil {
		return model.Task{}, err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, title, is_completed, deadline, tags, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, boolToInt(t.IsCompleted), formatDeadline(t.Deadline),
		string(tags), t.CreatedAt.Format(timeLayout), t.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.CreateTask: %v", err)
		return model.Task{}, err
	}

	return t, nil
}

func (r implRepository) GetOneTask(ctx context.Context, id string) (model.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, is_completed, deadline, tags, created_at, updated_at
		 FROM tasks WHERE id = ?`, id)

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "task.repository.sqlite.GetOneTask: %v", err)
		return model.Task{}, err
	}

	return t, nil
}

func (r implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, is_completed, deadline, tags, created_at, updated_at
		 FROM tasks ORDER BY created_at DESC`)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.ListTasks: %v", err)
		return nil, err
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "task.repository.sqlite.ListTasks: %v", err)
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.ListTasks: %v", err)
		return nil, err
	}

	return tasks, nil
}

func (r implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	cur, err := r.GetOneTask(ctx, opt.ID)
	if err != nil {
		return model.Task{}, err
	}

	if opt.Title != "" {
		cur.Title = opt.Title
	}
	if opt.IsCompleted != nil {
		cur.IsCompleted = *opt.IsCompleted
	}
	if opt.Deadline != nil {
		cur.Deadline = opt.Deadline
	}
	if opt.Tags != nil {
		cur.Tags = opt.Tags
	}
	cur.UpdatedAt = time.Now().UTC()

	tags, err := json.Marshal(sliceOrEmpty(cur.Tags))
	if err != nil {
		return model.Task{}, err
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, is_completed = ?, deadline = ?, tags = ?, updated_at = ?
		 WHERE id = ?`,
		cur.Title, boolToInt(cur.IsCompleted), formatDeadline(cur.Deadline),
		string(tags), cur.UpdatedAt.Format(timeLayout), cur.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.UpdateTask: %v", err)
		return model.Task{}, err
	}

	return cur, nil
}

func (r implRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.DeleteTask: %v", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.DeleteTask: %v", err)
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t         model.Task
		completed int
		deadline  string
		tags      string
		timeStr   [2]string
	)
	if err := row.Scan(
		&t.ID, &t.Title, &completed, &deadline, &tags, &timeStr[0], &timeStr[1],
	); err != nil {
		return model.Task{}, err
	}

	t.IsCompleted = completed != 0

	if deadline != "" {
		ts, err := time.Parse(timeLayout, deadline)
		if err != nil {
			return model.Task{}, err
		}
		t.Deadline = &ts
	}

	for i, dst := range []*time.Time{&t.CreatedAt, &t.UpdatedAt} {
		ts, err := time.Parse(timeLayout, timeStr[i])
		if err != nil {
			return model.Task{}, err
		}
		*dst = ts
	}

	if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
		return model.Task{}, err
	}

	return t, nil
}

func formatDeadline(deadline *time.Time) string {
	if deadline == nil {
		return ""
	}
	return deadline.UTC().Format(timeLayout)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func sliceOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
