package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"timeflow/internal/goal/repository"
	"timeflow/internal/model"
)

const timeLayout = time.RFC3339

func (r implRepository) CreateGoal(ctx context.Context, opt repository.CreateGoalOptions) (model.Goal, error) {
	now := time.Now().UTC()
	g := model.Goal{
		ID:             uuid.New().String(),
		Name:           opt.Name,
		TimePeriod:     opt.TimePeriod,
		TargetHours:    opt.TargetHours,
		Comparison:     opt.Comparison,
		EligibleTagIDs: opt.EligibleTagIDs,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	tagIDs, err := json.Marshal(g.EligibleTagIDs)
	if err != nil {
		return model.Goal{}, err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO goals (id, name, time_period, target_hours, comparison, eligible_tag_ids, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Name, string(g.TimePeriod), g.TargetHours, string(g.Comparison),
		string(tagIDs), g.CreatedAt.Format(timeLayout), g.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		r.l.Errorf(ctx, "goal.repository.sqlite.CreateGoal: %v", err)
		return model.Goal{}, err
	}

	return g, nil
}

func (r implRepository) GetOneGoal(ctx context.Context, id string) (model.Goal, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, time_period, target_hours, comparison, eligible_tag_ids, created_at, updated_at
		 FROM goals WHERE id = ?`, id)

	g, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Goal{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "goal.repository.sqlite.GetOneGoal: %v", err)
		return model.Goal{}, err
	}

	return g, nil
}

func (r implRepository) ListGoals(ctx context.Context) ([]model.Goal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, time_period, target_hours, comparison, eligible_tag_ids, created_at, updated_at
		 FROM goals ORDER BY created_at ASC`)
	if err != nil {
		r.l.Errorf(ctx, "goal.repository.sqlite.ListGoals: %v", err)
		return nil, err
	}
	defer rows.Close()

	goals := make([]model.Goal, 0)
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			r.l.Errorf(ctx, "goal.repository.sqlite.ListGoals: %v", err)
			return nil, err
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "goal.repository.sqlite.ListGoals: %v", err)
		return nil, err
	}

	return goals, nil
}

func (r implRepository) UpdateGoal(ctx context.Context, opt repository.UpdateGoalOptions) (model.Goal, error) {
	cur, err := r.GetOneGoal(ctx, opt.ID)
	if err != nil {
		return model.Goal{}, err
	}

	if opt.Name != "" {
		cur.Name = opt.Name
	}
	if opt.TimePeriod != "" {
		cur.TimePeriod = opt.TimePeriod
	}
	if opt.TargetHours > 0 {
		cur.TargetHours = opt.TargetHours
	}
	if opt.Comparison != "" {
		cur.Comparison = opt.Comparison
	}
	if opt.EligibleTagIDs != nil {
		cur.EligibleTagIDs = opt.EligibleTagIDs
	}
	cur.UpdatedAt = time.Now().UTC()

	tagIDs, err := json.Marshal(cur.EligibleTagIDs)
	if err != nil {
		return model.Goal{}, err
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE goals SET name = ?, time_period = ?, target_hours = ?, comparison = ?, eligible_tag_ids = ?, updated_at = ?
		 WHERE id = ?`,
		cur.Name, string(cur.TimePeriod), cur.TargetHours, string(cur.Comparison),
		string(tagIDs), cur.UpdatedAt.Format(timeLayout), cur.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "goal.repository.sqlite.UpdateGoal: %v", err)
		return model.Goal{}, err
	}

	return cur, nil
}

func (r implRepository) DeleteGoal(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "goal.repository.sqlite.DeleteGoal: %v", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "goal.repository.sqlite.DeleteGoal: %v", err)
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

func scanGoal(row rowScanner) (model.Goal, error) {
	var (
		g          model.Goal
		period     string
		comparison string
		tagIDs     string
		createdAt  string
		updatedAt  string
	)
	if err := row.Scan(&g.ID, &g.Name, &period, &g.TargetHours, &comparison, &tagIDs, &createdAt, &updatedAt); err != nil {
		return model.Goal{}, err
	}

	g.TimePeriod = model.TimePeriod(period)
	g.Comparison = model.Comparison(comparison)

	if err := json.Unmarshal([]byte(tagIDs), &g.EligibleTagIDs); err != nil {
		return model.Goal{}, err
	}

	for _, tc := range []struct {
		src string
		dst *time.Time
	}{{createdAt, &g.CreatedAt}, {updatedAt, &g.UpdatedAt}} {
		ts, err := time.Parse(timeLayout, tc.src)
		if err != nil {
			return model.Goal{}, err
		}
		*tc.dst = ts
	}

	return g, nil
}
