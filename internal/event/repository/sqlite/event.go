package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"timeflow/internal/event/repository"
	"timeflow/internal/model"
)

// Timestamps are stored as RFC3339 UTC strings so that an instant written
// by the resolver is echoed back byte-identical by the lookup tool, and so
// that the start_time index sorts chronologically.
const timeLayout = time.RFC3339

func (r implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	now := time.Now().UTC()
	ev := model.Event{
		ID:           uuid.New().String(),
		Title:        opt.Title,
		Description:  opt.Description,
		StartTime:    opt.StartTime.UTC(),
		EndTime:      opt.EndTime.UTC(),
		TagIDs:       opt.TagIDs,
		CalendarLink: opt.CalendarLink,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	ev.DurationMinutes = ev.Duration()

	tagIDs, err := json.Marshal(sliceOrEmpty(ev.TagIDs))
	if err != nil {
		return model.Event{}, err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO events (id, title, description, start_time, end_time, duration_min, tag_ids, calendar_link, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Title, ev.Description,
		ev.StartTime.Format(timeLayout), ev.EndTime.Format(timeLayout),
		ev.DurationMinutes, string(tagIDs), ev.CalendarLink,
		ev.CreatedAt.Format(timeLayout), ev.UpdatedAt.Format(timeLayout),
	)
	if err != nil {
		r.l.Errorf(ctx, "event.repository.sqlite.CreateEvent: %v", err)
		return model.Event{}, err
	}

	return ev, nil
}

func (r implRepository) GetOneEvent(ctx context.Context, id string) (model.Event, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, start_time, end_time, duration_min, tag_ids, calendar_link, created_at, updated_at
		 FROM events WHERE id = ?`, id)

	ev, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Event{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "event.repository.sqlite.GetOneEvent: %v", err)
		return model.Event{}, err
	}

	return ev, nil
}

func (r implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	query := `SELECT id, title, description, start_time, end_time, duration_min, tag_ids, calendar_link, created_at, updated_at
		 FROM events`
	args := make([]interface{}, 0, 2)
	where := ""
	if !opt.From.IsZero() {
		where = ` WHERE start_time >= ?`
		args = append(args, opt.From.UTC().Format(timeLayout))
	}
	if !opt.To.IsZero() {
		if where == "" {
			where = ` WHERE start_time <= ?`
		} else {
			where += ` AND start_time <= ?`
		}
		args = append(args, opt.To.UTC().Format(timeLayout))
	}
	query += where + ` ORDER BY start_time ASC`
	if opt.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, opt.Limit, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "event.repository.sqlite.ListEvents: %v", err)
		return nil, err
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			r.l.Errorf(ctx, "event.repository.sqlite.ListEvents: %v", err)
			return nil, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "event.repository.sqlite.ListEvents: %v", err)
		return nil, err
	}

	return events, nil
}

func (r implRepository) UpdateEvent(ctx context.Context, opt repository.UpdateEventOptions) (model.Event, error) {
	cur, err := r.GetOneEvent(ctx, opt.ID)
	if err != nil {
		return model.Event{}, err
	}

	if opt.Title != "" {
		cur.Title = opt.Title
	}
	if opt.Description != "" {
		cur.Description = opt.Description
	}
	if !opt.StartTime.IsZero() {
		cur.StartTime = opt.StartTime.UTC()
	}
	if !opt.EndTime.IsZero() {
		cur.EndTime = opt.EndTime.UTC()
	}
	if opt.TagIDs != nil {
		cur.TagIDs = opt.TagIDs
	}
	cur.DurationMinutes = cur.Duration()
	cur.UpdatedAt = time.Now().UTC()

	tagIDs, err := json.Marshal(sliceOrEmpty(cur.TagIDs))
	if err != nil {
		return model.Event{}, err
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE events SET title = ?, description = ?, start_time = ?, end_time = ?, duration_min = ?, tag_ids = ?, updated_at = ?
		 WHERE id = ?`,
		cur.Title, cur.Description,
		cur.StartTime.Format(timeLayout), cur.EndTime.Format(timeLayout),
		cur.DurationMinutes, string(tagIDs),
		cur.UpdatedAt.Format(timeLayout), cur.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "event.repository.sqlite.UpdateEvent: %v", err)
		return model.Event{}, err
	}

	return cur, nil
}

func (r implRepository) DeleteEvent(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "event.repository.sqlite.DeleteEvent: %v", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "event.repository.sqlite.DeleteEvent: %v", err)
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

func scanEvent(row rowScanner) (model.Event, error) {
	var (
		ev      model.Event
		tagIDs  string
		timeStr [4]string
	)
	if err := row.Scan(
		&ev.ID, &ev.Title, &ev.Description,
		&timeStr[0], &timeStr[1], &ev.DurationMinutes,
		&tagIDs, &ev.CalendarLink, &timeStr[2], &timeStr[3],
	); err != nil {
		return model.Event{}, err
	}

	for i, dst := range []*time.Time{&ev.StartTime, &ev.EndTime, &ev.CreatedAt, &ev.UpdatedAt} {
		ts, err := time.Parse(timeLayout, timeStr[i])
		if err != nil {
			return model.Event{}, err
		}
		*dst = ts
	}

	if err := json.Unmarshal([]byte(tagIDs), &ev.TagIDs); err != nil {
		return model.Event{}, err
	}

	return ev, nil
}

func sliceOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
