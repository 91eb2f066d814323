package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"timeflow/internal/model"
	"timeflow/internal/tag/repository"
)

func (r implRepository) CreateTag(ctx context.Context, opt repository.CreateTagOptions) (model.Tag, error) {
	tag := model.Tag{
		ID:        uuid.New().String(),
		Name:      opt.Name,
		Color:     opt.Color,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tags (id, name, color, created_at) VALUES (?, ?, ?, ?)`,
		tag.ID, tag.Name, tag.Color, tag.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Tag{}, repository.ErrDuplicateName
		}
		r.l.Errorf(ctx, "tag.repository.sqlite.CreateTag: %v", err)
		return model.Tag{}, err
	}

	return tag, nil
}

func (r implRepository) GetOneTag(ctx context.Context, opt repository.GetOneTagOptions) (model.Tag, error) {
	query := `SELECT id, name, color, created_at FROM tags WHERE `
	var arg interface{}
	switch {
	case opt.ID != "":
		query += `id = ?`
		arg = opt.ID
	case opt.Name != "":
		query += `name = ?`
		arg = opt.Name
	default:
		return model.Tag{}, repository.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, query, arg)
	tag, err := scanTag(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Tag{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "tag.repository.sqlite.GetOneTag: %v", err)
		return model.Tag{}, err
	}

	return tag, nil
}

func (r implRepository) ListTags(ctx context.Context) ([]model.Tag, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, color, created_at FROM tags ORDER BY name ASC`)
	if err != nil {
		r.l.Errorf(ctx, "tag.repository.sqlite.ListTags: %v", err)
		return nil, err
	}
	defer rows.Close()

	tags := make([]model.Tag, 0)
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			r.l.Errorf(ctx, "tag.repository.sqlite.ListTags: %v", err)
			return nil, err
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "tag.repository.sqlite.ListTags: %v", err)
		return nil, err
	}

	return tags, nil
}

func (r implRepository) UpdateTag(ctx context.Context, opt repository.UpdateTagOptions) (model.Tag, error) {
	cur, err := r.GetOneTag(ctx, repository.GetOneTagOptions{ID: opt.ID})
	if err != nil {
		return model.Tag{}, err
	}

	if opt.Name != "" {
		cur.Name = opt.Name
	}
	if opt.Color != "" {
		cur.Color = opt.Color
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE tags SET name = ?, color = ? WHERE id = ?`,
		cur.Name, cur.Color, cur.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Tag{}, repository.ErrDuplicateName
		}
		r.l.Errorf(ctx, "tag.repository.sqlite.UpdateTag: %v", err)
		return model.Tag{}, err
	}

	return cur, nil
}

func (r implRepository) DeleteTag(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "tag.repository.sqlite.DeleteTag: %v", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "tag.repository.sqlite.DeleteTag: %v", err)
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

func scanTag(row rowScanner) (model.Tag, error) {
	var (
		tag       model.Tag
		createdAt string
	)
	if err := row.Scan(&tag.ID, &tag.Name, &tag.Color, &createdAt); err != nil {
		return model.Tag{}, err
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return model.Tag{}, err
	}
	tag.CreatedAt = ts

	return tag, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
