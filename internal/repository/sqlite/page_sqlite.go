package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"pagebuilder/internal/repository"
)

// PageSQLite is an embedded SQLite implementation of repository.PageRepository,
// used for single-node and local deployments.
type PageSQLite struct {
	db *sql.DB
}

// NewPageSQLite creates a repository on an opened and migrated database.
func NewPageSQLite(db *sql.DB) *PageSQLite {
	return &PageSQLite{db: db}
}

var _ repository.PageRepository = (*PageSQLite)(nil)

func (r *PageSQLite) Save(ctx context.Context, id string, data []byte) error {
	const q = `
		INSERT INTO pages (id, body, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, q, id, string(data))
	return err
}

func (r *PageSQLite) Load(ctx context.Context, id string) ([]byte, error) {
	var body string
	err := r.db.QueryRowContext(ctx, `SELECT body FROM pages WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(body), nil
}

func (r *PageSQLite) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[string], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pages`).Scan(&total); err != nil {
		return nil, err
	}

	limit := pq.Limit
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM pages ORDER BY id ASC LIMIT ? OFFSET ?`, limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[string]{Items: items, Total: total}, nil
}

func (r *PageSQLite) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pages WHERE id = ?`, id)
	return err
}

func (r *PageSQLite) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
