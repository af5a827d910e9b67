package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pagebuilder/internal/repository"
)

// PagePostgres is a PostgreSQL implementation of repository.PageRepository.
// Pages live in a single key-value table: id -> JSONB body.
type PagePostgres struct {
	db *sql.DB
}

// NewPagePostgres creates a new PagePostgres repository.
func NewPagePostgres(db *sql.DB) *PagePostgres {
	return &PagePostgres{db: db}
}

var _ repository.PageRepository = (*PagePostgres)(nil)

// Save upserts the page body under id.
func (r *PagePostgres) Save(ctx context.Context, id string, data []byte) error {
	const q = `
		INSERT INTO pages (id, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, q, id, string(data))
	return err
}

// Load fetches the page body stored under id.
func (r *PagePostgres) Load(ctx context.Context, id string) ([]byte, error) {
	const q = `SELECT body FROM pages WHERE id = $1`
	var body string
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return []byte(body), nil
}

// List returns stored page ids using LIMIT/OFFSET pagination and a total count.
func (r *PagePostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[string], error) {
	const qCount = `SELECT COUNT(*) FROM pages`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id
		FROM pages
		ORDER BY id ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
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

// Delete removes a page by id. It does not return an error if the row does not exist.
func (r *PagePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM pages WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

// Ping verifies database connectivity.
func (r *PagePostgres) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
