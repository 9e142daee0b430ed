package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// PageLogRepo records device page mutations for inspection.
type PageLogRepo struct {
	db *sql.DB
}

func NewPageLogRepo(db *sql.DB) *PageLogRepo { return &PageLogRepo{db: db} }

// Add stores e, assigning an ID and timestamp when missing.
func (r *PageLogRepo) Add(ctx context.Context, e PageLogEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO page_log(id, op, container_total, payload, result, created_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`, e.ID, e.Op, e.ContainerTotal, e.Payload, e.Result, e.CreatedAt)
	return err
}

// Recent returns up to limit entries, newest first.
func (r *PageLogRepo) Recent(ctx context.Context, limit int) ([]PageLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, op, container_total, payload, result, created_at
	FROM page_log ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PageLogEntry
	for rows.Next() {
		var e PageLogEntry
		if err := rows.Scan(&e.ID, &e.Op, &e.ContainerTotal, &e.Payload, &e.Result, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountByOp returns the number of logged mutations per operation.
func (r *PageLogRepo) CountByOp(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT op, COUNT(*) FROM page_log GROUP BY op`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var (
			op string
			n  int
		)
		if err := rows.Scan(&op, &n); err != nil {
			return nil, err
		}
		out[op] = n
	}
	return out, rows.Err()
}
