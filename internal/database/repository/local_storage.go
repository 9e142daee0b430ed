package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// LocalStorageRepo handles the host's per-app key/value store.
type LocalStorageRepo struct {
	db *sql.DB
}

func NewLocalStorageRepo(db *sql.DB) *LocalStorageRepo { return &LocalStorageRepo{db: db} }

func (r *LocalStorageRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO local_storage(key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at;
	`, key, value, time.Now().UTC().Truncate(time.Second))
	return err
}

// Get reports found=false for a missing key.
func (r *LocalStorageRepo) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (r *LocalStorageRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM local_storage WHERE key = ?`, key)
	return err
}

func (r *LocalStorageRepo) List(ctx context.Context) ([]StorageEntry, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value, updated_at FROM local_storage ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []StorageEntry
	for rows.Next() {
		var e StorageEntry
		if err := rows.Scan(&e.Key, &e.Value, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
