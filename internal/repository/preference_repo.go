package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type PreferenceSQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewPreferenceSQLite(db *sql.DB) *PreferenceSQLite {
	return &PreferenceSQLite{db: db, now: time.Now}
}

// Ensure implementation of Preferences interface at compile time.
var _ Preferences = (*PreferenceSQLite)(nil)

const (
	selectPreferenceSQL = `SELECT value FROM preferences WHERE visitor_id = ? AND key = ?`

	upsertPreferenceSQL = `
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(visitor_id, key) DO UPDATE SET
			value=excluded.value,
			updated_at=excluded.updated_at
	`
)

// Get fetches one preference. A missing row is ("", false, nil).
func (r *PreferenceSQLite) Get(ctx context.Context, visitorID, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, selectPreferenceSQL, visitorID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select preference %q: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or replaces one preference, stamping updated_at in UTC.
func (r *PreferenceSQLite) Set(ctx context.Context, visitorID, key, value string) error {
	if _, err := r.db.ExecContext(ctx, upsertPreferenceSQL, visitorID, key, value, r.now().UTC()); err != nil {
		return fmt.Errorf("upsert preference %q: %w", key, err)
	}
	return nil
}
