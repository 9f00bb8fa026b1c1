package repository

import (
	"context"
	"database/sql"
)

// Preferences is durable per-visitor key/value storage.
type Preferences interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, visitorID, key string) (string, bool, error)
	Set(ctx context.Context, visitorID, key, value string) error
}

type Repository struct {
	Preferences Preferences
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Preferences: NewPreferenceSQLite(db),
	}
}
