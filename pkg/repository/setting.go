package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"
)

// SettingRepository is a key-value store on top of the settings table
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, missing key returns empty string
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, nil
}

// SetSetting stores a setting value, replacing the existing one
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	return r.retry(ctx, "set setting "+key, func() error {
		query := `
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`
		_, err := r.db.ExecContext(ctx, query, key, value)
		return err
	})
}

// DeleteSetting removes a setting, missing key is not an error
func (r *SettingRepository) DeleteSetting(ctx context.Context, key string) error {
	return r.retry(ctx, "delete setting "+key, func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
		return err
	})
}

// SettingUpdatedAt returns the last modification time of the key, zero time for missing keys
func (r *SettingRepository) SettingUpdatedAt(ctx context.Context, key string) (time.Time, error) {
	var ts time.Time
	err := r.db.GetContext(ctx, &ts, "SELECT updated_at FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("get setting %s time: %w", key, err)
	}
	return ts, nil
}

// retry runs a write with backoff on lock errors, other errors stop it
func (r *SettingRepository) retry(ctx context.Context, op string, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		if err := fn(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: err}
		}
		return nil
	}, errNotRetryable)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
