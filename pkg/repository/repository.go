package repository

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed schema.sql
var schemaSQL string

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultDSN is used when no dsn configured
const DefaultDSN = "file:quickqr.db?cache=shared&mode=rwc&_txlock=immediate"

// Repositories contains all repository instances
type Repositories struct {
	Setting *SettingRepository
	DB      *sqlx.DB
}

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA cache_size = -2000", // 2MB, the store is tiny
	"PRAGMA temp_store = MEMORY",
	"PRAGMA busy_timeout = 5000",
}

// migration upgrades a store made by an older version, apply must be idempotent
type migration struct {
	name  string
	apply func(ctx context.Context, db *sqlx.DB) error
}

var migrations = []migration{
	{name: "settings.updated_at column", apply: addUpdatedAt},
	{name: "settings_touch trigger", apply: func(ctx context.Context, db *sqlx.DB) error {
		_, err := db.ExecContext(ctx, `
			CREATE TRIGGER IF NOT EXISTS settings_touch
			AFTER UPDATE OF value ON settings
			BEGIN
				UPDATE settings SET updated_at = CURRENT_TIMESTAMP WHERE key = NEW.key;
			END`)
		return err
	}},
}

// NewRepositories opens the database, creates the schema and upgrades old stores.
// The database is closed if any step fails.
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	if cfg.DSN == "" {
		cfg.DSN = DefaultDSN
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := prepare(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Repositories{Setting: NewSettingRepository(db), DB: db}, nil
}

func prepare(ctx context.Context, db *sqlx.DB) error {
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return runMigrations(ctx, db)
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// runMigrations applies all migrations in order
func runMigrations(ctx context.Context, db *sqlx.DB) error {
	for _, m := range migrations {
		if err := m.apply(ctx, db); err != nil {
			return fmt.Errorf("migrate %s: %w", m.name, err)
		}
	}
	return nil
}

// addUpdatedAt adds the column to stores made before it was tracked.
// sqlite rejects non-constant defaults in ALTER TABLE, so existing rows are stamped separately.
func addUpdatedAt(ctx context.Context, db *sqlx.DB) error {
	var count int
	err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM pragma_table_info('settings') WHERE name = 'updated_at'`)
	if err != nil {
		return fmt.Errorf("check column: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := db.ExecContext(ctx, `ALTER TABLE settings ADD COLUMN updated_at DATETIME`); err != nil {
		return fmt.Errorf("add column: %w", err)
	}
	if _, err := db.ExecContext(ctx, `UPDATE settings SET updated_at = CURRENT_TIMESTAMP`); err != nil {
		return fmt.Errorf("stamp rows: %w", err)
	}
	return nil
}
