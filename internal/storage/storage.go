// Package storage opens the relational store and creates its schema.
package storage

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"

	"github.com/sbilibin2017/gw-wallet-profiles/internal/logger"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		wallet_address TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		avatar_image TEXT,
		username TEXT,
		created_at TIMESTAMP NOT NULL,
		last_updated TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_profiles_name ON profiles(name)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_profiles_username ON profiles(username)`,
	// foreign_keys is off by default in SQLite, so the reference is declarative only.
	`CREATE TABLE IF NOT EXISTS contacts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_wallet_address TEXT NOT NULL REFERENCES profiles(wallet_address),
		contact_wallet_address TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		UNIQUE (user_wallet_address, contact_wallet_address)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_user ON contacts(user_wallet_address)`,
}

// Owners are not required to have a profile, so contacts carry no REFERENCES here.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		wallet_address TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		avatar_image TEXT,
		username TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		last_updated TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_profiles_name ON profiles(name)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_profiles_username ON profiles(username)`,
	`CREATE TABLE IF NOT EXISTS contacts (
		id BIGSERIAL PRIMARY KEY,
		user_wallet_address TEXT NOT NULL,
		contact_wallet_address TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE (user_wallet_address, contact_wallet_address)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_contacts_user ON contacts(user_wallet_address)`,
}

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know by default.
	sqlx.BindDriver(DriverSQLite, sqlx.QUESTION)

	// SQLite's built-in LOWER folds ASCII only; PostgreSQL folds Unicode.
	// Overriding it on every SQLite connection keeps both dialects in step.
	if err := sqlite.RegisterDeterministicScalarFunction("lower", 1, unicodeLower); err != nil {
		panic(fmt.Sprintf("register sqlite lower: %v", err))
	}
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

// Open connects to the database, applies pool limits and verifies the connection.
func Open(ctx context.Context, driver, dsn string, maxOpenConns, maxIdleConns int) (*sqlx.DB, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return db, nil
}

// Init creates tables and indexes if they do not exist yet.
func Init(ctx context.Context, db *sqlx.DB) error {
	schema := sqliteSchema
	if db.DriverName() == DriverPostgres {
		schema = postgresSchema
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("schema statement failed", "driver", db.DriverName(), "error", err)
			return fmt.Errorf("init schema: %w", err)
		}
	}

	logger.Log.Infow("schema ready", "driver", db.DriverName())
	return nil
}
