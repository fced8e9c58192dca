package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/sbilibin2017/gw-wallet-profiles/internal/logger"
)

var (
	// ErrNotFound is returned when a lookup or delete matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("record already exists")
)

const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique or primary key violation
// raised by either supported driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
			strings.Contains(liteErr.Error(), "UNIQUE constraint failed")
	}

	return false
}

// logQuery writes the query on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
