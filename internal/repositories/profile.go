package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-wallet-profiles/internal/models"
)

const profileColumns = `wallet_address, name, email, company, location, avatar_image, username, created_at, last_updated`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ProfileReadRepository handles profile lookups
type ProfileReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfileReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfileReadRepository {
	return &ProfileReadRepository{db: db, txGetter: txGetter}
}

// GetByWallet returns the profile stored under walletAddress or ErrNotFound.
func (r *ProfileReadRepository) GetByWallet(ctx context.Context, walletAddress string) (*models.ProfileDB, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE wallet_address = ?`
	return r.getOne(ctx, query, walletAddress)
}

// GetByUsername returns the profile whose stored username equals username exactly.
func (r *ProfileReadRepository) GetByUsername(ctx context.Context, username string) (*models.ProfileDB, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = ?`
	return r.getOne(ctx, query, username)
}

func (r *ProfileReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.ProfileDB, error) {
	ex := executor(ctx, r.db, r.txGetter)

	var profile models.ProfileDB
	err := sqlx.GetContext(ctx, ex, &profile, ex.Rebind(query), args...)
	logQuery(query, args, profile.WalletAddress, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// FindUsernameOwner returns the wallet of another profile already holding
// username (compared case-insensitively), or "" when the name is free.
func (r *ProfileReadRepository) FindUsernameOwner(ctx context.Context, username, excludeWallet string) (string, error) {
	const query = `
		SELECT wallet_address
		FROM profiles
		WHERE LOWER(username) = LOWER(?)
		  AND wallet_address <> ?
		LIMIT 1
	`
	args := []any{username, excludeWallet}
	ex := executor(ctx, r.db, r.txGetter)

	var owner string
	err := sqlx.GetContext(ctx, ex, &owner, ex.Rebind(query), args...)
	logQuery(query, args, owner, err)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("find username owner: %w", err)
	}
	return owner, nil
}

// Search matches term as a case-insensitive substring of name or username.
// Both sides are folded by the database LOWER so the comparison is symmetric.
// Username matches sort first, then rows are ordered by name.
func (r *ProfileReadRepository) Search(ctx context.Context, term, excludeWallet string, limit int) ([]models.ProfileDB, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"

	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE (LOWER(name) LIKE LOWER(?) ESCAPE '\' OR LOWER(COALESCE(username, '')) LIKE LOWER(?) ESCAPE '\')`
	args := []any{pattern, pattern}
	if excludeWallet != "" {
		query += ` AND wallet_address <> ?`
		args = append(args, excludeWallet)
	}
	query += `
		ORDER BY CASE WHEN LOWER(COALESCE(username, '')) LIKE LOWER(?) ESCAPE '\' THEN 0 ELSE 1 END, name ASC
		LIMIT ?`
	args = append(args, pattern, limit)

	return r.selectMany(ctx, query, args...)
}

// ListNamed returns profiles with a non-empty name in alphabetical order.
func (r *ProfileReadRepository) ListNamed(ctx context.Context, excludeWallet string, limit int) ([]models.ProfileDB, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE name IS NOT NULL AND name <> ''`
	var args []any
	if excludeWallet != "" {
		query += ` AND wallet_address <> ?`
		args = append(args, excludeWallet)
	}
	query += `
		ORDER BY name ASC
		LIMIT ?`
	args = append(args, limit)

	return r.selectMany(ctx, query, args...)
}

func (r *ProfileReadRepository) selectMany(ctx context.Context, query string, args ...any) ([]models.ProfileDB, error) {
	ex := executor(ctx, r.db, r.txGetter)

	profiles := []models.ProfileDB{}
	err := sqlx.SelectContext(ctx, ex, &profiles, ex.Rebind(query), args...)
	logQuery(query, args, len(profiles), err)

	if err != nil {
		return nil, fmt.Errorf("select profiles: %w", err)
	}
	return profiles, nil
}

// ProfileWriteRepository handles profile writes
type ProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfileWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db, txGetter: txGetter}
}

// Save performs an UPSERT keyed by wallet address. On update created_at is
// kept, NULL avatar_image/username keep their stored values, and the other
// fields are overwritten. A username clash yields ErrDuplicate.
func (r *ProfileWriteRepository) Save(ctx context.Context, profile *models.ProfileDB) error {
	const query = `
		INSERT INTO profiles (wallet_address, name, email, company, location, avatar_image, username, created_at, last_updated)
		VALUES (:wallet_address, :name, :email, :company, :location, :avatar_image, :username, :created_at, :last_updated)
		ON CONFLICT (wallet_address) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			company = excluded.company,
			location = excluded.location,
			avatar_image = COALESCE(excluded.avatar_image, profiles.avatar_image),
			username = COALESCE(excluded.username, profiles.username),
			last_updated = excluded.last_updated
	`
	ex := executor(ctx, r.db, r.txGetter)

	res, err := sqlx.NamedExecContext(ctx, ex, query, profile)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{profile.WalletAddress, profile.Username}, rowsAffected, err)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
