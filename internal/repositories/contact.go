package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-wallet-profiles/internal/models"
)

// ContactReadRepository handles contact list reads
type ContactReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewContactReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ContactReadRepository {
	return &ContactReadRepository{db: db, txGetter: txGetter}
}

// ListByOwner returns every contact saved by owner, ordered by name.
func (r *ContactReadRepository) ListByOwner(ctx context.Context, owner string) ([]models.ContactDB, error) {
	const query = `
		SELECT id, user_wallet_address, contact_wallet_address, name, email, company, location, created_at
		FROM contacts
		WHERE user_wallet_address = ?
		ORDER BY name ASC
	`
	args := []any{owner}
	ex := executor(ctx, r.db, r.txGetter)

	contacts := []models.ContactDB{}
	err := sqlx.SelectContext(ctx, ex, &contacts, ex.Rebind(query), args...)
	logQuery(query, args, len(contacts), err)

	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// ContactWriteRepository handles contact inserts and deletes
type ContactWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewContactWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ContactWriteRepository {
	return &ContactWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts contact and fills in its generated ID.
// An existing (owner, contact) pair yields ErrDuplicate.
func (r *ContactWriteRepository) Save(ctx context.Context, contact *models.ContactDB) error {
	const query = `
		INSERT INTO contacts (user_wallet_address, contact_wallet_address, name, email, company, location, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`
	args := []any{
		contact.UserWalletAddress,
		contact.ContactWalletAddress,
		contact.Name,
		contact.Email,
		contact.Company,
		contact.Location,
		contact.CreatedAt,
	}
	ex := executor(ctx, r.db, r.txGetter)

	var id int64
	err := sqlx.GetContext(ctx, ex, &id, ex.Rebind(query), args...)
	logQuery(query, args, id, err)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("save contact: %w", err)
	}

	contact.ID = id
	return nil
}

// Delete removes the (owner, contact) pair. ErrNotFound when nothing matched.
func (r *ContactWriteRepository) Delete(ctx context.Context, owner, contactWallet string) error {
	const query = `
		DELETE FROM contacts
		WHERE user_wallet_address = ? AND contact_wallet_address = ?
	`
	args := []any{owner, contactWallet}
	ex := executor(ctx, r.db, r.txGetter)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), args...)
	if err != nil {
		logQuery(query, args, 0, err)
		return fmt.Errorf("delete contact: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	logQuery(query, args, rowsAffected, err)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
