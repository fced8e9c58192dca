package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-wallet-profiles/internal/logger"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// TxManager runs a function inside a single database transaction.
type TxManager struct {
	db *sqlx.DB
}

func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

// WithinTx begins a transaction, stores it in the context passed to fn and
// commits when fn returns nil. Any error or panic rolls the transaction back.
// Calls nested inside an existing transaction reuse it.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if GetTxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(setTxToContext(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// executor returns the transaction stored in ctx when there is one, otherwise db.
func executor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}
