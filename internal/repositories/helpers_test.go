package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-wallet-profiles/internal/models"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/storage"
)

const (
	walletAlice = "AliceWa11etAddress1111111111111111111111"
	walletBob   = "BobWa11etAddress222222222222222222222222"
	walletCarol = "CarolWa11etAddress3333333333333333333333"
	walletDave  = "DaveWa11etAddress44444444444444444444444"
)

func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, storage.DriverSQLite, filepath.Join(t.TempDir(), "test.db"), 1, 1)
	require.NoError(t, err)
	require.NoError(t, storage.Init(ctx, db))

	t.Cleanup(func() { db.Close() })
	return db
}

func strPtr(s string) *string {
	return &s
}

func newProfile(wallet, name string, username *string, at time.Time) *models.ProfileDB {
	return &models.ProfileDB{
		WalletAddress: wallet,
		Name:          name,
		Email:         name + "@example.com",
		Username:      username,
		CreatedAt:     at,
		LastUpdated:   at,
	}
}

func walletsOf(profiles []models.ProfileDB) []string {
	wallets := make([]string, 0, len(profiles))
	for _, p := range profiles {
		wallets = append(wallets, p.WalletAddress)
	}
	return wallets
}
