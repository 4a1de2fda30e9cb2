package credentials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/unievents/internal/client/config"
)

func TestMemoryRepository_Contract(t *testing.T) {
	testRepositoryContract(t, NewMemoryRepository())
}

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	cfg.StoreBackend = config.StoreMemory
	r, closeFn, err := Open(ctx, cfg)
	require.NoError(t, err)
	require.IsType(t, &MemoryRepository{}, r)
	require.NoError(t, closeFn())

	cfg.StoreBackend = config.StoreSQLite
	cfg.StorePath = t.TempDir() + "/creds.db"
	r, closeFn, err = Open(ctx, cfg)
	require.NoError(t, err)
	require.IsType(t, &SQLiteRepository{}, r)
	require.NoError(t, r.Set(ctx, "token", "T"))
	require.NoError(t, closeFn())

	cfg.StoreBackend = "floppy"
	r, closeFn, err = Open(ctx, cfg)
	require.Error(t, err)
	require.Nil(t, r)
	require.Nil(t, closeFn, "no close func without a backend")
}
