package credentials

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/unievents/internal/client/config"
)

// Open builds the Repository selected by cfg.StoreBackend. The returned
// close function releases the backend connection and is never nil when err is nil.
func Open(ctx context.Context, cfg *config.Config) (Repository, func() error, error) {
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		db, err := OpenSQLite(ctx, cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return NewSQLiteRepository(db), db.Close, nil

	case config.StoreValkey:
		client, err := OpenValkey(cfg.ValkeyAddr)
		if err != nil {
			return nil, nil, err
		}
		return NewValkeyRepository(client, cfg.ValkeyPrefix), func() error { client.Close(); return nil }, nil

	case config.StoreMemory:
		return NewMemoryRepository(), func() error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
