// Package storage elige el backend kv.Store según la config.
package storage

import (
	"context"
	"fmt"
	"io"

	"pet-manager/internal/adapters/storage/memory"
	pg "pet-manager/internal/adapters/storage/postgres"
	"pet-manager/internal/adapters/storage/sqlite"
	"pet-manager/internal/platform/config"
	"pet-manager/internal/ports/kv"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open devuelve el store y algo que cerrar al apagar.
func Open(ctx context.Context, cfg config.StoreConfig) (kv.Store, io.Closer, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return memory.NewKVStore(), nopCloser{}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewKVStore(db), db, nil

	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return pg.NewKVStore(db), db, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
