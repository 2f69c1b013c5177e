package persist

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/l1jgo/bestiary/internal/config"
	"github.com/l1jgo/bestiary/internal/lore"
)

// ErrNoStore is returned by Open when storage is disabled. Lore then lives
// in memory only.
var ErrNoStore = errors.New("persist: storage disabled")

// LoreStore saves and restores lore records. Save upserts: records of races
// not passed are left alone.
type LoreStore interface {
	Load(ctx context.Context) ([]lore.Record, error)
	Save(ctx context.Context, recs []lore.Record) error
	Close() error
}

// Open connects the backend named by cfg.Storage.Driver and prepares its
// schema.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (LoreStore, error) {
	switch cfg.Storage.Driver {
	case "", "none":
		return nil, ErrNoStore
	case "postgres":
		db, err := NewDB(ctx, cfg.Database, log)
		if err != nil {
			return nil, err
		}
		if err := RunMigrations(ctx, db.Pool); err != nil {
			db.Close()
			return nil, err
		}
		return NewLoreRepo(db), nil
	case "sqlite":
		s, err := OpenSQLite(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "redis":
		s, err := NewRedisLoreStore(ctx, cfg.Storage.RedisAddr, cfg.Storage.RedisDB, cfg.Storage.KeyPrefix)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
