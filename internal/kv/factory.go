package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ariefcatur/go-storefront.git/internal/postgres"
	"github.com/ariefcatur/go-storefront.git/internal/redisx"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSqlite   = "sqlite"
	BackendBadger   = "badger"
)

type Options struct {
	Backend     string
	Path        string // directory for file/sqlite/badger
	PostgresDSN string
	RedisAddr   string
}

// Open creates the Store selected by opts.Backend. An empty backend means file.
func Open(ctx context.Context, opts Options) (Store, error) {
	backend := opts.Backend
	if backend == "" {
		backend = BackendFile
	}
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(opts.Path)
	case BackendRedis:
		rdb := redisx.New(opts.RedisAddr)
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis store: ping: %w", err)
		}
		return NewRedisStore(rdb), nil
	case BackendPostgres:
		db, err := postgres.Connect(ctx, opts.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("postgres store: %w", err)
		}
		s, err := NewPostgresStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return s, nil
	case BackendSqlite:
		p := opts.Path
		if p != ":memory:" {
			if err := os.MkdirAll(p, 0o755); err != nil {
				return nil, fmt.Errorf("sqlite store: %w", err)
			}
			p = filepath.Join(p, "storefront.db")
		}
		return NewSqliteStore(p)
	case BackendBadger:
		p := opts.Path
		if p != "" {
			p = filepath.Join(p, "badger")
		}
		return OpenBadgerStore(p)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", backend)
	}
}
