package persistence

import (
	"context"
	"fmt"
	"log"

	"github.com/YokoReis/focus-flash-forge-23/config"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Backend is an opened KeyValueStore plus the connections behind it.
type Backend struct {
	Store KeyValueStore
	// Redis is set for the redis backend so other components can share it.
	Redis *redis.Client
	db    *gorm.DB
}

// Open connects the backend named by cfg.StoreBackend.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory, "":
		log.Printf("[persistence.open] using in-memory snapshots; data is lost on restart")
		return &Backend{Store: NewMemoryStore()}, nil

	case config.BackendRedis:
		client, err := config.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: NewRedisStore(client), Redis: client}, nil

	case config.BackendPostgres, config.BackendSQLite:
		db, err := config.OpenGorm(cfg)
		if err != nil {
			return nil, err
		}
		store, err := NewGormStore(db)
		if err != nil {
			config.CloseGorm(db)
			return nil, err
		}
		return &Backend{Store: store, db: db}, nil

	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}

// Close releases the backend connections.
func (b *Backend) Close() {
	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			log.Printf("[persistence.close] redis: %v", err)
		}
	}
	config.CloseGorm(b.db)
}
