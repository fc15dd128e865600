package persistence

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func newSQLiteStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store, err := NewGormStore(db)
	require.NoError(t, err)
	return store
}

func TestKeyValueStores(t *testing.T) {
	backends := map[string]func(t *testing.T) KeyValueStore{
		"memory": func(t *testing.T) KeyValueStore { return NewMemoryStore() },
		"redis": func(t *testing.T) KeyValueStore {
			s, _ := newRedisStore(t)
			return s
		},
		"sqlite": func(t *testing.T) KeyValueStore { return newSQLiteStore(t) },
	}

	for name, newStore := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			kv := newStore(t)

			_, ok, err := kv.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Set(ctx, "cart", []byte(`[{"productId":"1","quantity":2}]`)))
			got, ok, err := kv.Get(ctx, "cart")
			require.NoError(t, err)
			require.True(t, ok)
			assert.JSONEq(t, `[{"productId":"1","quantity":2}]`, string(got))

			// overwrite
			require.NoError(t, kv.Set(ctx, "cart", []byte(`[]`)))
			got, ok, err = kv.Get(ctx, "cart")
			require.NoError(t, err)
			require.True(t, ok)
			assert.JSONEq(t, `[]`, string(got))

			require.NoError(t, kv.Delete(ctx, "cart"))
			_, ok, err = kv.Get(ctx, "cart")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, kv.Delete(ctx, "never-set"))

			assert.ErrorIs(t, kv.Set(ctx, "", []byte(`1`)), ErrEmptyKey)
			_, _, err = kv.Get(ctx, "")
			assert.ErrorIs(t, err, ErrEmptyKey)
		})
	}
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()

	value := []byte(`true`)
	require.NoError(t, kv.Set(ctx, "admin-session", value))
	value[0] = 'x'

	got, ok, err := kv.Get(ctx, "admin-session")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", string(got))

	got[0] = 'y'
	again, _, _ := kv.Get(ctx, "admin-session")
	assert.Equal(t, "true", string(again))
	assert.ElementsMatch(t, []string{"admin-session"}, kv.Keys())
}

func TestRedisStore_ServerDown(t *testing.T) {
	kv, mr := newRedisStore(t)
	mr.Close()

	err := kv.Set(context.Background(), "products", []byte(`[]`))
	assert.Error(t, err)
	_, _, err = kv.Get(context.Background(), "products")
	assert.Error(t, err)
}
