package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("HBNB_TYPE_STORAGE", "")
		t.Setenv("HBNB_API_PORT", "")
		t.Setenv("HBNB_STATS_TTL", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, StorageFile, cfg.StorageType)
		assert.Equal(t, "5000", cfg.APIPort)
		assert.Equal(t, "5001", cfg.WebPort)
		assert.Equal(t, 30*time.Second, cfg.StatsTTL)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("HBNB_TYPE_STORAGE", "db")
		t.Setenv("DB_HOST", "pg")
		t.Setenv("DB_NAME", "hbnb")
		t.Setenv("HBNB_STATS_TTL", "5s")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, StorageDB, cfg.StorageType)
		assert.Equal(t, 5*time.Second, cfg.StatsTTL)
		assert.Contains(t, cfg.DSN(), "host=pg")
		assert.Contains(t, cfg.DSN(), "dbname=hbnb")
	})

	t.Run("unknown storage", func(t *testing.T) {
		t.Setenv("HBNB_TYPE_STORAGE", "mongo")
		_, err := LoadConfig()
		assert.ErrorIs(t, err, ErrUnknownStorage)
	})

	t.Run("bad ttl", func(t *testing.T) {
		t.Setenv("HBNB_TYPE_STORAGE", "")
		t.Setenv("HBNB_STATS_TTL", "soon")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestNew(t *testing.T) {
	s, err := New(context.Background(), &Config{StorageType: StorageFile})
	require.NoError(t, err)
	assert.IsType(t, &FileStorage{}, s)

	_, err = New(context.Background(), &Config{StorageType: "nope"})
	assert.ErrorIs(t, err, ErrUnknownStorage)
}

func TestNewRedisClient(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		client, err := NewRedisClient(context.Background(), &Config{})
		require.NoError(t, err)
		assert.Nil(t, client)
	})

	t.Run("connects", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client, err := NewRedisClient(context.Background(), &Config{
			RedisHost: mr.Host(),
			RedisPort: mr.Port(),
		})
		require.NoError(t, err)
		require.NotNil(t, client)
		defer client.Close()
		assert.NoError(t, client.Ping(context.Background()).Err())
	})

	t.Run("unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		host, port := mr.Host(), mr.Port()
		mr.Close()
		_, err := NewRedisClient(context.Background(), &Config{RedisHost: host, RedisPort: port})
		assert.Error(t, err)
	})
}
