package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/programmingwithjerry/AirBnB-clone-v4/database"
	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

const (
	statsCacheKey   = "hbnb:stats"
	statsVersionKey = "hbnb:stats:version"
)

// StatsService counts records per entity type. When a Redis client is
// configured the counts are cached for TTL and dropped by Invalidate.
// Invalidate also bumps a version key; counts computed under an older
// version are never cached.
type StatsService struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewStatsService(client *redis.Client, ttl time.Duration) *StatsService {
	return &StatsService{Redis: client, TTL: ttl}
}

// Counts returns {amenities, cities, places, reviews, states, users}.
func (s *StatsService) Counts(ctx context.Context, sess database.Session) (map[string]int64, error) {
	if counts, ok := s.cached(ctx); ok {
		return counts, nil
	}
	version := s.version(ctx)

	counts := make(map[string]int64, len(models.Kinds))
	for _, kind := range models.Kinds {
		n, err := sess.Count(kind)
		if err != nil {
			return nil, err
		}
		counts[kind.Plural()] = n
	}

	s.store(ctx, version, counts)
	return counts, nil
}

// Invalidate drops the cached counts after a write.
func (s *StatsService) Invalidate(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	_, err := s.Redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, statsVersionKey)
		pipe.Del(ctx, statsCacheKey)
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("failed to invalidate stats cache")
	}
}

func (s *StatsService) cached(ctx context.Context) (map[string]int64, bool) {
	if s.Redis == nil {
		return nil, false
	}
	raw, err := s.Redis.Get(ctx, statsCacheKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.WithError(err).Warn("failed to read stats cache")
		return nil, false
	}
	var counts map[string]int64
	if err := json.Unmarshal(raw, &counts); err != nil {
		log.WithError(err).Warn("corrupt stats cache entry")
		return nil, false
	}
	return counts, true
}

// version returns the current cache version, "" before the first write.
func (s *StatsService) version(ctx context.Context) string {
	if s.Redis == nil {
		return ""
	}
	v, err := s.Redis.Get(ctx, statsVersionKey).Result()
	if err != nil && err != redis.Nil {
		log.WithError(err).Warn("failed to read stats cache version")
	}
	return v
}

// store caches counts unless a write bumped the version after they were
// computed.
func (s *StatsService) store(ctx context.Context, version string, counts map[string]int64) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(counts)
	if err != nil {
		return
	}
	err = s.Redis.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, statsVersionKey).Result()
		if err != nil && err != redis.Nil {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, statsCacheKey, raw, s.TTL)
			return nil
		})
		return err
	}, statsVersionKey)
	if errors.Is(err, redis.TxFailedErr) {
		return
	}
	if err != nil {
		log.WithError(err).Warn("failed to write stats cache")
	}
}
