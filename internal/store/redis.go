package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-llm-relay/internal/logger"
	"github.com/MKhiriev/go-llm-relay/models"
	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the hash holding one field per connected user.
const DefaultRedisKey = "llm-relay:sessions"

// redisSessionStore keeps every record as a JSON field of a single hash,
// so Save is HSET, Delete is HDEL and LoadAll is HGETALL.
type redisSessionStore struct {
	redis  redis.UniversalClient
	key    string
	logger *logger.Logger
}

// NewConnectRedis parses a redis:// or rediss:// URL, connects, and pings.
func NewConnectRedis(ctx context.Context, url string, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err = rdb.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = rdb.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return rdb, nil
}

// NewRedisSessionStore constructs a [SessionStore] over rdb. An empty key
// selects [DefaultRedisKey].
func NewRedisSessionStore(rdb redis.UniversalClient, key string, log *logger.Logger) SessionStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &redisSessionStore{redis: rdb, key: key, logger: log}
}

func (s *redisSessionStore) Save(ctx context.Context, record models.PersistedRecord) error {
	if record.UserID == "" {
		return ErrInvalidRecord
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}

	if err = s.redis.HSet(ctx, s.key, record.UserID, payload).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}

	return nil
}

func (s *redisSessionStore) Delete(ctx context.Context, userID string) error {
	if err := s.redis.HDel(ctx, s.key, userID).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingStore, err)
	}
	return nil
}

// LoadAll skips fields that do not decode; they are logged and left in place.
func (s *redisSessionStore) LoadAll(ctx context.Context) ([]models.PersistedRecord, error) {
	fields, err := s.redis.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingStore, err)
	}

	records := make([]models.PersistedRecord, 0, len(fields))
	for userID, payload := range fields {
		var record models.PersistedRecord
		if err = json.Unmarshal([]byte(payload), &record); err != nil {
			s.logger.Warn().Err(err).Str("user_id", userID).Msg("skipping undecodable session record")
			continue
		}
		record.UserID = userID
		records = append(records, record)
	}

	return records, nil
}

func (s *redisSessionStore) Close() error {
	return s.redis.Close()
}
