package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/franq/backend/internal/application/pipeline"
	"github.com/franq/backend/internal/domain/shared"
	"github.com/franq/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const analysisKeyPrefix = "pipeline:analysis:"

// putAnalysisScript stores the payload only when its sequence is newer
// than the stored one, atomically on the Redis side. KEYS[1] is the
// result key, ARGV[1] the JSON payload, ARGV[2] the sequence, ARGV[3]
// the TTL in milliseconds (0 disables expiry).
var putAnalysisScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current then
	local stored = cjson.decode(current)
	if tonumber(stored['sequence']) >= tonumber(ARGV[2]) then
		return 0
	end
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)

// RedisAnalysisStore keeps the latest analysis result per lead in Redis.
// Results are shared across instances and expire after the configured TTL.
type RedisAnalysisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAnalysisStore connects to Redis and verifies the connection
func NewRedisAnalysisStore(cfg config.RedisConfig, ttl time.Duration) (*RedisAnalysisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisAnalysisStore{client: client, ttl: ttl}, nil
}

// NewRedisAnalysisStoreWithClient wraps an existing client, useful for
// sharing a connection across components
func NewRedisAnalysisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisAnalysisStore {
	return &RedisAnalysisStore{client: client, ttl: ttl}
}

// Put stores the result under the lead's key unless one with an equal
// or newer Sequence is already stored
func (s *RedisAnalysisStore) Put(ctx context.Context, result *pipeline.AnalysisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}
	key := analysisKeyPrefix + result.LeadID.String()
	if err := putAnalysisScript.Run(ctx, s.client, []string{key},
		payload, result.Sequence, s.ttl.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("failed to store analysis result: %w", err)
	}
	return nil
}

// Get returns the latest result for the lead, or shared.ErrNotFound
func (s *RedisAnalysisStore) Get(ctx context.Context, leadID uuid.UUID) (*pipeline.AnalysisResult, error) {
	key := analysisKeyPrefix + leadID.String()
	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read analysis result: %w", err)
	}

	var result pipeline.AnalysisResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}
	return &result, nil
}

// Close closes the underlying Redis client
func (s *RedisAnalysisStore) Close() error {
	return s.client.Close()
}

var _ pipeline.AnalysisStore = (*RedisAnalysisStore)(nil)
