package cache

import (
	"fmt"

	"github.com/franq/backend/internal/application/pipeline"
	"github.com/franq/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewAnalysisStore creates the analysis store selected by configuration.
// "memory" never fails; "redis" requires a reachable Redis instance.
func NewAnalysisStore(cfg *config.Config, logger *zap.Logger) (pipeline.AnalysisStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Analysis.Store {
	case "redis":
		store, err := NewRedisAnalysisStore(cfg.Redis, cfg.Analysis.TTL)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis analysis store: %w", err)
		}
		logger.Info("using Redis analysis store",
			zap.String("addr", cfg.Redis.RedisAddr()),
			zap.Duration("ttl", cfg.Analysis.TTL),
		)
		return store, nil
	case "memory":
		logger.Info("using in-memory analysis store")
		return NewInMemoryAnalysisStore(), nil
	default:
		return nil, fmt.Errorf("unknown analysis store %q", cfg.Analysis.Store)
	}
}
