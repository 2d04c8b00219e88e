package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/sortium"
	"github.com/aretw0/sortium/internal/config"
	"github.com/aretw0/sortium/pkg/adapters/memory"
	"github.com/aretw0/sortium/pkg/adapters/openai"
	"github.com/aretw0/sortium/pkg/adapters/redis"
	"github.com/aretw0/sortium/pkg/domain"
	"github.com/aretw0/sortium/pkg/ports"
)

// createEngine initializes a Sortium engine from the configuration.
// The returned cleanup releases the cache connection, if any.
func createEngine(ctx context.Context, cfg *config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) (*sortium.Engine, func(), error) {
	classifier, err := createClassifier(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	engineOpts := []sortium.Option{
		sortium.WithLogger(logger),
		sortium.WithLifecycleHooks(hooks),
		sortium.WithClassifier(classifier),
	}

	cache, cleanup, err := createCache(ctx, cfg.Cache, logger)
	if err != nil {
		return nil, nil, err
	}
	if cache != nil {
		engineOpts = append(engineOpts, sortium.WithCache(cache))
	}

	engine, err := sortium.New(cfg.GraphPath, cfg.TemplatePath, engineOpts...)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("error initializing sortium: %w", err)
	}
	return engine, cleanup, nil
}

func createClassifier(cfg *config.Config, logger *slog.Logger) (ports.Classifier, error) {
	opts := []openai.Option{
		openai.WithBaseURL(cfg.Classifier.BaseURL),
		openai.WithParams(cfg.Classifier.Params),
		openai.WithTimeout(cfg.Classifier.Timeout),
		openai.WithLogger(logger),
	}
	if cfg.Classifier.APIKey != "" {
		opts = append(opts, openai.WithAPIKey(cfg.Classifier.APIKey))
	}
	c, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing classifier: %w", err)
	}
	return c, nil
}

// createCache builds the configured classification cache. A nil cache means caching is off.
// An unreachable Redis is reported but not fatal: cache failures are bypassed per turn anyway.
func createCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (ports.ClassificationCache, func(), error) {
	noop := func() {}
	switch cfg.Backend {
	case config.CacheMemory:
		logger.Debug("classification cache enabled", "backend", cfg.Backend)
		return memory.NewCache(), noop, nil
	case config.CacheRedis:
		c, err := redis.NewFromURL(cfg.RedisURL, redis.WithTTL(cfg.TTL))
		if err != nil {
			return nil, noop, fmt.Errorf("error initializing redis cache: %w", err)
		}
		if err := c.Ping(ctx); err != nil {
			logger.Warn("redis cache unreachable, classifications will not be cached", "error", err)
		} else {
			logger.Debug("classification cache enabled", "backend", cfg.Backend)
		}
		return c, func() { _ = c.Close() }, nil
	default:
		return nil, noop, nil
	}
}
