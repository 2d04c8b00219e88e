package runtime

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"

	"github.com/aretw0/sortium/pkg/ports"
)

// CachedClassifier memoizes answers of an inner classifier by prompt digest.
// Cache failures are logged and bypassed; only the inner classifier can fail a turn.
type CachedClassifier struct {
	inner  ports.Classifier
	cache  ports.ClassificationCache
	logger *slog.Logger
}

// NewCachedClassifier wraps inner with cache. A nil logger discards output.
func NewCachedClassifier(inner ports.Classifier, cache ports.ClassificationCache, logger *slog.Logger) *CachedClassifier {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CachedClassifier{inner: inner, cache: cache, logger: logger}
}

// Classify returns the cached answer for prompt or asks the inner classifier.
func (c *CachedClassifier) Classify(ctx context.Context, prompt string) (string, error) {
	key := PromptKey(prompt)

	if val, ok, err := c.cache.Get(ctx, key); err != nil {
		c.logger.Warn("classification cache read failed", "error", err)
	} else if ok {
		c.logger.Debug("classification cache hit", "key", key)
		return val, nil
	}

	val, err := c.inner.Classify(ctx, prompt)
	if err != nil {
		return "", err
	}

	if err := c.cache.Set(ctx, key, val); err != nil {
		c.logger.Warn("classification cache write failed", "error", err)
	}
	return val, nil
}

// PromptKey is the cache key for a rendered prompt.
func PromptKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
