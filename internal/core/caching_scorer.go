package core

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
)

// CachingScorer consults a ScoreCache before invoking the wrapped scorer.
// Cache failures are logged and never fail the request.
type CachingScorer struct {
	inner  Scorer
	cache  ScoreCache
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewCachingScorer creates a caching decorator
func NewCachingScorer(inner Scorer, cache ScoreCache, ttl time.Duration, logger *zap.Logger) *CachingScorer {
	return &CachingScorer{
		inner:  inner,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// VectorKey is the hex SHA-256 digest of the vector's float64 bits
func VectorKey(vector FeatureVector) string {
	h := sha256.New()
	buf := make([]byte, 8)
	for _, x := range vector {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(x))
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Score returns a cached probability when one exists
func (c *CachingScorer) Score(ctx context.Context, vector FeatureVector) (float64, error) {
	key := VectorKey(vector)

	entry, err := c.cache.Get(ctx, key)
	switch {
	case err == nil && entry != nil:
		c.logger.Debug("Cache hit for vector", zap.String("key", key))
		return entry.Probability, nil
	case err != nil && !errors.Is(err, ErrCacheMiss) && !errors.Is(err, ErrCacheExpired):
		c.logger.Warn("Failed to read cache", zap.String("key", key), zap.Error(err))
	}

	probability, err := c.inner.Score(ctx, vector)
	if err != nil {
		return 0, err
	}
	// Out-of-range values are rejected downstream and never cached.
	if !(probability >= 0 && probability <= 1) {
		return probability, nil
	}

	now := c.now()
	entry = &ScoreEntry{
		Key:         key,
		Probability: probability,
		LastSeen:    now,
		ExpiresAt:   now.Add(c.ttl),
	}
	if err := c.cache.Set(ctx, entry); err != nil {
		c.logger.Error("Failed to update cache", zap.Error(err))
	}

	return probability, nil
}

// ConcurrencySafe delegates to the wrapped scorer
func (c *CachingScorer) ConcurrencySafe() bool {
	cs, ok := c.inner.(ConcurrentScorer)
	return ok && cs.ConcurrencySafe()
}
