//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=../../mocks/mock_ports.go -package=mocks

package core

import (
	"context"
)

// Scorer maps a feature vector to a spam probability in [0,1]
type Scorer interface {
	// Score runs the model on a single vector
	Score(ctx context.Context, vector FeatureVector) (float64, error)
}

// ConcurrentScorer is implemented by scorers that know whether they may be
// invoked from several goroutines at once.
type ConcurrentScorer interface {
	ConcurrencySafe() bool
}

// ScoreCache stores probabilities computed for previously seen vectors
type ScoreCache interface {
	// Get retrieves a cached entry for a vector digest
	Get(ctx context.Context, key string) (*ScoreEntry, error)

	// Set stores a cache entry
	Set(ctx context.Context, entry *ScoreEntry) error

	// Delete removes a cache entry
	Delete(ctx context.Context, key string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}
