package core

import (
	"context"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// GuardScorer returns scorer unchanged when it declares itself safe for
// concurrent use, otherwise it wraps it in a SerializedScorer.
func GuardScorer(scorer Scorer) Scorer {
	if cs, ok := scorer.(ConcurrentScorer); ok && cs.ConcurrencySafe() {
		return scorer
	}
	if _, ok := scorer.(*SerializedScorer); ok {
		return scorer
	}
	return NewSerializedScorer(scorer)
}

// SerializedScorer allows a single Score call at a time on the wrapped scorer.
type SerializedScorer struct {
	inner Scorer
	sem   *semaphore.Weighted
}

// NewSerializedScorer wraps scorer behind a one-slot semaphore
func NewSerializedScorer(scorer Scorer) *SerializedScorer {
	return &SerializedScorer{inner: scorer, sem: semaphore.NewWeighted(1)}
}

// Score waits for exclusive access or for ctx to end
func (s *SerializedScorer) Score(ctx context.Context, vector FeatureVector) (float64, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return 0, fmt.Errorf("waiting for scorer: %w", err)
	}
	defer s.sem.Release(1)
	return s.inner.Score(ctx, vector)
}

// ConcurrencySafe is true: callers may share a SerializedScorer freely
func (s *SerializedScorer) ConcurrencySafe() bool {
	return true
}

// Unwrap returns the guarded scorer
func (s *SerializedScorer) Unwrap() Scorer {
	return s.inner
}
