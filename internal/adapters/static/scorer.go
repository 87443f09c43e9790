// Package static provides a scorer that returns a fixed probability.
package static

import (
	"context"
	"fmt"
	"math"

	"github.com/mikey/spam-detector/internal/core"
)

// Scorer always returns the same probability
type Scorer struct {
	probability float64
}

// NewScorer creates a static scorer
func NewScorer(probability float64) (*Scorer, error) {
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return nil, fmt.Errorf("%w: %v", core.ErrProbabilityOutOfRange, probability)
	}
	return &Scorer{probability: probability}, nil
}

// Score returns the configured probability
func (s *Scorer) Score(ctx context.Context, _ core.FeatureVector) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.probability, nil
}

// ConcurrencySafe is always true
func (s *Scorer) ConcurrencySafe() bool {
	return true
}
