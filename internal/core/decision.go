package core

import (
	"fmt"
	"math"
)

// DefaultThreshold is the spam cutoff the bundled model was calibrated for
const DefaultThreshold = 0.8961

// DecisionPolicy turns a probability into a verdict
type DecisionPolicy struct {
	threshold float64
}

// NewDecisionPolicy validates the threshold
func NewDecisionPolicy(threshold float64) (DecisionPolicy, error) {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return DecisionPolicy{}, fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}
	return DecisionPolicy{threshold: threshold}, nil
}

// Threshold returns the cutoff
func (p DecisionPolicy) Threshold() float64 {
	return p.threshold
}

// Decide returns SPAM at or above the threshold and HAM below it
func (p DecisionPolicy) Decide(probability float64) Verdict {
	if probability < p.threshold {
		return VerdictHam
	}
	return VerdictSpam
}
