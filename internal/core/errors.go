package core

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyVocabulary       = errors.New("vocabulary has no tokens")
	ErrDuplicateToken        = errors.New("vocabulary contains duplicate tokens")
	ErrProbabilityOutOfRange = errors.New("probability outside [0,1]")
	ErrInvalidThreshold      = errors.New("threshold outside [0,1]")
	ErrScorerPanic           = errors.New("scorer panic")
	ErrVectorizerPanic       = errors.New("vectorizer panic")

	// ScoreCache implementations return these for a miss
	ErrCacheMiss    = errors.New("cache entry not found")
	ErrCacheExpired = errors.New("cache entry expired")
)

// VectorizationError means the text could not be turned into a feature vector
type VectorizationError struct {
	Err error
}

func (e *VectorizationError) Error() string {
	return fmt.Sprintf("vectorization failed: %v", e.Err)
}

func (e *VectorizationError) Unwrap() error {
	return e.Err
}

// ScoringError means the scorer did not produce a usable probability
type ScoringError struct {
	Err error
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("scoring failed: %v", e.Err)
}

func (e *ScoringError) Unwrap() error {
	return e.Err
}

// StartupError is fatal: the service must not accept requests.
type StartupError struct {
	Component string
	Err       error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup failed loading %s: %v", e.Component, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}
