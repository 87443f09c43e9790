package core

import (
	"time"
)

// Verdict is the outcome of a scan. Values match the wire tags of
// ScanResponse.Result.
type Verdict int32

const (
	// VerdictUnknown is only produced when the pipeline failed.
	VerdictUnknown Verdict = 0
	VerdictHam     Verdict = 1
	VerdictSpam    Verdict = 2
)

// String returns the wire name of the verdict
func (v Verdict) String() string {
	switch v {
	case VerdictHam:
		return "HAM"
	case VerdictSpam:
		return "SPAM"
	default:
		return "UNKNOWN"
	}
}

// FeatureVector holds per-token occurrence counts aligned to a Vocabulary.
// The last position counts out-of-vocabulary tokens.
type FeatureVector []float64

// ScanRequest carries the text to classify
type ScanRequest struct {
	Content string
}

// ScanResult is the terminal state of one scan.
type ScanResult struct {
	Verdict     Verdict
	Probability float64
	// Failure is nil when the scan completed, otherwise a *VectorizationError
	// or *ScoringError.
	Failure  error
	Duration time.Duration
}

// Completed reports whether the scan produced a genuine classification
func (r *ScanResult) Completed() bool {
	return r.Failure == nil
}

// ScoreEntry is a cached probability keyed by feature vector digest
type ScoreEntry struct {
	Key         string
	Probability float64
	LastSeen    time.Time
	ExpiresAt   time.Time
}
