package core

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mikey/spam-detector/internal/utils"
	"go.uber.org/zap"
)

// ScanService runs vectorize → score → decide for each request.
// A failure in either of the first two stages yields VerdictUnknown, never an error.
type ScanService struct {
	vectorizer    *Vectorizer
	scorer        Scorer
	policy        DecisionPolicy
	logger        *zap.Logger
	textProcessor *utils.TextProcessor
	previewSize   int
}

// NewScanService creates the scan pipeline. Scorers that do not declare
// themselves concurrency safe are serialized.
func NewScanService(
	vectorizer *Vectorizer,
	scorer Scorer,
	policy DecisionPolicy,
	logger *zap.Logger,
	textProcessor *utils.TextProcessor,
	previewSize int,
) *ScanService {
	return &ScanService{
		vectorizer:    vectorizer,
		scorer:        GuardScorer(scorer),
		policy:        policy,
		logger:        logger,
		textProcessor: textProcessor,
		previewSize:   previewSize,
	}
}

// Policy returns the decision policy in use
func (s *ScanService) Policy() DecisionPolicy {
	return s.policy
}

// Scan classifies one request. The returned error is non-nil only when ctx
// ended before the pipeline finished; in that case no result is produced.
func (s *ScanService) Scan(ctx context.Context, req ScanRequest) (*ScanResult, error) {
	start := time.Now()
	logger := s.logger.With(zap.String("request_id", RequestIDFrom(ctx)))
	logger.Info("Scan initiated", zap.Int("content_length", len(req.Content)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vector, err := s.vectorize(req.Content)
	if err != nil {
		logger.Error("Vectorization failed",
			zap.Error(err),
			zap.String("content", s.preview(req.Content)))
		return failed(err, start), nil
	}
	logger.Info("Content vectorized",
		zap.Int("features", len(vector)),
		zap.Float64("oov_count", vector[len(vector)-1]))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	probability, err := s.score(ctx, vector)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Warn("Scan abandoned", zap.Error(ctxErr))
			return nil, ctxErr
		}
		logger.Error("Scoring failed", zap.Error(err))
		return failed(err, start), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	verdict := s.policy.Decide(probability)

	duration := time.Since(start)
	logger.Info("Scan succeeded",
		zap.String("verdict", verdict.String()),
		zap.Float64("probability", probability),
		zap.Float64("threshold", s.policy.Threshold()),
		zap.Duration("duration", duration))

	return &ScanResult{
		Verdict:     verdict,
		Probability: probability,
		Duration:    duration,
	}, nil
}

func failed(err error, start time.Time) *ScanResult {
	return &ScanResult{
		Verdict:  VerdictUnknown,
		Failure:  err,
		Duration: time.Since(start),
	}
}

func (s *ScanService) vectorize(text string) (vector FeatureVector, err error) {
	defer func() {
		if r := recover(); r != nil {
			vector = nil
			err = &VectorizationError{Err: fmt.Errorf("%w: %v", ErrVectorizerPanic, r)}
		}
	}()

	vector = s.vectorizer.Vectorize(text)
	if len(vector) != s.vectorizer.Vocabulary().Size() {
		return nil, &VectorizationError{Err: fmt.Errorf("vector length %d, vocabulary size %d",
			len(vector), s.vectorizer.Vocabulary().Size())}
	}
	return vector, nil
}

func (s *ScanService) score(ctx context.Context, vector FeatureVector) (probability float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			probability = 0
			err = &ScoringError{Err: fmt.Errorf("%w: %v", ErrScorerPanic, r)}
		}
	}()

	probability, err = s.scorer.Score(ctx, vector)
	if err != nil {
		return 0, &ScoringError{Err: err}
	}
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return 0, &ScoringError{Err: fmt.Errorf("%w: %v", ErrProbabilityOutOfRange, probability)}
	}
	return probability, nil
}

func (s *ScanService) preview(text string) string {
	if s.textProcessor == nil {
		return text
	}
	return s.textProcessor.ProcessText(text, s.previewSize)
}
