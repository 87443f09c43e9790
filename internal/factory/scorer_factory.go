package factory

import (
	"errors"
	"fmt"
	"io"

	"github.com/mikey/spam-detector/internal/adapters/static"
	"github.com/mikey/spam-detector/internal/config"
	"github.com/mikey/spam-detector/internal/core"
	"go.uber.org/zap"
)

// ScorerFactory creates the scorer selected by scorer.provider
type ScorerFactory struct {
	cfg       *config.Config
	logger    *zap.Logger
	vocab     *core.Vocabulary
	renderers *TextProcessorFactory
	cache     core.ScoreCache
	closers   []io.Closer
}

// NewScorerFactory creates a new scorer factory. cache may be nil, which
// disables score caching.
func NewScorerFactory(
	cfg *config.Config,
	logger *zap.Logger,
	vocab *core.Vocabulary,
	renderers *TextProcessorFactory,
	cache core.ScoreCache,
) *ScorerFactory {
	return &ScorerFactory{
		cfg:       cfg,
		logger:    logger,
		vocab:     vocab,
		renderers: renderers,
		cache:     cache,
	}
}

// CreateScorer creates the configured scorer, wrapped in the score cache
// when one is configured. Failures are reported as a StartupError.
func (f *ScorerFactory) CreateScorer() (core.Scorer, error) {
	provider := f.cfg.GetScorer().Provider

	scorer, err := f.createProvider(provider)
	if err != nil {
		return nil, &core.StartupError{Component: provider + " scorer", Err: err}
	}
	f.logger.Info("Created scorer", zap.String("provider", provider))
	if closer, ok := scorer.(io.Closer); ok {
		f.closers = append(f.closers, closer)
	}

	if f.cache == nil {
		return scorer, nil
	}

	cacheCfg, err := f.cfg.GetCache()
	if err != nil {
		return nil, &core.StartupError{Component: "score cache", Err: err}
	}
	// Guard before caching so cache hits skip the serialization queue.
	return core.NewCachingScorer(core.GuardScorer(scorer), f.cache, cacheCfg.TTL, f.logger), nil
}

func (f *ScorerFactory) createProvider(provider string) (core.Scorer, error) {
	switch provider {
	case "onnx":
		return NewONNXFactory(f.cfg, f.logger, f.vocab).CreateScorer()
	case "openai":
		return NewOpenAIFactory(f.cfg, f.logger, f.vocab, f.renderers).CreateScorer()
	case "bedrock":
		return NewBedrockFactory(f.cfg, f.logger, f.vocab, f.renderers).CreateScorer()
	case "gemini":
		return NewGeminiFactory(f.cfg, f.logger, f.vocab, f.renderers).CreateScorer()
	case "static":
		return static.NewScorer(f.cfg.GetFloat64("static.probability"))
	default:
		return nil, fmt.Errorf("unsupported scorer provider: %s", provider)
	}
}

// Close releases the resources held by scorers created by this factory
func (f *ScorerFactory) Close() error {
	var errs []error
	for _, closer := range f.closers {
		errs = append(errs, closer.Close())
	}
	f.closers = nil
	return errors.Join(errs...)
}
