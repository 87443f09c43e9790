package factory

import (
	"context"
	"errors"

	"github.com/mikey/spam-detector/internal/adapters/gemini"
	"github.com/mikey/spam-detector/internal/config"
	"github.com/mikey/spam-detector/internal/core"
	"go.uber.org/zap"
)

// GeminiFactory creates Gemini scorers
type GeminiFactory struct {
	cfg       *config.Config
	logger    *zap.Logger
	vocab     *core.Vocabulary
	renderers *TextProcessorFactory
}

// NewGeminiFactory creates a new Gemini factory
func NewGeminiFactory(cfg *config.Config, logger *zap.Logger, vocab *core.Vocabulary, renderers *TextProcessorFactory) *GeminiFactory {
	return &GeminiFactory{
		cfg:       cfg,
		logger:    logger,
		vocab:     vocab,
		renderers: renderers,
	}
}

// CreateScorer creates a Gemini scorer
func (f *GeminiFactory) CreateScorer() (core.Scorer, error) {
	geminiCfg := f.cfg.GetGemini()
	if geminiCfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	return gemini.NewScorer(
		context.Background(),
		geminiCfg.APIKey,
		geminiCfg.ModelName,
		geminiCfg.MaxTokens,
		geminiCfg.Temperature,
		geminiCfg.TopP,
		f.renderers.CreateRenderer(f.vocab, geminiCfg.MaxPromptSize),
		f.logger,
	)
}
