package factory

import (
	"errors"

	"github.com/mikey/spam-detector/internal/adapters/openai"
	"github.com/mikey/spam-detector/internal/config"
	"github.com/mikey/spam-detector/internal/core"
	goopenai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIFactory creates OpenAI scorers
type OpenAIFactory struct {
	cfg       *config.Config
	logger    *zap.Logger
	vocab     *core.Vocabulary
	renderers *TextProcessorFactory
}

// NewOpenAIFactory creates a new OpenAI factory
func NewOpenAIFactory(cfg *config.Config, logger *zap.Logger, vocab *core.Vocabulary, renderers *TextProcessorFactory) *OpenAIFactory {
	return &OpenAIFactory{
		cfg:       cfg,
		logger:    logger,
		vocab:     vocab,
		renderers: renderers,
	}
}

// CreateScorer creates an OpenAI scorer
func (f *OpenAIFactory) CreateScorer() (core.Scorer, error) {
	openaiCfg := f.cfg.GetOpenAI()
	if openaiCfg.APIKey == "" {
		return nil, errors.New("openai API key is required")
	}

	return openai.NewScorer(
		goopenai.NewClient(openaiCfg.APIKey),
		openaiCfg.ModelName,
		openaiCfg.MaxTokens,
		openaiCfg.Temperature,
		openaiCfg.TopP,
		f.renderers.CreateRenderer(f.vocab, openaiCfg.MaxPromptSize),
		f.logger,
	), nil
}
