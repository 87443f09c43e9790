package factory

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/mikey/spam-detector/internal/adapters/bedrock"
	"github.com/mikey/spam-detector/internal/config"
	"github.com/mikey/spam-detector/internal/core"
	"go.uber.org/zap"
)

// BedrockFactory creates Bedrock scorers
type BedrockFactory struct {
	cfg       *config.Config
	logger    *zap.Logger
	vocab     *core.Vocabulary
	renderers *TextProcessorFactory
}

// NewBedrockFactory creates a new Bedrock factory
func NewBedrockFactory(cfg *config.Config, logger *zap.Logger, vocab *core.Vocabulary, renderers *TextProcessorFactory) *BedrockFactory {
	return &BedrockFactory{
		cfg:       cfg,
		logger:    logger,
		vocab:     vocab,
		renderers: renderers,
	}
}

// CreateScorer creates a Bedrock scorer
func (f *BedrockFactory) CreateScorer() (core.Scorer, error) {
	bedrockCfg := f.cfg.GetBedrock()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(bedrockCfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return bedrock.NewScorer(
		bedrockruntime.NewFromConfig(awsCfg),
		bedrockCfg.ModelID,
		bedrockCfg.MaxTokens,
		bedrockCfg.Temperature,
		bedrockCfg.TopP,
		f.renderers.CreateRenderer(f.vocab, bedrockCfg.MaxPromptSize),
		f.logger,
	), nil
}
