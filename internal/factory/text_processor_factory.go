package factory

import (
	"github.com/mikey/spam-detector/internal/adapters/prompt"
	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/utils"
	"go.uber.org/zap"
)

// TextProcessorFactory creates text processors and prompt renderers
type TextProcessorFactory struct {
	logger *zap.Logger
}

// NewTextProcessorFactory creates a new TextProcessorFactory
func NewTextProcessorFactory(logger *zap.Logger) *TextProcessorFactory {
	return &TextProcessorFactory{
		logger: logger,
	}
}

// CreateTextProcessor creates a new TextProcessor
func (f *TextProcessorFactory) CreateTextProcessor() *utils.TextProcessor {
	return utils.NewTextProcessor(f.logger)
}

// CreateRenderer creates a prompt renderer bounded to maxPromptSize bytes
func (f *TextProcessorFactory) CreateRenderer(vocab *core.Vocabulary, maxPromptSize int) *prompt.Renderer {
	return prompt.NewRenderer(vocab, f.CreateTextProcessor(), maxPromptSize)
}
