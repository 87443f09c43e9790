package factory

import (
	"github.com/mikey/spam-detector/internal/adapters/onnx"
	"github.com/mikey/spam-detector/internal/config"
	"github.com/mikey/spam-detector/internal/core"
	"go.uber.org/zap"
)

// ONNXFactory creates scorers backed by the exported model
type ONNXFactory struct {
	cfg    *config.Config
	logger *zap.Logger
	vocab  *core.Vocabulary
}

// NewONNXFactory creates a new ONNX factory
func NewONNXFactory(cfg *config.Config, logger *zap.Logger, vocab *core.Vocabulary) *ONNXFactory {
	return &ONNXFactory{
		cfg:    cfg,
		logger: logger,
		vocab:  vocab,
	}
}

// CreateScorer loads the model
func (f *ONNXFactory) CreateScorer() (core.Scorer, error) {
	modelCfg := f.cfg.GetModel()
	return onnx.NewScorer(onnx.Options{
		ModelPath:      modelCfg.Path,
		LibraryPath:    modelCfg.LibraryPath,
		IntraOpThreads: modelCfg.IntraOpThreads,
	}, f.vocab.Size(), f.logger)
}
