package factory

import (
	"github.com/mikey/spam-detector/internal/config"
	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/dataset"
	"go.uber.org/zap"
)

// NewVocabulary loads the vocabulary from the configured dataset header.
// Failures are reported as a StartupError.
func NewVocabulary(cfg *config.Config, logger *zap.Logger) (*core.Vocabulary, error) {
	path := cfg.GetVocabulary().DatasetPath

	tokens, err := dataset.LoadTokens(path)
	if err != nil {
		return nil, &core.StartupError{Component: "vocabulary", Err: err}
	}

	vocab, err := core.NewVocabulary(tokens)
	if err != nil {
		return nil, &core.StartupError{Component: "vocabulary", Err: err}
	}

	logger.Info("Loaded vocabulary",
		zap.String("dataset", path),
		zap.Int("size", vocab.Size()))

	return vocab, nil
}

// NewDecisionPolicy builds the policy from spam.threshold
func NewDecisionPolicy(cfg *config.Config) (core.DecisionPolicy, error) {
	policy, err := core.NewDecisionPolicy(cfg.GetSpam().Threshold)
	if err != nil {
		return core.DecisionPolicy{}, &core.StartupError{Component: "decision policy", Err: err}
	}
	return policy, nil
}
