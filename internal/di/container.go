package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/spam-detector/internal/config"
	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/factory"
	"github.com/mikey/spam-detector/internal/logging"
	"github.com/mikey/spam-detector/internal/ports"
	"github.com/mikey/spam-detector/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
// for the gRPC server
func BuildContainer() (*dig.Container, error) {
	return buildContainer(func() (*config.Config, error) {
		cfg, err := config.New()
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	})
}

// buildContainer wires everything below the configuration
func buildContainer(newConfig func() (*config.Config, error)) (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(newConfig); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	if err := providePipeline(container); err != nil {
		return nil, err
	}

	// Register frontend
	if err := container.Provide(factory.NewFrontendFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.FrontendFactory) (ports.Frontend, error) {
		return f.CreateFrontend()
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// providePipeline registers vocabulary, scorer, cache and scan service. It
// expects *config.Config and *zap.Logger to be provided already.
func providePipeline(container *dig.Container) error {
	// Register factories
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewScorerFactory); err != nil {
		return err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return err
	}

	// Register vocabulary and vectorizer
	if err := container.Provide(factory.NewVocabulary); err != nil {
		return err
	}
	if err := container.Provide(core.NewVectorizer); err != nil {
		return err
	}

	// Register decision policy
	if err := container.Provide(factory.NewDecisionPolicy); err != nil {
		return err
	}

	// Register score cache, nil when disabled
	if err := container.Provide(func(f *factory.CacheFactory) (core.ScoreCache, error) {
		return f.CreateScoreCache()
	}); err != nil {
		return err
	}

	// Register scorer
	if err := container.Provide(func(f *factory.ScorerFactory) (core.Scorer, error) {
		return f.CreateScorer()
	}); err != nil {
		return err
	}

	// Register scan service
	return container.Provide(func(
		vectorizer *core.Vectorizer,
		scorer core.Scorer,
		policy core.DecisionPolicy,
		logger *zap.Logger,
		textProcessor *utils.TextProcessor,
		cfg *config.Config,
	) *core.ScanService {
		return core.NewScanService(
			vectorizer,
			scorer,
			policy,
			logger,
			textProcessor,
			cfg.GetLogging().MaxTextPreview,
		)
	})
}
