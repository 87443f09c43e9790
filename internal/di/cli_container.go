package di

import (
	"flag"
	"math"
	"os"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/spam-detector/internal/adapters/cli"
	"github.com/mikey/spam-detector/internal/adapters/grpcclient"
	"github.com/mikey/spam-detector/internal/config"
	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/logging"
	"github.com/mikey/spam-detector/internal/ports"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// Scorer flags
	Provider    string
	ModelPath   string
	LibraryPath string
	DatasetPath string
	Probability float64

	// Spam detection flags
	SpamThreshold float64

	// Remote mode
	Remote  string
	Timeout time.Duration

	// Input flags
	Text       string
	InputFile  string
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	// Scorer flags
	flag.StringVar(&flags.Provider, "provider", "onnx", "Scorer provider (onnx, openai, bedrock, gemini, static)")
	flag.StringVar(&flags.ModelPath, "model", "spam_detector_model.onnx", "Path to the ONNX model")
	flag.StringVar(&flags.LibraryPath, "onnx-library", "", "Path to the onnxruntime shared library")
	flag.StringVar(&flags.DatasetPath, "dataset", "emails.csv", "Dataset whose header defines the vocabulary")
	flag.Float64Var(&flags.Probability, "probability", 0, "Probability returned by the static provider")

	// Spam detection flags
	flag.Float64Var(&flags.SpamThreshold, "threshold", core.DefaultThreshold, "Threshold for spam detection")

	// Remote flags
	flag.StringVar(&flags.Remote, "remote", "", "Scan against a running server at host:port instead of locally")
	flag.DurationVar(&flags.Timeout, "timeout", grpcclient.DefaultTimeout, "Timeout for remote scans")

	// Input flags
	flag.StringVar(&flags.Text, "text", "", "Text to scan")
	flag.StringVar(&flags.InputFile, "file", "", "Input file (use stdin if neither -text nor -file is given)")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container for the CLI application
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.NewFromFile(flags.ConfigFile)
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}

		// Create config from command line flags
		return createConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	if flags.Remote != "" {
		if err := container.Provide(func(flags *CLIFlags) (cli.Scanner, error) {
			client, err := grpcclient.New(flags.Remote, flags.Timeout)
			if err != nil {
				return nil, err
			}
			return cli.NewRemoteScanner(client), nil
		}); err != nil {
			return nil, err
		}
		if err := container.Provide(func() float64 { return math.NaN() }); err != nil {
			return nil, err
		}
	} else {
		if err := providePipeline(container); err != nil {
			return nil, err
		}
		if err := container.Provide(func(service *core.ScanService) cli.Scanner {
			return cli.NewLocalScanner(service)
		}); err != nil {
			return nil, err
		}
		if err := container.Provide(func(policy core.DecisionPolicy) float64 {
			return policy.Threshold()
		}); err != nil {
			return nil, err
		}
	}

	// Register frontend
	if err := container.Provide(func(
		scanner cli.Scanner,
		logger *zap.Logger,
		flags *CLIFlags,
		threshold float64,
	) ports.Frontend {
		return cli.NewCliFrontend(scanner, logger, os.Stdout, flags.Verbose, threshold)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// createConfigFromFlags creates a configuration from command line flags.
// Provider credentials still come from the environment.
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()
	config.BindEnv(v)

	v.Set("scorer.provider", flags.Provider)
	v.Set("model.path", flags.ModelPath)
	v.Set("model.onnx_library_path", flags.LibraryPath)
	v.Set("vocabulary.dataset_path", flags.DatasetPath)
	v.Set("static.probability", flags.Probability)
	v.Set("spam.threshold", flags.SpamThreshold)

	return config.NewFromViper(v)
}
