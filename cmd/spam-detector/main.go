package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/di"
	"github.com/mikey/spam-detector/internal/ports"
	"go.uber.org/dig"
	"go.uber.org/zap"
)

// Exit codes: 0 ham, 1 error, 2 spam, 3 unknown
const (
	exitHam     = 0
	exitError   = 1
	exitSpam    = 2
	exitUnknown = 3
)

func main() {
	flags := di.ParseFlags()

	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(exitError)
	}

	code := exitError
	if err := container.Invoke(func(logger *zap.Logger, frontend ports.Frontend) {
		code = run(logger, frontend, flags)
	}); err != nil {
		fmt.Printf("Application error: %v\n", dig.RootCause(err))
		os.Exit(exitError)
	}
	os.Exit(code)
}

func run(logger *zap.Logger, frontend ports.Frontend, flags *di.CLIFlags) int {
	defer logger.Sync()
	defer func() {
		if err := frontend.Stop(); err != nil {
			logger.Warn("Failed to stop frontend", zap.Error(err))
		}
	}()

	content, err := readInput(flags)
	if err != nil {
		logger.Error("Failed to read input", zap.Error(err))
		return exitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := frontend.Scan(ctx, content)
	if err != nil {
		return exitError
	}

	switch result.Verdict {
	case core.VerdictSpam:
		return exitSpam
	case core.VerdictHam:
		return exitHam
	default:
		return exitUnknown
	}
}

// readInput takes -text, then -file, then stdin
func readInput(flags *di.CLIFlags) (string, error) {
	if flags.Text != "" {
		return flags.Text, nil
	}

	var r io.Reader = os.Stdin
	if flags.InputFile != "" {
		file, err := os.Open(flags.InputFile)
		if err != nil {
			return "", fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()
		r = file
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
