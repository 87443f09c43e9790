// Package cli prints scan results for the command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/mikey/spam-detector/internal/adapters/grpcclient"
	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/utils"
	"go.uber.org/zap"
)

const previewSize = 500

// Scanner classifies content either in-process or remotely
type Scanner interface {
	Scan(ctx context.Context, content string) (*core.ScanResult, error)
}

// LocalScanner runs the full pipeline in-process
type LocalScanner struct {
	service *core.ScanService
}

// NewLocalScanner creates a scanner backed by service
func NewLocalScanner(service *core.ScanService) *LocalScanner {
	return &LocalScanner{service: service}
}

// Scan runs the pipeline
func (s *LocalScanner) Scan(ctx context.Context, content string) (*core.ScanResult, error) {
	return s.service.Scan(ctx, core.ScanRequest{Content: content})
}

// RemoteScanner asks a running spam detector. The wire response carries no
// probability, so results report NaN.
type RemoteScanner struct {
	client *grpcclient.Client
}

// NewRemoteScanner creates a scanner backed by client
func NewRemoteScanner(client *grpcclient.Client) *RemoteScanner {
	return &RemoteScanner{client: client}
}

// Scan sends content to the remote detector
func (s *RemoteScanner) Scan(ctx context.Context, content string) (*core.ScanResult, error) {
	start := time.Now()
	verdict, err := s.client.Scan(ctx, content)
	if err != nil {
		return nil, err
	}
	return &core.ScanResult{
		Verdict:     verdict,
		Probability: math.NaN(),
		Duration:    time.Since(start),
	}, nil
}

// Close closes the remote connection
func (s *RemoteScanner) Close() error {
	return s.client.Close()
}

// CliFrontend implements a command-line interface for spam detection
type CliFrontend struct {
	scanner       Scanner
	logger        *zap.Logger
	out           io.Writer
	verbose       bool
	threshold     float64
	textProcessor *utils.TextProcessor
}

// NewCliFrontend creates a new CLI frontend. A NaN threshold is omitted from
// the summary.
func NewCliFrontend(scanner Scanner, logger *zap.Logger, out io.Writer, verbose bool, threshold float64) *CliFrontend {
	return &CliFrontend{
		scanner:       scanner,
		logger:        logger,
		out:           out,
		verbose:       verbose,
		threshold:     threshold,
		textProcessor: utils.NewTextProcessor(logger),
	}
}

// Scan classifies content and prints a summary
func (f *CliFrontend) Scan(ctx context.Context, content string) (*core.ScanResult, error) {
	f.logger.Debug("Processing text", zap.Int("content_length", len(content)))

	fmt.Fprintf(f.out, "\n=== Input ===\n")
	fmt.Fprintf(f.out, "Length: %d bytes\n", len(content))
	if f.verbose {
		fmt.Fprintf(f.out, "\nPreview:\n%s\n", f.textProcessor.ProcessText(content, previewSize))
	}

	fmt.Fprintf(f.out, "\n=== Analysis ===\n")
	result, err := f.scanner.Scan(ctx, content)
	if err != nil {
		f.logger.Error("Failed to scan text", zap.Error(err))
		fmt.Fprintf(f.out, "Error: %v\n", err)
		return nil, err
	}

	fmt.Fprintf(f.out, "\n=== Results ===\n")
	fmt.Fprintf(f.out, "Verdict: %s\n", result.Verdict)
	if math.IsNaN(result.Probability) {
		fmt.Fprintf(f.out, "Spam probability: n/a\n")
	} else {
		fmt.Fprintf(f.out, "Spam probability: %.4f\n", result.Probability)
	}
	if !math.IsNaN(f.threshold) {
		fmt.Fprintf(f.out, "Threshold: %.4f\n", f.threshold)
	}
	if result.Failure != nil {
		fmt.Fprintf(f.out, "Failure: %v\n", result.Failure)
	}
	fmt.Fprintf(f.out, "Processing time: %v\n", result.Duration)

	return result, nil
}

// Start is a no-op for the CLI frontend
func (f *CliFrontend) Start() error {
	return nil
}

// Stop closes the scanner when it holds a connection
func (f *CliFrontend) Stop() error {
	if closer, ok := f.scanner.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
