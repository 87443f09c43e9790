package ports

import (
	"context"

	"github.com/mikey/spam-detector/internal/core"
)

// Frontend exposes the scan service to callers
type Frontend interface {
	// Scan classifies content and returns the pipeline result
	Scan(ctx context.Context, content string) (*core.ScanResult, error)

	// Start starts serving
	Start() error

	// Stop stops serving
	Stop() error
}
