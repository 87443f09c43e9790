// Package grpcclient calls a remote spam detector.
package grpcclient

import (
	"context"
	"fmt"
	"time"

	pb "github.com/mikey/spam-detector/api/spamdetector"
	"github.com/mikey/spam-detector/internal/adapters/grpcserver"
	"github.com/mikey/spam-detector/internal/core"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// DefaultTimeout bounds each call when no timeout is configured
const DefaultTimeout = 10 * time.Second

// Client is an insecure SpamDetector client
type Client struct {
	conn    *grpc.ClientConn
	client  pb.SpamDetectorClient
	timeout time.Duration
}

// New creates a client for address. Extra dial options are appended after
// the insecure transport credentials.
func New(address string, timeout time.Duration, opts ...grpc.DialOption) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(address, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", address, err)
	}

	return &Client{
		conn:    conn,
		client:  pb.NewSpamDetectorClient(conn),
		timeout: timeout,
	}, nil
}

// Scan classifies text remotely. The request id in ctx, if any, is forwarded.
func (c *Client) Scan(ctx context.Context, text string) (core.Verdict, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if id := core.RequestIDFrom(ctx); id != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, grpcserver.RequestIDHeader, id)
	}

	resp, err := c.client.Scan(ctx, &pb.ScanRequest{Content: text})
	if err != nil {
		return core.VerdictUnknown, fmt.Errorf("scan failed: %w", err)
	}
	return grpcserver.FromProto(resp.GetResult()), nil
}

// Close closes the underlying connection
func (c *Client) Close() error {
	return c.conn.Close()
}
