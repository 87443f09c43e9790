package grpcserver

import (
	"context"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// WorkerPool bounds the number of requests handled at once. Requests beyond
// the limit wait for a slot until their context ends.
type WorkerPool struct {
	sem      *semaphore.Weighted
	size     int
	inFlight atomic.Int64
}

// NewWorkerPool creates a pool with size slots
func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	return &WorkerPool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: size,
	}
}

// Size is the number of slots
func (p *WorkerPool) Size() int {
	return p.size
}

// InFlight is the number of requests currently holding a slot
func (p *WorkerPool) InFlight() int {
	return int(p.inFlight.Load())
}

// UnaryInterceptor holds a slot for the duration of each SpamDetector call.
// Health and reflection calls bypass the pool so probes answer under load.
func (p *WorkerPool) UnaryInterceptor() grpc.UnaryServerInterceptor {
	prefix := "/" + ServiceName + "/"
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if info == nil || !strings.HasPrefix(info.FullMethod, prefix) {
			return handler(ctx, req)
		}
		if err := p.sem.Acquire(ctx, 1); err != nil {
			return nil, status.FromContextError(err).Err()
		}
		p.inFlight.Add(1)
		defer func() {
			p.inFlight.Add(-1)
			p.sem.Release(1)
		}()

		return handler(ctx, req)
	}
}
