package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	pb "github.com/mikey/spam-detector/api/spamdetector"
	"github.com/mikey/spam-detector/internal/config"
	"github.com/mikey/spam-detector/internal/core"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "spam_detector.SpamDetector"

// Server is the gRPC frontend
type Server struct {
	service         *core.ScanService
	logger          *zap.Logger
	listenAddress   string
	shutdownTimeout time.Duration
	pool            *WorkerPool
	grpcServer      *grpc.Server
	health          *health.Server
	stopOnce        sync.Once
}

// NewServer builds the gRPC server with reflection and health registered
func NewServer(service *core.ScanService, logger *zap.Logger, cfg config.ServerConfig) *Server {
	pool := NewWorkerPool(cfg.MaxWorkers)

	grpcServer := grpc.NewServer(
		grpc.NumStreamWorkers(uint32(pool.Size())),
		grpc.ChainUnaryInterceptor(
			RequestIDInterceptor(logger),
			pool.UnaryInterceptor(),
		),
	)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	pb.RegisterSpamDetectorServer(grpcServer, NewHandler(service, logger))
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	return &Server{
		service:         service,
		logger:          logger,
		listenAddress:   cfg.ListenAddress,
		shutdownTimeout: cfg.ShutdownTimeout,
		pool:            pool,
		grpcServer:      grpcServer,
		health:          healthServer,
	}
}

// Start listens on the configured address and serves in the background
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.listenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.listenAddress, err)
	}

	go func() {
		if err := s.Serve(lis); err != nil {
			s.logger.Error("gRPC server error", zap.Error(err))
		}
	}()

	return nil
}

// Serve accepts connections on lis until the server stops
func (s *Server) Serve(lis net.Listener) error {
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	s.logger.Info("gRPC server starting",
		zap.String("address", lis.Addr().String()),
		zap.Int("max_workers", s.pool.Size()),
		zap.Float64("threshold", s.service.Policy().Threshold()))

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// Stop reports NOT_SERVING, then drains in-flight calls. Calls still running
// after the shutdown timeout are cancelled.
func (s *Server) Stop() error {
	s.stopOnce.Do(func() {
		s.health.Shutdown()

		done := make(chan struct{})
		go func() {
			s.grpcServer.GracefulStop()
			close(done)
		}()

		select {
		case <-done:
			s.logger.Info("gRPC server stopped")
		case <-time.After(s.shutdownTimeout):
			s.logger.Warn("Graceful shutdown timed out, forcing stop",
				zap.Duration("timeout", s.shutdownTimeout),
				zap.Int("in_flight", s.pool.InFlight()))
			s.grpcServer.Stop()
		}
	})
	return nil
}

// Scan runs the pipeline in-process
func (s *Server) Scan(ctx context.Context, content string) (*core.ScanResult, error) {
	return s.service.Scan(ctx, core.ScanRequest{Content: content})
}
