package grpcserver

import (
	"context"

	pb "github.com/mikey/spam-detector/api/spamdetector"
	"github.com/mikey/spam-detector/internal/core"
	"go.uber.org/zap"
	"google.golang.org/grpc/status"
)

// Handler implements the SpamDetector gRPC service on top of ScanService
type Handler struct {
	pb.UnimplementedSpamDetectorServer
	service *core.ScanService
	logger  *zap.Logger
}

// NewHandler creates a new gRPC handler
func NewHandler(service *core.ScanService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Scan classifies the request content. Pipeline failures and panics yield
// UNKNOWN; only an ended context produces an RPC error.
func (h *Handler) Scan(ctx context.Context, req *pb.ScanRequest) (resp *pb.ScanResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Scan handler panicked",
				zap.String("request_id", core.RequestIDFrom(ctx)),
				zap.Any("panic", r))
			resp, err = &pb.ScanResponse{Result: pb.ScanResponse_UNKNOWN}, nil
		}
	}()

	result, err := h.service.Scan(ctx, core.ScanRequest{Content: req.GetContent()})
	if err != nil {
		return nil, status.FromContextError(err).Err()
	}

	return &pb.ScanResponse{Result: ToProto(result.Verdict)}, nil
}

// ToProto maps a verdict onto the wire enum
func ToProto(v core.Verdict) pb.ScanResponse_Result {
	switch v {
	case core.VerdictHam:
		return pb.ScanResponse_HAM
	case core.VerdictSpam:
		return pb.ScanResponse_SPAM
	default:
		return pb.ScanResponse_UNKNOWN
	}
}

// FromProto maps the wire enum onto a verdict
func FromProto(r pb.ScanResponse_Result) core.Verdict {
	switch r {
	case pb.ScanResponse_HAM:
		return core.VerdictHam
	case pb.ScanResponse_SPAM:
		return core.VerdictSpam
	default:
		return core.VerdictUnknown
	}
}
