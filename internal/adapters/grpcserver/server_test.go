package grpcserver

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	pb "github.com/mikey/spam-detector/api/spamdetector"
	"github.com/mikey/spam-detector/internal/config"
	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type scorerFunc func(ctx context.Context, vector core.FeatureVector) (float64, error)

func (f scorerFunc) Score(ctx context.Context, vector core.FeatureVector) (float64, error) {
	return f(ctx, vector)
}

func (scorerFunc) ConcurrencySafe() bool { return true }

// spamIfFree flags any message containing "free"
var spamIfFree = scorerFunc(func(_ context.Context, vector core.FeatureVector) (float64, error) {
	if vector[0] > 0 {
		return 0.99, nil
	}
	return 0.05, nil
})

func newScanService(t *testing.T, scorer core.Scorer) *core.ScanService {
	t.Helper()
	vocab, err := core.NewVocabulary([]string{"free", "win", "meeting"})
	require.NoError(t, err)
	policy, err := core.NewDecisionPolicy(core.DefaultThreshold)
	require.NoError(t, err)
	logger := zap.NewNop()
	return core.NewScanService(core.NewVectorizer(vocab), scorer, policy, logger, utils.NewTextProcessor(logger), 64)
}

func startServer(t *testing.T, scorer core.Scorer, maxWorkers int) (*Server, *grpc.ClientConn) {
	t.Helper()
	srv := NewServer(newScanService(t, scorer), zap.NewNop(), config.ServerConfig{
		Frontend:        "grpc",
		ListenAddress:   "bufconn",
		MaxWorkers:      maxWorkers,
		ShutdownTimeout: time.Second,
	})

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() { _ = srv.Stop() })

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return srv, conn
}

func TestServer_Scan(t *testing.T) {
	_, conn := startServer(t, spamIfFree, 4)
	client := pb.NewSpamDetectorClient(conn)

	tests := []struct {
		content string
		want    pb.ScanResponse_Result
	}{
		{content: "win a free prize", want: pb.ScanResponse_SPAM},
		{content: "meeting at noon", want: pb.ScanResponse_HAM},
		{content: "", want: pb.ScanResponse_HAM},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			resp, err := client.Scan(context.Background(), &pb.ScanRequest{Content: tt.content})
			require.NoError(t, err)
			require.Equal(t, tt.want, resp.GetResult())
		})
	}
}

func TestServer_ScorerFailureIsUnknown(t *testing.T) {
	failing := scorerFunc(func(context.Context, core.FeatureVector) (float64, error) {
		return 0, errors.New("model unavailable")
	})
	_, conn := startServer(t, failing, 4)

	resp, err := pb.NewSpamDetectorClient(conn).Scan(context.Background(), &pb.ScanRequest{Content: "free"})
	require.NoError(t, err)
	require.Equal(t, pb.ScanResponse_UNKNOWN, resp.GetResult())
}

func TestServer_RequestIDHeader(t *testing.T) {
	_, conn := startServer(t, spamIfFree, 4)

	ctx := metadata.AppendToOutgoingContext(context.Background(), RequestIDHeader, "req-42")
	var header metadata.MD
	_, err := pb.NewSpamDetectorClient(conn).Scan(ctx, &pb.ScanRequest{Content: "hi"}, grpc.Header(&header))
	require.NoError(t, err)
	require.Equal(t, []string{"req-42"}, header.Get(RequestIDHeader))

	_, err = pb.NewSpamDetectorClient(conn).Scan(context.Background(), &pb.ScanRequest{Content: "hi"}, grpc.Header(&header))
	require.NoError(t, err)
	require.Len(t, header.Get(RequestIDHeader), 1)
	require.NotEmpty(t, header.Get(RequestIDHeader)[0])
}

func TestServer_DeadlineExceeded(t *testing.T) {
	blocking := scorerFunc(func(ctx context.Context, _ core.FeatureVector) (float64, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	_, conn := startServer(t, blocking, 4)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := pb.NewSpamDetectorClient(conn).Scan(ctx, &pb.ScanRequest{Content: "free"})
	require.Equal(t, codes.DeadlineExceeded, status.Code(err))
}

func TestServer_ConcurrentClients(t *testing.T) {
	_, conn := startServer(t, spamIfFree, 10)
	client := pb.NewSpamDetectorClient(conn)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			content, want := "meeting tomorrow", pb.ScanResponse_HAM
			if i%2 == 0 {
				content, want = "free money", pb.ScanResponse_SPAM
			}
			resp, err := client.Scan(context.Background(), &pb.ScanRequest{Content: content})
			if assert.NoError(t, err) {
				assert.Equal(t, want, resp.GetResult())
			}
		}(i)
	}
	wg.Wait()
}

func TestServer_HealthAndReflection(t *testing.T) {
	req := require.New(t)
	srv, conn := startServer(t, spamIfFree, 2)

	health := healthpb.NewHealthClient(conn)
	req.Eventually(func() bool {
		resp, err := health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 10*time.Millisecond)

	services := srv.grpcServer.GetServiceInfo()
	req.Contains(services, ServiceName)
	req.Contains(services, "grpc.health.v1.Health")
	req.Contains(services, "grpc.reflection.v1.ServerReflection")

	req.NoError(srv.Stop())
	resp, err := srv.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	req.NoError(err)
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestServer_HealthAnswersWhileWorkersBusy(t *testing.T) {
	req := require.New(t)

	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	blocking := scorerFunc(func(context.Context, core.FeatureVector) (float64, error) {
		once.Do(func() { close(started) })
		<-release
		return 0.1, nil
	})
	srv, conn := startServer(t, blocking, 1)
	defer close(release)

	health := healthpb.NewHealthClient(conn)
	req.Eventually(func() bool {
		resp, err := health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 10*time.Millisecond)

	go func() {
		_, _ = pb.NewSpamDetectorClient(conn).Scan(context.Background(), &pb.ScanRequest{Content: "free"})
	}()
	<-started
	req.Equal(1, srv.pool.InFlight())

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	resp, err := health.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	req.NoError(err)
	req.Equal(healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestHandler_RecoversPanic(t *testing.T) {
	h := NewHandler(nil, zap.NewNop())

	resp, err := h.Scan(context.Background(), &pb.ScanRequest{Content: "free"})
	require.NoError(t, err)
	require.Equal(t, pb.ScanResponse_UNKNOWN, resp.GetResult())
}

func TestVerdictMapping(t *testing.T) {
	for _, v := range []core.Verdict{core.VerdictUnknown, core.VerdictHam, core.VerdictSpam} {
		require.Equal(t, int32(v), int32(ToProto(v)))
		require.Equal(t, v, FromProto(ToProto(v)))
	}
}
