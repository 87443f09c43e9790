package core_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/utils"
	"github.com/mikey/spam-detector/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// keywordScorer reports a high probability whenever the first vocabulary
// token is present. It is stateless and safe for concurrent use.
type keywordScorer struct{}

func (keywordScorer) Score(_ context.Context, vector core.FeatureVector) (float64, error) {
	if vector[0] > 0 {
		return 0.99, nil
	}
	return 0.10, nil
}

func (keywordScorer) ConcurrencySafe() bool { return true }

type panicScorer struct{}

func (panicScorer) Score(context.Context, core.FeatureVector) (float64, error) {
	panic("tensor shape mismatch")
}

func newService(t *testing.T, scorer core.Scorer) (*core.ScanService, *observer.ObservedLogs) {
	t.Helper()
	vocab, err := core.NewVocabulary([]string{"free", "win", "meeting"})
	require.NoError(t, err)
	policy, err := core.NewDecisionPolicy(core.DefaultThreshold)
	require.NoError(t, err)

	zc, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(zc)
	svc := core.NewScanService(core.NewVectorizer(vocab), scorer, policy, logger, utils.NewTextProcessor(logger), 16)
	return svc, logs
}

func TestScanService_Verdicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	scorer := mocks.NewMockScorer(ctrl)
	svc, _ := newService(t, scorer)

	scorer.EXPECT().Score(gomock.Any(), core.FeatureVector{0, 2, 0, 1}).Return(0.90, nil)
	scorer.EXPECT().Score(gomock.Any(), core.FeatureVector{0, 0, 1, 0}).Return(0.50, nil)

	spam, err := svc.Scan(context.Background(), core.ScanRequest{Content: "win win now"})
	require.NoError(t, err)
	assert.Equal(t, core.VerdictSpam, spam.Verdict)
	assert.Equal(t, 0.90, spam.Probability)
	assert.True(t, spam.Completed())

	ham, err := svc.Scan(context.Background(), core.ScanRequest{Content: "meeting"})
	require.NoError(t, err)
	assert.Equal(t, core.VerdictHam, ham.Verdict)
	assert.True(t, ham.Completed())
}

func TestScanService_ScorerFailureYieldsUnknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	scorer := mocks.NewMockScorer(ctrl)
	svc, logs := newService(t, scorer)

	scorer.EXPECT().Score(gomock.Any(), gomock.Any()).Return(0.0, errors.New("backend exhausted")).AnyTimes()

	result, err := svc.Scan(context.Background(), core.ScanRequest{Content: "free money"})
	require.NoError(t, err)
	require.Equal(t, core.VerdictUnknown, result.Verdict)
	require.False(t, result.Completed())

	var scoringErr *core.ScoringError
	require.ErrorAs(t, result.Failure, &scoringErr)
	require.Equal(t, 1, logs.FilterMessage("Scoring failed").FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestScanService_InvalidProbabilities(t *testing.T) {
	for _, p := range []float64{-0.1, 1.1, math.NaN(), math.Inf(1)} {
		t.Run(fmt.Sprint(p), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			scorer := mocks.NewMockScorer(ctrl)
			svc, _ := newService(t, scorer)
			scorer.EXPECT().Score(gomock.Any(), gomock.Any()).Return(p, nil)

			result, err := svc.Scan(context.Background(), core.ScanRequest{Content: "win"})
			require.NoError(t, err)
			require.Equal(t, core.VerdictUnknown, result.Verdict)
			require.ErrorIs(t, result.Failure, core.ErrProbabilityOutOfRange)
		})
	}
}

func TestScanService_ScorerPanicIsContained(t *testing.T) {
	svc, logs := newService(t, panicScorer{})

	result, err := svc.Scan(context.Background(), core.ScanRequest{Content: "win"})
	require.NoError(t, err)
	require.Equal(t, core.VerdictUnknown, result.Verdict)
	require.ErrorIs(t, result.Failure, core.ErrScorerPanic)
	require.Equal(t, 1, logs.FilterMessage("Scoring failed").Len())
}

func TestScanService_VectorizerPanicIsContained(t *testing.T) {
	policy, err := core.NewDecisionPolicy(core.DefaultThreshold)
	require.NoError(t, err)
	zc, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(zc)

	// A zero-value vectorizer has no vocabulary and panics on use.
	svc := core.NewScanService(&core.Vectorizer{}, keywordScorer{}, policy, logger, utils.NewTextProcessor(logger), 8)

	result, err := svc.Scan(context.Background(), core.ScanRequest{Content: "a rather long offending text"})
	require.NoError(t, err)
	require.Equal(t, core.VerdictUnknown, result.Verdict)

	var vecErr *core.VectorizationError
	require.ErrorAs(t, result.Failure, &vecErr)
	require.ErrorIs(t, result.Failure, core.ErrVectorizerPanic)

	entries := logs.FilterMessage("Vectorization failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, "a rather"+utils.TruncationMarker, entries[0].ContextMap()["content"])
}

func TestScanService_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	scorer := mocks.NewMockScorer(ctrl)
	svc, _ := newService(t, scorer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.Scan(ctx, core.ScanRequest{Content: "win"})
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, result)
}

func TestScanService_DeadlineDuringScoring(t *testing.T) {
	ctrl := gomock.NewController(t)
	scorer := mocks.NewMockScorer(ctrl)
	svc, _ := newService(t, scorer)

	ctx, cancel := context.WithCancel(context.Background())
	scorer.EXPECT().Score(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ core.FeatureVector) (float64, error) {
			cancel()
			return 0, ctx.Err()
		})

	result, err := svc.Scan(ctx, core.ScanRequest{Content: "win"})
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, result)
}

func TestScanService_Idempotent(t *testing.T) {
	svc, _ := newService(t, keywordScorer{})

	first, err := svc.Scan(context.Background(), core.ScanRequest{Content: "free meeting"})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := svc.Scan(context.Background(), core.ScanRequest{Content: "free meeting"})
		require.NoError(t, err)
		require.Equal(t, first.Verdict, again.Verdict)
		require.Equal(t, first.Probability, again.Probability)
	}
}

func TestScanService_ConcurrentScansDoNotInterfere(t *testing.T) {
	svc, _ := newService(t, keywordScorer{})

	const n = 50
	var wg sync.WaitGroup
	results := make([]core.Verdict, n)
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := fmt.Sprintf("meeting number %d", i)
			if i%2 == 0 {
				text = fmt.Sprintf("free offer %d", i)
			}
			res, err := svc.Scan(context.Background(), core.ScanRequest{Content: text})
			errs[i] = err
			if err == nil {
				results[i] = res.Verdict
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		want := core.VerdictHam
		if i%2 == 0 {
			want = core.VerdictSpam
		}
		require.Equal(t, want, results[i], "request %d", i)
	}
}

func TestScanService_LogsStageTransitions(t *testing.T) {
	svc, logs := newService(t, keywordScorer{})
	ctx := core.WithRequestID(context.Background(), "req-1")

	_, err := svc.Scan(ctx, core.ScanRequest{Content: "free"})
	require.NoError(t, err)

	for _, msg := range []string{"Scan initiated", "Content vectorized", "Scan succeeded"} {
		entries := logs.FilterMessage(msg).All()
		require.Len(t, entries, 1, msg)
		require.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	}
}
