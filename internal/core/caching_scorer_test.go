package core_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestVectorKey(t *testing.T) {
	a := core.VectorKey(core.FeatureVector{0, 2, 0, 1})
	require.Len(t, a, 64)
	require.Equal(t, a, core.VectorKey(core.FeatureVector{0, 2, 0, 1}))
	require.NotEqual(t, a, core.VectorKey(core.FeatureVector{0, 2, 1, 0}))
}

func TestCachingScorer_Hit(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockScorer(ctrl)
	cache := mocks.NewMockScoreCache(ctrl)
	scorer := core.NewCachingScorer(inner, cache, time.Hour, zap.NewNop())

	vec := core.FeatureVector{1, 0}
	cache.EXPECT().Get(gomock.Any(), core.VectorKey(vec)).Return(&core.ScoreEntry{Probability: 0.93}, nil)
	inner.EXPECT().Score(gomock.Any(), gomock.Any()).Times(0)

	p, err := scorer.Score(context.Background(), vec)
	require.NoError(t, err)
	require.Equal(t, 0.93, p)
}

func TestCachingScorer_MissStoresResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockScorer(ctrl)
	cache := mocks.NewMockScoreCache(ctrl)
	scorer := core.NewCachingScorer(inner, cache, time.Hour, zap.NewNop())

	vec := core.FeatureVector{0, 3}
	key := core.VectorKey(vec)
	cache.EXPECT().Get(gomock.Any(), key).Return(nil, core.ErrCacheMiss)
	inner.EXPECT().Score(gomock.Any(), vec).Return(0.4, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *core.ScoreEntry) error {
			require.Equal(t, key, entry.Key)
			require.Equal(t, 0.4, entry.Probability)
			require.Equal(t, time.Hour, entry.ExpiresAt.Sub(entry.LastSeen))
			return nil
		})

	p, err := scorer.Score(context.Background(), vec)
	require.NoError(t, err)
	require.Equal(t, 0.4, p)
}

func TestCachingScorer_CacheWriteFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockScorer(ctrl)
	cache := mocks.NewMockScoreCache(ctrl)
	scorer := core.NewCachingScorer(inner, cache, time.Hour, zap.NewNop())

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, core.ErrCacheMiss)
	inner.EXPECT().Score(gomock.Any(), gomock.Any()).Return(0.7, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	p, err := scorer.Score(context.Background(), core.FeatureVector{1})
	require.NoError(t, err)
	require.Equal(t, 0.7, p)
}

func TestCachingScorer_CacheReadFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockScorer(ctrl)
	cache := mocks.NewMockScoreCache(ctrl)
	zc, logs := observer.New(zapcore.WarnLevel)
	scorer := core.NewCachingScorer(inner, cache, time.Hour, zap.New(zc))

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	inner.EXPECT().Score(gomock.Any(), gomock.Any()).Return(0.2, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)

	p, err := scorer.Score(context.Background(), core.FeatureVector{1})
	require.NoError(t, err)
	require.Equal(t, 0.2, p)

	warnings := logs.FilterMessage("Failed to read cache").All()
	require.Len(t, warnings, 1)
	require.Equal(t, zapcore.WarnLevel, warnings[0].Level)
}

func TestCachingScorer_MissIsNotLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockScorer(ctrl)
	cache := mocks.NewMockScoreCache(ctrl)
	zc, logs := observer.New(zapcore.WarnLevel)
	scorer := core.NewCachingScorer(inner, cache, time.Hour, zap.New(zc))

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("lookup: %w", core.ErrCacheExpired))
	inner.EXPECT().Score(gomock.Any(), gomock.Any()).Return(0.2, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)

	_, err := scorer.Score(context.Background(), core.FeatureVector{1})
	require.NoError(t, err)
	require.Zero(t, logs.Len())
}

func TestCachingScorer_ScorerErrorNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockScorer(ctrl)
	cache := mocks.NewMockScoreCache(ctrl)
	scorer := core.NewCachingScorer(inner, cache, time.Hour, zap.NewNop())

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, core.ErrCacheMiss)
	inner.EXPECT().Score(gomock.Any(), gomock.Any()).Return(0.0, errors.New("boom"))
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	_, err := scorer.Score(context.Background(), core.FeatureVector{1})
	require.Error(t, err)
}

func TestCachingScorer_OutOfRangeNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockScorer(ctrl)
	cache := mocks.NewMockScoreCache(ctrl)
	scorer := core.NewCachingScorer(inner, cache, time.Hour, zap.NewNop())

	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, core.ErrCacheMiss)
	inner.EXPECT().Score(gomock.Any(), gomock.Any()).Return(1.7, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	p, err := scorer.Score(context.Background(), core.FeatureVector{1})
	require.NoError(t, err)
	require.Equal(t, 1.7, p)
}

func TestCachingScorer_ConcurrencySafety(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockScoreCache(ctrl)

	require.True(t, core.NewCachingScorer(keywordScorer{}, cache, time.Hour, zap.NewNop()).ConcurrencySafe())
	require.False(t, core.NewCachingScorer(&unsafeScorer{}, cache, time.Hour, zap.NewNop()).ConcurrencySafe())
}
