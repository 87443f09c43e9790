package core_test

import (
	"math"
	"testing"

	"github.com/mikey/spam-detector/internal/core"
	"github.com/stretchr/testify/require"
)

func TestDecisionPolicy_Examples(t *testing.T) {
	req := require.New(t)
	policy, err := core.NewDecisionPolicy(core.DefaultThreshold)
	req.NoError(err)

	req.Equal(core.VerdictSpam, policy.Decide(0.90))
	req.Equal(core.VerdictHam, policy.Decide(0.50))
	req.Equal(core.VerdictSpam, policy.Decide(core.DefaultThreshold))
	req.Equal(core.VerdictHam, policy.Decide(math.Nextafter(core.DefaultThreshold, 0)))
}

func TestDecisionPolicy_Boundary(t *testing.T) {
	policy, err := core.NewDecisionPolicy(core.DefaultThreshold)
	require.NoError(t, err)

	for i := 0; i <= 10000; i++ {
		p := float64(i) / 10000
		want := core.VerdictHam
		if p >= core.DefaultThreshold {
			want = core.VerdictSpam
		}
		require.Equal(t, want, policy.Decide(p), "p=%v", p)
	}
}

func TestDecisionPolicy_ExtremeThresholds(t *testing.T) {
	zero, err := core.NewDecisionPolicy(0)
	require.NoError(t, err)
	require.Equal(t, core.VerdictSpam, zero.Decide(0))

	one, err := core.NewDecisionPolicy(1)
	require.NoError(t, err)
	require.Equal(t, core.VerdictHam, one.Decide(0.9999))
	require.Equal(t, core.VerdictSpam, one.Decide(1))
}

func TestNewDecisionPolicy_Rejects(t *testing.T) {
	for _, threshold := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		_, err := core.NewDecisionPolicy(threshold)
		require.ErrorIs(t, err, core.ErrInvalidThreshold)
	}
}

func TestVerdict_WireValues(t *testing.T) {
	require.Equal(t, int32(0), int32(core.VerdictUnknown))
	require.Equal(t, int32(1), int32(core.VerdictHam))
	require.Equal(t, int32(2), int32(core.VerdictSpam))
	require.Equal(t, "UNKNOWN", core.VerdictUnknown.String())
	require.Equal(t, "HAM", core.VerdictHam.String())
	require.Equal(t, "SPAM", core.VerdictSpam.String())
}
