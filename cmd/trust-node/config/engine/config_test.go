package engineconfig_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	engineconfig "github.com/vanet-dev/trust-node/cmd/trust-node/config/engine"
	configtest "github.com/vanet-dev/trust-node/cmd/trust-node/config/test"
)

func TestEngineSection(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		empty := configtest.EmptyConfig()

		require.Equal(t, float64(engineconfig.FeedbackWeightDefault), engineconfig.FeedbackWeight(empty))
		require.Equal(t, float64(engineconfig.DecayFactorDefault), engineconfig.DecayFactor(empty))
		require.Equal(t, float64(engineconfig.AlphaDefault), engineconfig.Alpha(empty))
		require.Equal(t, float64(engineconfig.BaseTrustDefault), engineconfig.BaseTrust(empty))
		require.Equal(t, float64(engineconfig.VoteThresholdDefault), engineconfig.VoteThreshold(empty))
		require.Equal(t, uint32(engineconfig.IterationsDefault), engineconfig.Iterations(empty))
		require.Equal(t, engineconfig.RecomputeIntervalDefault, engineconfig.RecomputeInterval(empty))
	})

	c := configtest.FromFile("../../../../config/example/node.yaml")

	require.Equal(t, 0.2, engineconfig.FeedbackWeight(c))
	require.Equal(t, 0.0005, engineconfig.DecayFactor(c))
	require.Equal(t, 0.9, engineconfig.Alpha(c))
	require.Equal(t, 0.6, engineconfig.BaseTrust(c))
	require.Equal(t, 0.4, engineconfig.VoteThreshold(c))
	require.Equal(t, uint32(10), engineconfig.Iterations(c))
	require.Equal(t, 5*time.Minute, engineconfig.RecomputeInterval(c))
}
