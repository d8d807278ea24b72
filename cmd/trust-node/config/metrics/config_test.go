package metricsconfig_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	metricsconfig "github.com/vanet-dev/trust-node/cmd/trust-node/config/metrics"
	configtest "github.com/vanet-dev/trust-node/cmd/trust-node/config/test"
)

func TestMetricsSection(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		empty := configtest.EmptyConfig()

		require.False(t, metricsconfig.Enabled(empty))
		require.Equal(t, metricsconfig.ShutdownTimeoutDefault, metricsconfig.ShutdownTimeout(empty))
		require.Equal(t, metricsconfig.AddressDefault, metricsconfig.Address(empty))
	})

	c := configtest.FromFile("../../../../config/example/node.yaml")

	require.True(t, metricsconfig.Enabled(c))
	require.Equal(t, 15*time.Second, metricsconfig.ShutdownTimeout(c))
	require.Equal(t, "0.0.0.0:9090", metricsconfig.Address(c))
}
