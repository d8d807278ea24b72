package natsconfig_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	natsconfig "github.com/vanet-dev/trust-node/cmd/trust-node/config/nats"
	configtest "github.com/vanet-dev/trust-node/cmd/trust-node/config/test"
	broker "github.com/vanet-dev/trust-node/pkg/services/trust/broker/nats"
)

func TestNATSSection(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		empty := configtest.EmptyConfig()

		require.Equal(t, natsconfig.EndpointDefault, natsconfig.Endpoint(empty))
		require.Equal(t, broker.DefaultSubjectPrefix, natsconfig.SubjectPrefix(empty))
		require.Equal(t, natsconfig.TimeoutDefault, natsconfig.Timeout(empty))
	})

	c := configtest.FromFile("../../../../config/example/node.yaml")

	require.Equal(t, "nats://10.0.0.1:4222", natsconfig.Endpoint(c))
	require.Equal(t, "city.trust", natsconfig.SubjectPrefix(c))
	require.Equal(t, 10*time.Second, natsconfig.Timeout(c))
}
