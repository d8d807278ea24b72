package loggerconfig_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	loggerconfig "github.com/vanet-dev/trust-node/cmd/trust-node/config/logger"
	configtest "github.com/vanet-dev/trust-node/cmd/trust-node/config/test"
)

func TestLoggerSection_Level(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		require.Equal(t, loggerconfig.LevelDefault, loggerconfig.Level(configtest.EmptyConfig()))
	})

	c := configtest.FromFile("../../../../config/example/node.yaml")

	require.Equal(t, "debug", loggerconfig.Level(c))
}
