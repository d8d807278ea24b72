package decay_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vanet-dev/trust-node/pkg/services/trust"
	"github.com/vanet-dev/trust-node/pkg/services/trust/decay"
)

func TestDecay(t *testing.T) {
	d := decay.New(decay.Prm{
		Factor: 0.0001,
	})

	t.Run("no elapsed time keeps the value", func(t *testing.T) {
		for _, v := range []trust.Value{0, 0.1, 0.5, 0.99, 1} {
			require.Equal(t, v, d.Decay(v, 1000, 1000))
		}
	})

	t.Run("clock skew is clamped", func(t *testing.T) {
		require.Equal(t, trust.Value(0.8), d.Decay(0.8, 1000, 500))
	})

	t.Run("value decreases with elapsed time", func(t *testing.T) {
		res := d.Decay(0.8, 0, 1000)

		require.Less(t, res.Float64(), 0.8)
		require.InDelta(t, 0.72, res.Float64(), 1e-10)
	})

	t.Run("long silence drains the value to zero", func(t *testing.T) {
		require.Equal(t, trust.Value(0), d.Decay(0.8, 0, 1000000))
	})

	t.Run("zero factor disables decay", func(t *testing.T) {
		noDecay := decay.New(decay.Prm{})

		require.Equal(t, trust.Value(0.8), noDecay.Decay(0.8, 0, 1000000))
	})

	t.Run("deterministic", func(t *testing.T) {
		require.Equal(t, d.Decay(0.42, 100, 5000), d.Decay(0.42, 100, 5000))
	})
}

func TestNewInvalidFactor(t *testing.T) {
	require.Panics(t, func() {
		decay.New(decay.Prm{Factor: -1})
	})
}
