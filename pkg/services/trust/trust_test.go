package trust_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vanet-dev/trust-node/pkg/services/trust"
)

func TestValueClamp(t *testing.T) {
	for _, tc := range []struct {
		in, out trust.Value
	}{
		{in: -0.5, out: 0},
		{in: 0, out: 0},
		{in: 0.37, out: 0.37},
		{in: 1, out: 1},
		{in: 1.5, out: 1},
	} {
		v := tc.in
		v.Clamp()

		require.Equal(t, tc.out, v)
	}
}

func TestValueValid(t *testing.T) {
	require.True(t, trust.Value(0).Valid())
	require.True(t, trust.Value(1).Valid())
	require.True(t, trust.Value(0.5).Valid())

	require.False(t, trust.Value(-0.1).Valid())
	require.False(t, trust.Value(1.1).Valid())
}

func TestRecordStamp(t *testing.T) {
	var rec trust.Record

	rec.SetUpdated(1000)

	rec.Stamp(2000)
	require.EqualValues(t, 2000, rec.Updated())

	// earlier stamps never regress the timestamp
	rec.Stamp(1500)
	require.EqualValues(t, 2000, rec.Updated())
}

func TestPeerIDEncoding(t *testing.T) {
	id := trust.PeerIDFromBytes([]byte("public key of some vehicle 0123456789"))

	t.Run("base58 round trip", func(t *testing.T) {
		var id2 trust.PeerID

		require.NoError(t, id2.DecodeString(id.String()))
		require.Equal(t, id, id2)
	})

	t.Run("invalid base58", func(t *testing.T) {
		var id2 trust.PeerID

		require.Error(t, id2.DecodeString("not-!@#-base58"))
	})
}
