package nats

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vanet-dev/trust-node/pkg/services/trust"
)

func TestWriterWithoutConnection(t *testing.T) {
	w := NewWriter()

	id := trust.PeerIDFromBytes([]byte("vehicle 1"))

	var report trust.Report
	report.SetReporter(id)
	report.SetSubject(id)

	require.ErrorIs(t, w.SendInit(id, 0.5), errConnIsClosed)
	require.ErrorIs(t, w.SendReport(report), errConnIsClosed)
	require.ErrorIs(t, w.SendRecompute(1), errConnIsClosed)
}
