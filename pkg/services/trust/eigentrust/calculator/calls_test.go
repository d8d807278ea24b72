package eigentrustcalc_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vanet-dev/trust-node/pkg/services/trust"
	eigentrustcalc "github.com/vanet-dev/trust-node/pkg/services/trust/eigentrust/calculator"
)

func newCalculator(iterations uint32) *eigentrustcalc.Calculator {
	return eigentrustcalc.New(eigentrustcalc.Prm{
		Alpha:        0.85,
		BaseTrust:    0.5,
		Iterations:   iterations,
		WeightSource: eigentrustcalc.NewThresholdWeightSource(0.5),
	})
}

func newBatch(vals ...trust.Value) []trust.PeerRecord {
	recs := make([]trust.PeerRecord, len(vals))

	for i := range vals {
		recs[i].ID = trust.PeerIDFromBytes([]byte(fmt.Sprintf("vehicle %d", i)))
		recs[i].Record.SetValue(vals[i])
		recs[i].Record.SetUpdated(1000)
	}

	return recs
}

func TestCalculateEmpty(t *testing.T) {
	var prm eigentrustcalc.CalculatePrm

	prm.SetNow(2000)

	res, err := newCalculator(5).Calculate(prm)
	require.NoError(t, err)
	require.Empty(t, res)
}

func TestCalculateSingle(t *testing.T) {
	var prm eigentrustcalc.CalculatePrm

	prm.SetRecords(newBatch(0.9))
	prm.SetNow(2000)

	res, err := newCalculator(1).Calculate(prm)
	require.NoError(t, err)
	require.Len(t, res, 1)

	// no voters, the value is pulled to the damped prior
	require.InDelta(t, 0.15*0.5, res[0].Record.Value().Float64(), 1e-10)
	require.EqualValues(t, 2000, res[0].Record.Updated())
}

func TestCalculatePropagation(t *testing.T) {
	var prm eigentrustcalc.CalculatePrm

	prm.SetRecords(newBatch(0.9, 0.9, 0.1))
	prm.SetNow(2000)

	res, err := newCalculator(1).Calculate(prm)
	require.NoError(t, err)
	require.Len(t, res, 3)

	// the first two vehicles vote for each other, the third one
	// is below the threshold and receives no votes
	require.InDelta(t, 0.925, res[0].Record.Value().Float64(), 1e-10)
	require.InDelta(t, 0.925, res[1].Record.Value().Float64(), 1e-10)
	require.InDelta(t, 0.075, res[2].Record.Value().Float64(), 1e-10)

	for i := range res {
		require.True(t, res[i].Record.Value().Valid())
		require.EqualValues(t, 2000, res[i].Record.Updated())
	}
}

func TestCalculateClockSkew(t *testing.T) {
	batch := newBatch(0.9)
	batch[0].Record.SetUpdated(3000)

	var prm eigentrustcalc.CalculatePrm

	prm.SetRecords(batch)
	prm.SetNow(2000)

	res, err := newCalculator(1).Calculate(prm)
	require.NoError(t, err)

	// a later stored timestamp is kept rather than regressed
	require.EqualValues(t, 3000, res[0].Record.Updated())
}

func TestCalculateDeterminism(t *testing.T) {
	c := newCalculator(5)

	run := func() []trust.PeerRecord {
		var prm eigentrustcalc.CalculatePrm

		prm.SetRecords(newBatch(0.3, 0.8, 0.55, 0.91, 0.07))
		prm.SetNow(3000)

		res, err := c.Calculate(prm)
		require.NoError(t, err)

		return res
	}

	require.Equal(t, run(), run())
}

func TestCalculateBounds(t *testing.T) {
	var prm eigentrustcalc.CalculatePrm

	prm.SetRecords(newBatch(0, 1, 0.5, 1, 0))
	prm.SetNow(2000)

	res, err := newCalculator(5).Calculate(prm)
	require.NoError(t, err)

	for i := range res {
		require.True(t, res[i].Record.Value().Valid())
	}
}

func TestCalculateInvalidRecord(t *testing.T) {
	batch := newBatch(0.5, 0.5)
	batch[1].Record.SetValue(1.5)

	var prm eigentrustcalc.CalculatePrm

	prm.SetRecords(batch)
	prm.SetNow(2000)

	_, err := newCalculator(5).Calculate(prm)
	require.ErrorIs(t, err, trust.ErrInvalidValue)
}

func TestNewInvalidPrm(t *testing.T) {
	for _, prm := range []eigentrustcalc.Prm{
		{Alpha: 0, BaseTrust: 0.5, Iterations: 5, WeightSource: eigentrustcalc.NewThresholdWeightSource(0.5)},
		{Alpha: 1, BaseTrust: 0.5, Iterations: 5, WeightSource: eigentrustcalc.NewThresholdWeightSource(0.5)},
		{Alpha: 0.85, BaseTrust: 1.5, Iterations: 5, WeightSource: eigentrustcalc.NewThresholdWeightSource(0.5)},
		{Alpha: 0.85, BaseTrust: 0.5, Iterations: 0, WeightSource: eigentrustcalc.NewThresholdWeightSource(0.5)},
		{Alpha: 0.85, BaseTrust: 0.5, Iterations: 5},
	} {
		require.Panics(t, func() {
			eigentrustcalc.New(prm)
		})
	}
}
