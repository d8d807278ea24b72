package pairwise_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vanet-dev/trust-node/pkg/services/trust"
	"github.com/vanet-dev/trust-node/pkg/services/trust/decay"
	"github.com/vanet-dev/trust-node/pkg/services/trust/pairwise"
)

func newCalculator(t *testing.T, weight float64) *pairwise.Calculator {
	t.Helper()

	return pairwise.New(pairwise.Prm{
		FeedbackWeight: weight,
		Decayer:        decay.New(decay.Prm{Factor: 0.0001}),
	})
}

func newRecord(v trust.Value, updated int64) (rec trust.Record) {
	rec.SetValue(v)
	rec.SetUpdated(updated)

	return
}

func newReport(truthful bool) (r trust.Report) {
	r.SetReporter(trust.PeerIDFromBytes([]byte("reporter")))
	r.SetSubject(trust.PeerIDFromBytes([]byte("subject")))
	r.SetTruthful(truthful)

	return
}

func TestApplyTruthful(t *testing.T) {
	c := newCalculator(t, 0.1)

	var prm pairwise.ApplyPrm

	prm.SetReport(newReport(true))
	prm.SetReporterRecord(newRecord(0.8, 1000))
	prm.SetSubjectRecord(newRecord(0.5, 1000))
	prm.SetNow(1000)

	reporter, subject, err := c.Apply(prm)
	require.NoError(t, err)

	// delta = 0.1 * 0.8 * (1 - 0.5)
	require.InDelta(t, 0.54, subject.Value().Float64(), 1e-10)
	require.Greater(t, subject.Value().Float64(), 0.5)
	require.LessOrEqual(t, subject.Value().Float64(), 1.0)

	require.Equal(t, trust.Value(0.8), reporter.Value())
	require.EqualValues(t, 1000, reporter.Updated())
	require.EqualValues(t, 1000, subject.Updated())
}

func TestApplyFalse(t *testing.T) {
	c := newCalculator(t, 0.1)

	var prm pairwise.ApplyPrm

	prm.SetReport(newReport(false))
	prm.SetReporterRecord(newRecord(0.8, 1000))
	prm.SetSubjectRecord(newRecord(0.5, 1000))
	prm.SetNow(1000)

	_, subject, err := c.Apply(prm)
	require.NoError(t, err)

	// delta = 0.1 * 0.8 * 0.5
	require.InDelta(t, 0.46, subject.Value().Float64(), 1e-10)
	require.Less(t, subject.Value().Float64(), 0.5)
	require.GreaterOrEqual(t, subject.Value().Float64(), 0.0)
}

func TestApplyBounds(t *testing.T) {
	c := newCalculator(t, 1)

	t.Run("reward on full trust holds the value", func(t *testing.T) {
		var prm pairwise.ApplyPrm

		prm.SetReport(newReport(true))
		prm.SetReporterRecord(newRecord(1, 1000))
		prm.SetSubjectRecord(newRecord(1, 1000))
		prm.SetNow(1000)

		_, subject, err := c.Apply(prm)
		require.NoError(t, err)
		require.Equal(t, trust.Value(1), subject.Value())
	})

	t.Run("penalty on zero trust holds the value", func(t *testing.T) {
		var prm pairwise.ApplyPrm

		prm.SetReport(newReport(false))
		prm.SetReporterRecord(newRecord(1, 1000))
		prm.SetSubjectRecord(newRecord(0, 1000))
		prm.SetNow(1000)

		_, subject, err := c.Apply(prm)
		require.NoError(t, err)
		require.Equal(t, trust.Value(0), subject.Value())
	})
}

func TestApplyZeroWeight(t *testing.T) {
	c := newCalculator(t, 0)

	var prm pairwise.ApplyPrm

	prm.SetReport(newReport(true))
	prm.SetReporterRecord(newRecord(0.8, 1000))
	prm.SetSubjectRecord(newRecord(0.5, 1000))
	prm.SetNow(1000)

	_, subject, err := c.Apply(prm)
	require.NoError(t, err)

	// nothing but decay, and no time has passed
	require.Equal(t, trust.Value(0.5), subject.Value())
}

func TestApplyDecaysBothRecords(t *testing.T) {
	c := newCalculator(t, 0)

	var prm pairwise.ApplyPrm

	prm.SetReport(newReport(true))
	prm.SetReporterRecord(newRecord(0.8, 0))
	prm.SetSubjectRecord(newRecord(0.5, 0))
	prm.SetNow(1000)

	reporter, subject, err := c.Apply(prm)
	require.NoError(t, err)

	require.InDelta(t, 0.72, reporter.Value().Float64(), 1e-10)
	require.InDelta(t, 0.45, subject.Value().Float64(), 1e-10)
}

func TestApplyClockSkew(t *testing.T) {
	c := newCalculator(t, 0.1)

	var prm pairwise.ApplyPrm

	prm.SetReport(newReport(true))
	prm.SetReporterRecord(newRecord(0.8, 2000))
	prm.SetSubjectRecord(newRecord(0.5, 2000))
	prm.SetNow(1000)

	reporter, subject, err := c.Apply(prm)
	require.NoError(t, err)

	// stored timestamps never regress
	require.EqualValues(t, 2000, reporter.Updated())
	require.EqualValues(t, 2000, subject.Updated())

	// and no elapsed time means no decay
	require.Equal(t, trust.Value(0.8), reporter.Value())
	require.InDelta(t, 0.54, subject.Value().Float64(), 1e-10)
}

func TestApplySelfReport(t *testing.T) {
	c := newCalculator(t, 0.1)

	var report trust.Report

	id := trust.PeerIDFromBytes([]byte("self"))
	report.SetReporter(id)
	report.SetSubject(id)
	report.SetTruthful(true)

	var prm pairwise.ApplyPrm

	prm.SetReport(report)
	prm.SetReporterRecord(newRecord(0.5, 1000))
	prm.SetSubjectRecord(newRecord(0.5, 1000))
	prm.SetNow(1000)

	// self-reports are not rejected, the arithmetic just runs
	_, subject, err := c.Apply(prm)
	require.NoError(t, err)
	require.InDelta(t, 0.525, subject.Value().Float64(), 1e-10)
}

func TestApplyInvalidRecords(t *testing.T) {
	c := newCalculator(t, 0.1)

	t.Run("reporter out of range", func(t *testing.T) {
		var prm pairwise.ApplyPrm

		prm.SetReport(newReport(true))
		prm.SetReporterRecord(newRecord(1.5, 1000))
		prm.SetSubjectRecord(newRecord(0.5, 1000))
		prm.SetNow(1000)

		_, _, err := c.Apply(prm)
		require.ErrorIs(t, err, trust.ErrInvalidValue)
	})

	t.Run("subject out of range", func(t *testing.T) {
		var prm pairwise.ApplyPrm

		prm.SetReport(newReport(true))
		prm.SetReporterRecord(newRecord(0.5, 1000))
		prm.SetSubjectRecord(newRecord(-0.5, 1000))
		prm.SetNow(1000)

		_, _, err := c.Apply(prm)
		require.ErrorIs(t, err, trust.ErrInvalidValue)
	})
}

func TestNewInvalidPrm(t *testing.T) {
	require.Panics(t, func() {
		pairwise.New(pairwise.Prm{FeedbackWeight: 0.1})
	})

	require.Panics(t, func() {
		pairwise.New(pairwise.Prm{
			FeedbackWeight: 1.5,
			Decayer:        decay.New(decay.Prm{}),
		})
	})
}
