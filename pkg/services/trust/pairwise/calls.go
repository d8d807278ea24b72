package pairwise

import (
	"github.com/pkg/errors"
	"github.com/vanet-dev/trust-node/pkg/services/trust"
	"go.uber.org/zap"
)

// ApplyPrm groups the required parameters of the Calculator.Apply method.
type ApplyPrm struct {
	report trust.Report

	reporter trust.Record

	subject trust.Record

	now int64
}

// SetReport sets the outcome report to apply.
func (p *ApplyPrm) SetReport(r trust.Report) {
	p.report = r
}

// SetReporterRecord sets the current trust record of the reporter.
func (p *ApplyPrm) SetReporterRecord(rec trust.Record) {
	p.reporter = rec
}

// SetSubjectRecord sets the current trust record of the subject.
func (p *ApplyPrm) SetSubjectRecord(rec trust.Record) {
	p.subject = rec
}

// SetNow sets the current Unix time, in seconds.
func (p *ApplyPrm) SetNow(now int64) {
	p.now = now
}

// Apply applies a single outcome report to the reporter and
// subject records and returns their updated states.
//
// Both input values are decayed first. The decayed reporter value
// acts as the credibility multiplier of the report: a truthful
// report rewards the subject proportionally to its remaining room
// to grow, a false one penalizes it proportionally to its current
// standing. The resulting subject value is clamped into the
// allowed range, and both records are stamped with now. Under
// clock skew the stored timestamp is kept rather than regressed.
//
// Returns trust.ErrInvalidValue if a value of either input record
// is out of range. Reports with coinciding reporter and subject
// are not rejected and run the same arithmetic.
func (c *Calculator) Apply(prm ApplyPrm) (reporter, subject trust.Record, err error) {
	if !prm.reporter.Value().Valid() {
		return reporter, subject, errors.Wrap(trust.ErrInvalidValue, "reporter record")
	} else if !prm.subject.Value().Valid() {
		return reporter, subject, errors.Wrap(trust.ErrInvalidValue, "subject record")
	}

	if prm.report.Reporter() == prm.report.Subject() {
		c.opts.log.Debug("processing self-report",
			zap.Stringer("peer", prm.report.Reporter()),
		)
	}

	reporterDecayed := c.prm.Decayer.Decay(prm.reporter.Value(), prm.reporter.Updated(), prm.now)
	subjectDecayed := c.prm.Decayer.Decay(prm.subject.Value(), prm.subject.Updated(), prm.now)

	var delta float64

	if prm.report.Truthful() {
		delta = c.prm.FeedbackWeight * reporterDecayed.Float64() * (1.0 - subjectDecayed.Float64())
	} else {
		delta = -c.prm.FeedbackWeight * reporterDecayed.Float64() * subjectDecayed.Float64()
	}

	subjectNew := trust.Value(subjectDecayed.Float64() + delta)
	subjectNew.Clamp()

	reporter = prm.reporter
	reporter.SetValue(reporterDecayed)
	reporter.Stamp(prm.now)

	subject = prm.subject
	subject.SetValue(subjectNew)
	subject.Stamp(prm.now)

	c.opts.log.Debug("outcome report applied",
		zap.Stringer("reporter", prm.report.Reporter()),
		zap.Stringer("subject", prm.report.Subject()),
		zap.Bool("truthful", prm.report.Truthful()),
		zap.Float64("subject value", subjectNew.Float64()),
	)

	return reporter, subject, nil
}
