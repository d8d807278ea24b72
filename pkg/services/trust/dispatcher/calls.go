package dispatcher

import (
	"github.com/pkg/errors"
	"github.com/vanet-dev/trust-node/pkg/services/trust"
	"github.com/vanet-dev/trust-node/pkg/services/trust/common"
	eigentrustctrl "github.com/vanet-dev/trust-node/pkg/services/trust/eigentrust/controller"
	"github.com/vanet-dev/trust-node/pkg/services/trust/pairwise"
	"go.uber.org/zap"
)

// ErrAlreadyInitialized is returned on an attempt to initialize
// a vehicle which already has a stored trust record.
var ErrAlreadyInitialized = errors.New("vehicle is already initialized")

// InitPrm groups the required parameters of the Dispatcher.InitializeVehicle method.
type InitPrm struct {
	id trust.PeerID

	initial trust.Value
}

// SetID sets ID of the vehicle to initialize.
func (p *InitPrm) SetID(id trust.PeerID) {
	p.id = id
}

// SetInitialTrust sets the starting trust value of the vehicle.
func (p *InitPrm) SetInitialTrust(v trust.Value) {
	p.initial = v
}

// InitializeVehicle creates the trust record of a new vehicle
// with the given starting value and the current timestamp.
//
// Returns ErrAlreadyInitialized if the record already exists.
// Returns trust.ErrInvalidValue if the starting value is out
// of range.
func (d *Dispatcher) InitializeVehicle(prm InitPrm) error {
	if !prm.initial.Valid() {
		return errors.Wrap(trust.ErrInvalidValue, "initial trust")
	}

	d.prm.Guard.Lock()
	defer d.prm.Guard.Unlock()

	_, err := d.prm.Storage.Get(prm.id)
	switch {
	case err == nil:
		return ErrAlreadyInitialized
	case !errors.Is(err, common.ErrRecordNotFound):
		return errors.Wrap(err, "could not check vehicle record")
	}

	var rec trust.Record

	rec.SetValue(prm.initial)
	rec.SetUpdated(d.prm.Clock.Now())

	if err := d.prm.Storage.Put(prm.id, rec); err != nil {
		return errors.Wrap(err, "could not save vehicle record")
	}

	d.opts.metrics.AddVehicleInitialized()

	d.opts.log.Info("vehicle initialized",
		zap.Stringer("id", prm.id),
		zap.Float64("initial trust", prm.initial.Float64()),
	)

	return nil
}

// ReportPrm groups the required parameters of the Dispatcher.ReportOutcome method.
type ReportPrm struct {
	report trust.Report
}

// SetReport sets the outcome report to apply.
func (p *ReportPrm) SetReport(r trust.Report) {
	p.report = r
}

// ReportOutcome applies a single outcome report to the records
// of the reporter and the subject, and writes both updated
// records back to the storage in a single commit. No other
// record is touched, and a failed commit leaves both stored
// records as they were.
//
// Returns an error from the storage if either record is missing
// or could not be accessed, and an error of the pairwise engine
// directly.
func (d *Dispatcher) ReportOutcome(prm ReportPrm) error {
	d.prm.Guard.Lock()
	defer d.prm.Guard.Unlock()

	reporterRec, err := d.prm.Storage.Get(prm.report.Reporter())
	if err != nil {
		return errors.Wrap(err, "reporter")
	}

	subjectRec, err := d.prm.Storage.Get(prm.report.Subject())
	if err != nil {
		return errors.Wrap(err, "subject")
	}

	var applyPrm pairwise.ApplyPrm

	applyPrm.SetReport(prm.report)
	applyPrm.SetReporterRecord(reporterRec)
	applyPrm.SetSubjectRecord(subjectRec)
	applyPrm.SetNow(d.prm.Clock.Now())

	reporterRec, subjectRec, err = d.prm.Pairwise.Apply(applyPrm)
	if err != nil {
		return err
	}

	err = d.prm.Storage.PutBatch([]trust.PeerRecord{
		{ID: prm.report.Reporter(), Record: reporterRec},
		{ID: prm.report.Subject(), Record: subjectRec},
	})
	if err != nil {
		return errors.Wrap(err, "could not save updated records")
	}

	d.opts.metrics.AddReportProcessed(prm.report.Truthful())

	return nil
}

// RecomputePrm groups the required parameters of the Dispatcher.RecomputeScores method.
type RecomputePrm struct {
	epoch uint64
}

// SetEpoch sets the number of the recompute round.
func (p *RecomputePrm) SetEpoch(e uint64) {
	p.epoch = e
}

// RecomputeScores triggers a global recompute round over all
// stored records. The round runs asynchronously; a trigger for
// an already running round is silently dropped.
func (d *Dispatcher) RecomputeScores(prm RecomputePrm) {
	var ctrlPrm eigentrustctrl.RecomputePrm

	ctrlPrm.SetEpoch(prm.epoch)

	d.prm.Recomputer.Recompute(ctrlPrm)
}
