package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/vanet-dev/trust-node/pkg/services/trust"
	"github.com/vanet-dev/trust-node/pkg/services/trust/dispatcher"
	"go.uber.org/zap"
)

// Listener consumes trust requests from NATS JetStream subjects
// and forwards them to the Dispatcher. Requests are JSON-encoded,
// one kind per subject under a common prefix.
//
// For correct operation must be created via NewListener.
// new(Listener) or Listener{} construction leads to undefined
// behaviour and is not safe.
type Listener struct {
	js nats.JetStreamContext
	nc *nats.Conn

	dsp *dispatcher.Dispatcher

	opts
}

// NewListener creates a new Listener serving the given Dispatcher.
func NewListener(dsp *dispatcher.Dispatcher, oo ...Option) *Listener {
	l := &Listener{
		dsp: dsp,
		opts: opts{
			log:           zap.L(),
			subjectPrefix: DefaultSubjectPrefix,
			nOpts:         make([]nats.Option, 0, len(oo)+3),
		},
	}

	for _, o := range oo {
		o(&l.opts)
	}

	l.opts.nOpts = append(l.opts.nOpts,
		nats.NoCallbacksAfterClientClose(), // do not call callbacks when the listener stop was planned
		nats.DisconnectErrHandler(func(conn *nats.Conn, err error) {
			l.log.Error("nats: connection was lost", zap.Error(err))
		}),
		nats.ReconnectHandler(func(conn *nats.Conn) {
			l.log.Warn("nats: reconnected to the server")
		}),
	)

	return l
}

// Connect tries to connect to a specified NATS endpoint and
// ensures the trust request stream exists.
//
// Connection is closed when the passed context is done.
func (l *Listener) Connect(ctx context.Context, endpoint string) error {
	nc, err := nats.Connect(endpoint, l.nOpts...)
	if err != nil {
		return fmt.Errorf("could not connect to server: %w", err)
	}

	l.nc = nc

	// usage w/o options is error-free
	l.js, _ = nc.JetStream()

	_, err = l.js.AddStream(&nats.StreamConfig{
		Name:     l.streamName(),
		Subjects: []string{l.subjectPrefix + ".*"},
	})
	if err != nil {
		return fmt.Errorf("could not add stream: %w", err)
	}

	go func() {
		<-ctx.Done()
		l.log.Info("closing nats connection")

		if l.nc.IsConnected() {
			l.nc.Close()
		}
	}()

	return nil
}

// Listen subscribes to all trust request subjects. Malformed
// messages are logged and dropped, processing errors do not
// interrupt the subscriptions. Every message is acknowledged
// after the handler has run.
func (l *Listener) Listen() error {
	for subject, h := range map[string]nats.MsgHandler{
		l.subject(subjectInit):      l.handleInit,
		l.subject(subjectReport):    l.handleReport,
		l.subject(subjectRecompute): l.handleRecompute,
	} {
		if _, err := l.js.Subscribe(subject, h, nats.ManualAck()); err != nil {
			return fmt.Errorf("could not subscribe to %s: %w", subject, err)
		}
	}

	return nil
}

func (l *Listener) handleInit(msg *nats.Msg) {
	defer l.ack(msg)

	var req initMessage
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		l.log.Warn("malformed init request", zap.Error(err))
		return
	}

	var id trust.PeerID
	if err := id.DecodeString(req.Vehicle); err != nil {
		l.log.Warn("malformed vehicle ID in init request", zap.Error(err))
		return
	}

	var prm dispatcher.InitPrm

	prm.SetID(id)
	prm.SetInitialTrust(trust.Value(req.InitialTrust))

	if err := l.dsp.InitializeVehicle(prm); err != nil {
		l.log.Warn("could not initialize vehicle",
			zap.Stringer("id", id),
			zap.Error(err),
		)
	}
}

func (l *Listener) handleReport(msg *nats.Msg) {
	defer l.ack(msg)

	var req reportMessage
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		l.log.Warn("malformed outcome report", zap.Error(err))
		return
	}

	var (
		reporter, subject trust.PeerID
	)

	if err := reporter.DecodeString(req.Reporter); err != nil {
		l.log.Warn("malformed reporter ID in outcome report", zap.Error(err))
		return
	}

	if err := subject.DecodeString(req.Subject); err != nil {
		l.log.Warn("malformed subject ID in outcome report", zap.Error(err))
		return
	}

	var report trust.Report

	report.SetReporter(reporter)
	report.SetSubject(subject)
	report.SetTruthful(req.Truthful)

	var prm dispatcher.ReportPrm

	prm.SetReport(report)

	if err := l.dsp.ReportOutcome(prm); err != nil {
		l.log.Warn("could not apply outcome report",
			zap.Stringer("reporter", reporter),
			zap.Stringer("subject", subject),
			zap.Error(err),
		)
	}
}

func (l *Listener) handleRecompute(msg *nats.Msg) {
	defer l.ack(msg)

	var req recomputeMessage
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		l.log.Warn("malformed recompute request", zap.Error(err))
		return
	}

	var prm dispatcher.RecomputePrm

	prm.SetEpoch(req.Epoch)

	l.dsp.RecomputeScores(prm)
}

func (l *Listener) ack(msg *nats.Msg) {
	if err := msg.Ack(); err != nil {
		l.log.Warn("could not ack message", zap.Error(err))
	}
}
