package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/vanet-dev/trust-node/pkg/services/trust"
	"go.uber.org/zap"
)

// Writer publishes trust requests to NATS JetStream subjects.
// Counterpart of the Listener used by operator tooling.
//
// For correct operation must be created via NewWriter.
// new(Writer) or Writer{} construction leads to undefined
// behaviour and is not safe.
type Writer struct {
	js nats.JetStreamContext
	nc *nats.Conn

	opts
}

var errConnIsClosed = errors.New("connection to the server is closed")

// NewWriter creates a new Writer.
func NewWriter(oo ...Option) *Writer {
	w := &Writer{
		opts: opts{
			log:           zap.L(),
			subjectPrefix: DefaultSubjectPrefix,
			nOpts:         make([]nats.Option, 0, len(oo)+1),
		},
	}

	for _, o := range oo {
		o(&w.opts)
	}

	w.opts.nOpts = append(w.opts.nOpts,
		nats.NoCallbacksAfterClientClose(),
	)

	return w
}

// Connect tries to connect to a specified NATS endpoint.
//
// Connection is closed when the passed context is done.
func (w *Writer) Connect(ctx context.Context, endpoint string) error {
	nc, err := nats.Connect(endpoint, w.nOpts...)
	if err != nil {
		return fmt.Errorf("could not connect to server: %w", err)
	}

	w.nc = nc

	// usage w/o options is error-free
	w.js, _ = nc.JetStream()

	go func() {
		<-ctx.Done()

		if w.nc.IsConnected() {
			w.nc.Close()
		}
	}()

	return nil
}

// SendInit publishes a vehicle initialization request.
func (w *Writer) SendInit(id trust.PeerID, initial trust.Value) error {
	return w.publish(w.subject(subjectInit), initMessage{
		Vehicle:      id.String(),
		InitialTrust: initial.Float64(),
	})
}

// SendReport publishes an outcome report.
func (w *Writer) SendReport(report trust.Report) error {
	return w.publish(w.subject(subjectReport), reportMessage{
		Reporter: report.Reporter().String(),
		Subject:  report.Subject().String(),
		Truthful: report.Truthful(),
	})
}

// SendRecompute publishes a global recompute trigger.
func (w *Writer) SendRecompute(epoch uint64) error {
	return w.publish(w.subject(subjectRecompute), recomputeMessage{
		Epoch: epoch,
	})
}

func (w *Writer) publish(subject string, msg interface{}) error {
	if w.nc == nil || !w.nc.IsConnected() {
		return errConnIsClosed
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("could not encode request: %w", err)
	}

	// random message ID to support 'exactly once' delivery
	_, err = w.js.Publish(subject, data, nats.MsgId(uuid.NewString()))
	if err != nil {
		return err
	}

	return nil
}
