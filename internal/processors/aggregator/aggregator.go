// Package aggregator consumes classified telemetry envelopes and folds
// them into per-device tumbling windows, handing closed windows to the
// state merge engine. Processing is single-threaded per consumer, so
// merges for one device key never run concurrently.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"

	"device-state-pipeline/internal/db"
	k "device-state-pipeline/internal/kafka"
	"device-state-pipeline/internal/metrics"
	"device-state-pipeline/internal/window"
	"device-state-pipeline/internal/worker"
)

var (
	ErrReadMessage = errors.New("error reading message")
)

type statePersister interface {
	Persist(ctx context.Context, em window.Emission) []db.DeviceState
}

type Config struct {
	Brokers         string
	ConsumerGroupID string
	ConsumerTopic   string

	WindowLength time.Duration
	// Retention past window end before accumulators are dropped;
	// defaults to three window lengths.
	Retention time.Duration
	// EmitOnUpdate emits the live accumulator after every fold instead
	// of waiting for the window to close.
	EmitOnUpdate bool
	// FlushInterval bounds how long an idle consumer waits before
	// sweeping closed windows.
	FlushInterval time.Duration

	Persister    statePersister
	MetricsGroup string
}

type Aggregator struct {
	worker *worker.Worker
	reader k.Reader

	windows      *window.Store
	persister    statePersister
	emitOnUpdate bool
	flushEvery   time.Duration

	eventsProcessed prometheus.Counter
	now             func() time.Time
}

func New(cfg Config) *Aggregator {
	retention := cfg.Retention
	if retention <= 0 {
		retention = 3 * cfg.WindowLength
	}
	flushEvery := cfg.FlushInterval
	if flushEvery <= 0 {
		flushEvery = cfg.WindowLength
	}

	agg := &Aggregator{
		reader: k.NewReader(strings.Split(cfg.Brokers, ","), cfg.ConsumerGroupID, cfg.ConsumerTopic),
		windows: window.NewStore(window.StoreConfig{
			Length:    cfg.WindowLength,
			Retention: retention,
		}),
		persister:       cfg.Persister,
		emitOnUpdate:    cfg.EmitOnUpdate,
		flushEvery:      flushEvery,
		eventsProcessed: metrics.WindowEventsProcessed.WithLabelValues(cfg.MetricsGroup),
		now:             time.Now,
	}

	agg.worker = worker.New(worker.Config{
		Name:      "aggregator-worker",
		Processor: agg,
	})
	return agg
}

func (a *Aggregator) Run(ctx context.Context) {
	a.worker.Run(ctx)
}

func (a *Aggregator) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing aggregator resources...")
	a.reader.Close()
}

// ProcessMessage fetches one envelope, folds it into its window, emits
// any closed windows, and commits the offset. The fetch is bounded by
// the flush interval so idle partitions still close their windows.
func (a *Aggregator) ProcessMessage(ctx context.Context) error {
	const fn = "Aggregator:ProcessMessage"

	fetchCtx, cancel := context.WithTimeout(ctx, a.flushEvery)
	m, err := a.reader.FetchMessage(fetchCtx)
	cancel()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			a.flush(ctx)
			return nil
		}
		return fmt.Errorf("%s:%w:%w", fn, ErrReadMessage, err)
	}

	e, err := k.DecodeEnvelope(m.Value)
	if err != nil {
		slog.ErrorContext(ctx, "Error parsing envelope, skipping", "error", err)
		return a.commit(ctx, m)
	}
	if e.DeviceAssignmentID == uuid.Nil {
		slog.ErrorContext(ctx, "Envelope missing device assignment, skipping",
			"device_id", e.DeviceID, "event_id", e.EventID)
		return a.commit(ctx, m)
	}

	em, ok := a.windows.Fold(e)
	if !ok {
		slog.InfoContext(ctx, "Ignoring envelope of unrecognized kind",
			"kind", e.Kind, "device_id", e.DeviceID)
		return a.commit(ctx, m)
	}
	a.eventsProcessed.Inc()

	if a.emitOnUpdate {
		a.persister.Persist(ctx, em)
		a.windows.MarkEmitted(em.DeviceID, em.Interval)
	}
	a.flush(ctx)

	return a.commit(ctx, m)
}

// flush emits every closed window synchronously, preserving per-key
// ordering. Blocking on the state store here backpressures the whole
// partition, which is what bounds memory.
func (a *Aggregator) flush(ctx context.Context) {
	for _, em := range a.windows.Sweep(a.now()) {
		updated := a.persister.Persist(ctx, em)
		slog.InfoContext(ctx, "Persisted window",
			"device_id", em.DeviceID,
			"window_start", em.Interval.Start,
			"events", em.Accumulator.Count(),
			"states_updated", len(updated),
		)
	}
}

// Offset commits are best-effort under at-least-once delivery.
func (a *Aggregator) commit(ctx context.Context, m kafka.Message) error {
	if err := a.reader.CommitMessages(ctx, m); err != nil {
		slog.ErrorContext(ctx, "Error committing offset", "error", err)
	}
	return nil
}
