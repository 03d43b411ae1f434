// Package persister is the raw persistence stage: it validates incoming
// events, writes them to the event store, and republishes them keyed by
// device onto the topic the window aggregator consumes. Unlike the
// aggregator it dispatches to a bounded worker pool, trading ordering for
// throughput at the point of first write.
package persister

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	k "device-state-pipeline/internal/kafka"
	"device-state-pipeline/internal/worker"
)

var (
	ErrReadMessage       = errors.New("error reading message")
	ErrMissingAssignment = errors.New("envelope missing device assignment")
)

const defaultWorkers = 8

type eventStore interface {
	InsertEvent(ctx context.Context, e k.Envelope) error
}

type Config struct {
	Brokers         string
	ConsumerGroupID string
	ConsumerTopic   string
	PublisherTopic  string
	Workers         int
	Events          eventStore
}

type Persister struct {
	worker *worker.Worker
	reader k.Reader
	writer k.Writer
	events eventStore

	slots chan struct{}
	wg    sync.WaitGroup
}

func New(cfg Config) *Persister {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	p := &Persister{
		reader: k.NewReader(strings.Split(cfg.Brokers, ","), cfg.ConsumerGroupID, cfg.ConsumerTopic),
		writer: k.NewWriter(strings.Split(cfg.Brokers, ","), cfg.PublisherTopic),
		events: cfg.Events,
		slots:  make(chan struct{}, workers),
	}

	p.worker = worker.New(worker.Config{
		Name:      "persister-worker",
		Processor: p,
	})
	return p
}

func (p *Persister) Run(ctx context.Context) {
	p.worker.Run(ctx)
}

func (p *Persister) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing persister resources...")
	p.wg.Wait()
	p.reader.Close()
	p.writer.Close()
}

// Auto-commit active; persistence is at-least-once and unordered.
func (p *Persister) ProcessMessage(ctx context.Context) error {
	const fn = "Persister:ProcessMessage"
	m, err := p.reader.ReadMessage(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrReadMessage, err)
	}

	select {
	case p.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	p.wg.Add(1)
	go func(m kafka.Message) {
		defer p.wg.Done()
		defer func() { <-p.slots }()
		p.handle(ctx, m)
	}(m)
	return nil
}

func (p *Persister) handle(ctx context.Context, m kafka.Message) {
	e, err := k.DecodeEnvelope(m.Value)
	if err != nil {
		slog.ErrorContext(ctx, "Error parsing event, skipping", "error", err)
		return
	}
	if err := normalize(&e); err != nil {
		slog.InfoContext(ctx, "Invalid event, skipping",
			"error", err,
			"device_id", e.DeviceID,
			"kind", e.Kind,
		)
		return
	}

	if err := p.events.InsertEvent(ctx, e); err != nil {
		slog.ErrorContext(ctx, "Error persisting event", "event_id", e.EventID, "error", err)
		return
	}

	out, err := k.EncodeEnvelope(e)
	if err != nil {
		slog.ErrorContext(ctx, "Error marshalling event", "event_id", e.EventID, "error", err)
		return
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.DeviceID.String()),
		Value: out,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Error republishing event", "event_id", e.EventID, "error", err)
		return
	}
	slog.InfoContext(ctx, "Persisted event", "event_id", e.EventID, "device_id", e.DeviceID)
}

// normalize fills server-assigned fields and rejects events that cannot
// reach the window aggregator.
func normalize(e *k.Envelope) error {
	if e.DeviceAssignmentID == uuid.Nil {
		return ErrMissingAssignment
	}
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	if e.EventDate.IsZero() {
		e.EventDate = time.Now().UTC()
	}
	return nil
}
