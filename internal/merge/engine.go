// Package merge turns emitted window accumulators into durable
// per-assignment device state.
package merge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"device-state-pipeline/internal/db"
	"device-state-pipeline/internal/directory"
	k "device-state-pipeline/internal/kafka"
	"device-state-pipeline/internal/metrics"
	"device-state-pipeline/internal/window"
)

var (
	ErrStateLookup      = errors.New("device state lookup failed")
	ErrStateCreate      = errors.New("device state create failed")
	ErrStateMerge       = errors.New("device state merge failed")
	ErrAssignmentLookup = errors.New("device assignment lookup failed")
	ErrDeviceLookup     = errors.New("device lookup failed")
)

const defaultCallTimeout = 10 * time.Second

type stateStore interface {
	GetStateByAssignment(ctx context.Context, assignmentID uuid.UUID) (*db.DeviceState, error)
	CreateState(ctx context.Context, seed db.DeviceStateSeed) (*db.DeviceState, error)
	MergeState(ctx context.Context, stateID uuid.UUID, req db.MergeRequest) (*db.DeviceState, error)
}

type deviceDirectory interface {
	GetAssignment(ctx context.Context, assignmentID uuid.UUID) (*directory.Assignment, error)
	GetDevice(ctx context.Context, deviceID uuid.UUID) (*directory.Device, error)
}

type Config struct {
	States    stateStore
	Directory deviceDirectory
	// CallTimeout bounds each state store call so one slow assignment
	// cannot stall the partition indefinitely.
	CallTimeout  time.Duration
	MetricsGroup string
}

// Engine merges emitted window accumulators into the device state store,
// one assignment at a time. A failure for one assignment never blocks the
// others in the same window.
type Engine struct {
	states    stateStore
	directory deviceDirectory
	timeout   time.Duration

	lookupSeconds prometheus.Observer
	mergeSeconds  prometheus.Observer

	now func() time.Time
}

func New(cfg Config) *Engine {
	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &Engine{
		states:        cfg.States,
		directory:     cfg.Directory,
		timeout:       timeout,
		lookupSeconds: metrics.StateLookupSeconds.WithLabelValues(cfg.MetricsGroup),
		mergeSeconds:  metrics.StateMergeSeconds.WithLabelValues(cfg.MetricsGroup),
		now:           time.Now,
	}
}

// Persist groups the accumulator's events by device assignment and merges
// each bucket into its state, creating state on first sight. Returns the
// successfully merged states; failed assignments are logged and skipped.
func (e *Engine) Persist(ctx context.Context, em window.Emission) []db.DeviceState {
	buckets := groupByAssignment(em.Accumulator)

	updated := make([]db.DeviceState, 0, len(buckets))
	for assignmentID, req := range buckets {
		state, err := e.persistAssignment(ctx, assignmentID, req)
		if err != nil {
			slog.ErrorContext(ctx, "Unable to persist device state",
				"device_assignment_id", assignmentID,
				"window_start", em.Interval.Start,
				"error", err,
			)
			continue
		}
		updated = append(updated, *state)
	}
	return updated
}

func (e *Engine) persistAssignment(ctx context.Context, assignmentID uuid.UUID, req *db.MergeRequest) (*db.DeviceState, error) {
	const fn = "Engine:persistAssignment"

	lookupCtx, cancel := context.WithTimeout(ctx, e.timeout)
	timer := prometheus.NewTimer(e.lookupSeconds)
	state, err := e.states.GetStateByAssignment(lookupCtx, assignmentID)
	timer.ObserveDuration()
	cancel()

	switch {
	case errors.Is(err, db.ErrNotFound):
		state, err = e.createState(ctx, assignmentID, req)
		if err != nil {
			return nil, fmt.Errorf("%s:%w", fn, err)
		}
	case err != nil:
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrStateLookup, err)
	}

	mergeCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	timer = prometheus.NewTimer(e.mergeSeconds)
	merged, err := e.states.MergeState(mergeCtx, state.ID, *req)
	timer.ObserveDuration()
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrStateMerge, err)
	}
	return merged, nil
}

// createState seeds a new state for an assignment seen for the first
// time. Missing assignment or device registrations are permanent errors
// for this bucket.
func (e *Engine) createState(ctx context.Context, assignmentID uuid.UUID, req *db.MergeRequest) (*db.DeviceState, error) {
	assignment, err := e.directory.GetAssignment(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("%w:%w", ErrAssignmentLookup, err)
	}
	device, err := e.directory.GetDevice(ctx, assignment.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("%w:%w", ErrDeviceLookup, err)
	}

	seed := db.DeviceStateSeed{
		DeviceID:            assignment.DeviceID,
		DeviceTypeID:        device.DeviceTypeID,
		DeviceAssignmentID:  assignmentID,
		LastInteractionDate: e.now(),
	}
	applyLatestContext(&seed, req)

	createCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	state, err := e.states.CreateState(createCtx, seed)
	if err != nil {
		return nil, fmt.Errorf("%w:%w", ErrStateCreate, err)
	}
	return state, nil
}

// applyLatestContext copies customer/area/asset ids from the single event
// with the latest event date across all three sequences. Stable sort, so
// the earlier-encountered event wins on equal dates.
func applyLatestContext(seed *db.DeviceStateSeed, req *db.MergeRequest) {
	events := make([]k.Envelope, 0, len(req.Locations)+len(req.Measurements)+len(req.Alerts))
	events = append(events, req.Locations...)
	events = append(events, req.Measurements...)
	events = append(events, req.Alerts...)
	if len(events) == 0 {
		return
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].EventDate.After(events[j].EventDate)
	})
	latest := events[0]
	seed.CustomerID = latest.CustomerID
	seed.AreaID = latest.AreaID
	seed.AssetID = latest.AssetID
}

// groupByAssignment routes every accumulated event into a merge request
// bucket keyed by assignment id, creating buckets lazily on first sight.
func groupByAssignment(acc window.Accumulator) map[uuid.UUID]*db.MergeRequest {
	buckets := make(map[uuid.UUID]*db.MergeRequest)
	bucketFor := func(e k.Envelope) *db.MergeRequest {
		req, ok := buckets[e.DeviceAssignmentID]
		if !ok {
			req = &db.MergeRequest{}
			buckets[e.DeviceAssignmentID] = req
		}
		return req
	}
	for _, e := range acc.Locations {
		req := bucketFor(e)
		req.Locations = append(req.Locations, e)
	}
	for _, e := range acc.Measurements {
		req := bucketFor(e)
		req.Measurements = append(req.Measurements, e)
	}
	for _, e := range acc.Alerts {
		req := bucketFor(e)
		req.Alerts = append(req.Alerts, e)
	}
	return buckets
}
