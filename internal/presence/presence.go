// Package presence periodically marks device states whose last
// interaction is older than the missing interval. Merges clear the mark
// the next time the device produces events.
package presence

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"device-state-pipeline/internal/db"
)

const (
	defaultCheckInterval   = 10 * time.Minute
	defaultMissingInterval = 8 * time.Hour
	defaultBatchSize       = 100
)

type stateSweeper interface {
	ListStatesInteractedBefore(ctx context.Context, cutoff time.Time, limit int) ([]db.DeviceState, error)
	MarkPresenceMissing(ctx context.Context, stateID uuid.UUID, when time.Time) error
}

type Config struct {
	States          stateSweeper
	CheckInterval   time.Duration
	MissingInterval time.Duration
	BatchSize       int
}

type Manager struct {
	states          stateSweeper
	checkInterval   time.Duration
	missingInterval time.Duration
	batchSize       int
	now             func() time.Time
}

func New(cfg Config) *Manager {
	m := &Manager{
		states:          cfg.States,
		checkInterval:   cfg.CheckInterval,
		missingInterval: cfg.MissingInterval,
		batchSize:       cfg.BatchSize,
		now:             time.Now,
	}
	if m.checkInterval <= 0 {
		m.checkInterval = defaultCheckInterval
	}
	if m.missingInterval <= 0 {
		m.missingInterval = defaultMissingInterval
	}
	if m.batchSize <= 0 {
		m.batchSize = defaultBatchSize
	}
	return m
}

func (m *Manager) Run(ctx context.Context) {
	slog.InfoContext(ctx, "Presence manager started...",
		"check_interval", m.checkInterval,
		"missing_interval", m.missingInterval,
	)
	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Presence manager stopped...")
			return
		case <-ticker.C:
			m.sweep(ctx)
		}
	}
}

func (m *Manager) sweep(ctx context.Context) {
	now := m.now()
	cutoff := now.Add(-m.missingInterval)

	missing, err := m.states.ListStatesInteractedBefore(ctx, cutoff, m.batchSize)
	if err != nil {
		slog.ErrorContext(ctx, "Error listing non-present devices", "error", err)
		return
	}
	if len(missing) == 0 {
		slog.InfoContext(ctx, "No non-present devices detected")
		return
	}

	slog.InfoContext(ctx, "Detected non-present devices", "count", len(missing))
	for _, state := range missing {
		if err := m.states.MarkPresenceMissing(ctx, state.ID, now); err != nil {
			slog.ErrorContext(ctx, "Error marking device presence missing",
				"device_assignment_id", state.DeviceAssignmentID,
				"error", err,
			)
		}
	}
}
