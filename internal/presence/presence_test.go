package presence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"device-state-pipeline/internal/db"
)

var presenceBase = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestManager(t *testing.T) (*Manager, *MockstateSweeper) {
	states := NewMockstateSweeper(t)
	m := New(Config{
		States:          states,
		MissingInterval: 8 * time.Hour,
		BatchSize:       100,
	})
	m.now = func() time.Time { return presenceBase }
	return m, states
}

func Test_Sweep_MarksMissingStates(t *testing.T) {
	m, states := newTestManager(t)

	s1 := db.DeviceState{ID: uuid.New(), DeviceAssignmentID: uuid.New()}
	s2 := db.DeviceState{ID: uuid.New(), DeviceAssignmentID: uuid.New()}
	cutoff := presenceBase.Add(-8 * time.Hour)

	states.EXPECT().ListStatesInteractedBefore(mock.Anything, cutoff, 100).
		Return([]db.DeviceState{s1, s2}, nil)
	states.EXPECT().MarkPresenceMissing(mock.Anything, s1.ID, presenceBase).Return(nil)
	states.EXPECT().MarkPresenceMissing(mock.Anything, s2.ID, presenceBase).Return(nil)

	m.sweep(context.Background())
}

func Test_Sweep_NothingMissing(t *testing.T) {
	m, states := newTestManager(t)

	states.EXPECT().ListStatesInteractedBefore(mock.Anything, mock.Anything, 100).
		Return(nil, nil)

	m.sweep(context.Background())
}

func Test_Sweep_ListError(t *testing.T) {
	m, states := newTestManager(t)

	states.EXPECT().ListStatesInteractedBefore(mock.Anything, mock.Anything, 100).
		Return(nil, errors.New("connection reset"))

	m.sweep(context.Background())
}

// One failed mark must not stop the rest of the batch.
func Test_Sweep_MarkErrorContinues(t *testing.T) {
	m, states := newTestManager(t)

	s1 := db.DeviceState{ID: uuid.New()}
	s2 := db.DeviceState{ID: uuid.New()}

	states.EXPECT().ListStatesInteractedBefore(mock.Anything, mock.Anything, 100).
		Return([]db.DeviceState{s1, s2}, nil)
	states.EXPECT().MarkPresenceMissing(mock.Anything, s1.ID, presenceBase).
		Return(errors.New("connection reset"))
	states.EXPECT().MarkPresenceMissing(mock.Anything, s2.ID, presenceBase).Return(nil)

	m.sweep(context.Background())
}

func Test_Defaults(t *testing.T) {
	m := New(Config{States: NewMockstateSweeper(t)})
	if m.checkInterval != defaultCheckInterval {
		t.Fatalf("unexpected check interval: %v", m.checkInterval)
	}
	if m.missingInterval != defaultMissingInterval {
		t.Fatalf("unexpected missing interval: %v", m.missingInterval)
	}
	if m.batchSize != defaultBatchSize {
		t.Fatalf("unexpected batch size: %d", m.batchSize)
	}
}
