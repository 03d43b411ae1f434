package window

import (
	"time"

	"github.com/google/uuid"
)

// Interval is one tumbling window: [Start, End). Windows are aligned by
// truncating the event time to the window length, so every event maps to
// exactly one interval and intervals never overlap.
type Interval struct {
	Start time.Time
	End   time.Time
}

// IntervalFor assigns an event time to its tumbling window.
func IntervalFor(t time.Time, length time.Duration) Interval {
	start := t.Truncate(length)
	return Interval{Start: start, End: start.Add(length)}
}

// Key identifies one in-flight window: the device plus the window start.
// The start is kept as unix nanos so the key is directly comparable.
type Key struct {
	DeviceID    uuid.UUID
	WindowStart int64
}

// Emission is one window accumulator handed downstream, either because the
// window closed or, in on-update mode, after every fold.
type Emission struct {
	DeviceID    uuid.UUID
	Interval    Interval
	Accumulator Accumulator
}
