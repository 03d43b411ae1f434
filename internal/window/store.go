package window

import (
	"time"

	"github.com/google/uuid"

	k "device-state-pipeline/internal/kafka"
)

type entry struct {
	interval    Interval
	accumulator Accumulator
	// dirty marks folds not yet emitted; a late event re-dirties a
	// closed window so it is emitted again on the next sweep.
	dirty bool
}

// Store holds the in-flight window accumulators for one aggregator.
// It is owned by a single goroutine (the aggregator's processing loop)
// and is intentionally unsynchronized.
type Store struct {
	length    time.Duration
	retention time.Duration
	entries   map[Key]*entry
}

type StoreConfig struct {
	// Length of each tumbling window.
	Length time.Duration
	// Retention past a window's end before its accumulator is dropped.
	Retention time.Duration
}

func NewStore(cfg StoreConfig) *Store {
	return &Store{
		length:    cfg.Length,
		retention: cfg.Retention,
		entries:   make(map[Key]*entry),
	}
}

// Fold routes the envelope to its device/window accumulator, creating the
// window on first sight. The second return is false when the envelope's
// kind is unrecognized and nothing was folded.
func (s *Store) Fold(e k.Envelope) (Emission, bool) {
	iv := IntervalFor(e.EventDate, s.length)
	key := Key{DeviceID: e.DeviceID, WindowStart: iv.Start.UnixNano()}

	ent, ok := s.entries[key]
	if !ok {
		ent = &entry{interval: iv}
		s.entries[key] = ent
	}

	acc, ok := ent.accumulator.Fold(e)
	if !ok {
		return Emission{}, false
	}
	ent.accumulator = acc
	ent.dirty = true

	return Emission{DeviceID: e.DeviceID, Interval: iv, Accumulator: acc}, true
}

// Sweep emits every closed window with unemitted folds and evicts windows
// past their retention. Late events landing in a closed-but-retained
// window are picked up by a later sweep.
func (s *Store) Sweep(now time.Time) []Emission {
	var out []Emission
	for key, ent := range s.entries {
		if !now.Before(ent.interval.End.Add(s.retention)) {
			if ent.dirty {
				out = append(out, Emission{
					DeviceID:    key.DeviceID,
					Interval:    ent.interval,
					Accumulator: ent.accumulator,
				})
			}
			delete(s.entries, key)
			continue
		}
		if ent.dirty && !now.Before(ent.interval.End) {
			out = append(out, Emission{
				DeviceID:    key.DeviceID,
				Interval:    ent.interval,
				Accumulator: ent.accumulator,
			})
			ent.dirty = false
		}
	}
	return out
}

// MarkEmitted clears the dirty flag after an on-update emission so the
// next sweep does not re-emit an unchanged accumulator.
func (s *Store) MarkEmitted(deviceID uuid.UUID, iv Interval) {
	key := Key{DeviceID: deviceID, WindowStart: iv.Start.UnixNano()}
	if ent, ok := s.entries[key]; ok {
		ent.dirty = false
	}
}

// Len returns the number of in-flight windows.
func (s *Store) Len() int {
	return len(s.entries)
}
