package window

import (
	k "device-state-pipeline/internal/kafka"
)

// Accumulator collects the classified events of one device key over one
// window interval. Fold never mutates the receiver: the window store may
// re-deliver the same input, so each fold yields a fresh value.
type Accumulator struct {
	Locations    []k.Envelope
	Measurements []k.Envelope
	Alerts       []k.Envelope
}

// Fold appends the envelope to the sequence matching its kind and returns
// the resulting accumulator. The second return is false for unrecognized
// kinds, which leave the accumulator unchanged.
func (a Accumulator) Fold(e k.Envelope) (Accumulator, bool) {
	switch e.Kind {
	case k.KindLocation:
		return Accumulator{
			Locations:    appendCopy(a.Locations, e),
			Measurements: a.Measurements,
			Alerts:       a.Alerts,
		}, true
	case k.KindMeasurement:
		return Accumulator{
			Locations:    a.Locations,
			Measurements: appendCopy(a.Measurements, e),
			Alerts:       a.Alerts,
		}, true
	case k.KindAlert:
		return Accumulator{
			Locations:    a.Locations,
			Measurements: a.Measurements,
			Alerts:       appendCopy(a.Alerts, e),
		}, true
	default:
		return a, false
	}
}

// Count returns the total number of accumulated events.
func (a Accumulator) Count() int {
	return len(a.Locations) + len(a.Measurements) + len(a.Alerts)
}

// appendCopy appends onto a freshly allocated slice so that accumulators
// produced by earlier folds never share a backing array with later ones.
func appendCopy(s []k.Envelope, e k.Envelope) []k.Envelope {
	out := make([]k.Envelope, len(s), len(s)+1)
	copy(out, s)
	return append(out, e)
}
