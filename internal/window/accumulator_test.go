package window

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	k "device-state-pipeline/internal/kafka"
)

func envelope(kind string, date time.Time) k.Envelope {
	e := k.Envelope{
		Kind:               kind,
		EventID:            uuid.New(),
		DeviceID:           uuid.New(),
		DeviceAssignmentID: uuid.New(),
		EventDate:          date,
	}
	switch kind {
	case k.KindMeasurement:
		e.Measurement = &k.Measurement{Name: "temp", Value: 20}
	case k.KindLocation:
		e.Location = &k.Location{Latitude: 33.75, Longitude: -84.39}
	case k.KindAlert:
		e.Alert = &k.Alert{Source: "device", Level: "error", Type: "engine.overheat", Message: "hot"}
	}
	return e
}

func Test_Fold_ClassifiesByKind(t *testing.T) {
	now := time.Now()
	var acc Accumulator

	acc, ok := acc.Fold(envelope(k.KindMeasurement, now))
	assert.True(t, ok)
	acc, ok = acc.Fold(envelope(k.KindLocation, now))
	assert.True(t, ok)
	acc, ok = acc.Fold(envelope(k.KindAlert, now))
	assert.True(t, ok)
	acc, ok = acc.Fold(envelope(k.KindMeasurement, now))
	assert.True(t, ok)

	assert.Len(t, acc.Measurements, 2)
	assert.Len(t, acc.Locations, 1)
	assert.Len(t, acc.Alerts, 1)
	assert.Equal(t, 4, acc.Count())
}

func Test_Fold_IgnoresUnknownKind(t *testing.T) {
	var acc Accumulator
	acc, ok := acc.Fold(envelope(k.KindMeasurement, time.Now()))
	assert.True(t, ok)

	out, ok := acc.Fold(k.Envelope{Kind: "command_response"})
	assert.False(t, ok)
	assert.Equal(t, acc, out)
	assert.Equal(t, 1, out.Count())
}

// Fold must be repeatable: folding on top of an earlier accumulator value
// may never leak into accumulators derived from it before.
func Test_Fold_CopyOnAppend(t *testing.T) {
	now := time.Now()
	var base Accumulator
	base, _ = base.Fold(envelope(k.KindMeasurement, now))

	first, _ := base.Fold(envelope(k.KindMeasurement, now.Add(time.Second)))
	second, _ := base.Fold(envelope(k.KindMeasurement, now.Add(2*time.Second)))

	assert.Len(t, base.Measurements, 1)
	assert.Len(t, first.Measurements, 2)
	assert.Len(t, second.Measurements, 2)
	assert.NotEqual(t, first.Measurements[1].EventID, second.Measurements[1].EventID)
}
