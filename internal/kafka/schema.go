package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event kinds understood by the pipeline. Envelopes carrying any other
// kind are logged and dropped at the window fold.
const (
	KindMeasurement = "measurement"
	KindLocation    = "location"
	KindAlert       = "alert"
)

// Envelope is one classified telemetry event as it travels the bus.
// DeviceAssignmentID is resolved upstream and must be set by the time an
// envelope reaches the window aggregator.
type Envelope struct {
	Kind               string     `json:"kind"`
	EventID            uuid.UUID  `json:"event_id"`
	DeviceID           uuid.UUID  `json:"device_id"`
	DeviceAssignmentID uuid.UUID  `json:"device_assignment_id"`
	CustomerID         *uuid.UUID `json:"customer_id,omitempty"`
	AreaID             *uuid.UUID `json:"area_id,omitempty"`
	AssetID            *uuid.UUID `json:"asset_id,omitempty"`
	EventDate          time.Time  `json:"event_date"`

	Measurement *Measurement `json:"measurement,omitempty"`
	Location    *Location    `json:"location,omitempty"`
	Alert       *Alert       `json:"alert,omitempty"`
}

type Measurement struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type Location struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Elevation *float64 `json:"elevation,omitempty"`
}

type Alert struct {
	Source  string `json:"source"`
	Level   string `json:"level"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func DecodeEnvelope(data []byte) (Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(data, &e); err != nil {
		return Envelope{}, err
	}
	return e, nil
}

func EncodeEnvelope(e Envelope) ([]byte, error) {
	return json.Marshal(e)
}
