package db

import (
	"time"

	"github.com/google/uuid"

	k "device-state-pipeline/internal/kafka"
)

// DeviceState is the durable snapshot row for one device assignment.
// The recent-record collections are loaded alongside the row; they are
// rolling state, not event history.
type DeviceState struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	DeviceID            uuid.UUID  `db:"device_id" json:"device_id"`
	DeviceTypeID        uuid.UUID  `db:"device_type_id" json:"device_type_id"`
	DeviceAssignmentID  uuid.UUID  `db:"device_assignment_id" json:"device_assignment_id"`
	CustomerID          *uuid.UUID `db:"customer_id" json:"customer_id,omitempty"`
	AreaID              *uuid.UUID `db:"area_id" json:"area_id,omitempty"`
	AssetID             *uuid.UUID `db:"asset_id" json:"asset_id,omitempty"`
	LastInteractionDate time.Time  `db:"last_interaction_date" json:"last_interaction_date"`
	PresenceMissingDate *time.Time `db:"presence_missing_date" json:"presence_missing_date,omitempty"`

	RecentLocation     *RecentLocation     `db:"-" json:"recent_location,omitempty"`
	RecentMeasurements []RecentMeasurement `db:"-" json:"recent_measurements,omitempty"`
	RecentAlert        *RecentAlert        `db:"-" json:"recent_alert,omitempty"`
}

// RecentLocation holds the latest observed location for a state. One row
// per state; newer event dates replace it.
type RecentLocation struct {
	StateID   uuid.UUID `db:"state_id" json:"-"`
	EventID   uuid.UUID `db:"event_id" json:"event_id"`
	EventDate time.Time `db:"event_date" json:"event_date"`
	Latitude  float64   `db:"latitude" json:"latitude"`
	Longitude float64   `db:"longitude" json:"longitude"`
	Elevation *float64  `db:"elevation" json:"elevation,omitempty"`
}

// RecentMeasurement is the rolling statistic for one measurement name:
// the current value plus min/max with the dates of the events that set
// the extrema.
type RecentMeasurement struct {
	StateID      uuid.UUID `db:"state_id" json:"-"`
	Name         string    `db:"name" json:"name"`
	EventDate    time.Time `db:"event_date" json:"event_date"`
	Value        float64   `db:"value" json:"value"`
	MaxValue     float64   `db:"max_value" json:"max_value"`
	MaxValueDate time.Time `db:"max_value_date" json:"max_value_date"`
	MinValue     float64   `db:"min_value" json:"min_value"`
	MinValueDate time.Time `db:"min_value_date" json:"min_value_date"`
}

// RecentAlert holds the latest observed alert for a state.
type RecentAlert struct {
	StateID   uuid.UUID `db:"state_id" json:"-"`
	EventID   uuid.UUID `db:"event_id" json:"event_id"`
	EventDate time.Time `db:"event_date" json:"event_date"`
	Source    string    `db:"source" json:"source"`
	Level     string    `db:"level" json:"level"`
	Type      string    `db:"type" json:"type"`
	Message   string    `db:"message" json:"message"`
}

// DeviceStateSeed carries the fields for creating a state on first event.
type DeviceStateSeed struct {
	DeviceID            uuid.UUID
	DeviceTypeID        uuid.UUID
	DeviceAssignmentID  uuid.UUID
	CustomerID          *uuid.UUID
	AreaID              *uuid.UUID
	AssetID             *uuid.UUID
	LastInteractionDate time.Time
}

// MergeRequest is one assignment's slice of a window accumulator, applied
// to its state in a single merge call.
type MergeRequest struct {
	Locations    []k.Envelope
	Measurements []k.Envelope
	Alerts       []k.Envelope
}
