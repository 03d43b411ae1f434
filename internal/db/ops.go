package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	k "device-state-pipeline/internal/kafka"
)

var (
	ErrNotFound               = errors.New("not found")
	ErrTransactionStartFailed = errors.New("transaction start failed")
	ErrInsertFailed           = errors.New("insert operation failed")
	ErrSelectFailed           = errors.New("select operation failed")
	ErrUpdateFailed           = errors.New("update operation failed")
)

const stateColumns = `
	id,
	device_id,
	device_type_id,
	device_assignment_id,
	customer_id,
	area_id,
	asset_id,
	last_interaction_date,
	presence_missing_date`

// GetStateByAssignment loads the device state for an assignment along with
// its recent records. Returns ErrNotFound when no state exists yet.
func (db *DB) GetStateByAssignment(ctx context.Context, assignmentID uuid.UUID) (*DeviceState, error) {
	const fn = "DB:GetStateByAssignment"
	var state DeviceState
	err := pgxscan.Get(ctx, db.pool, &state, `
		SELECT `+stateColumns+`
		FROM device_state
		WHERE device_assignment_id = $1
	`, assignmentID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	if err := db.loadRecent(ctx, db.pool, &state); err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return &state, nil
}

// CreateState inserts a new device state row from the seed.
func (db *DB) CreateState(ctx context.Context, seed DeviceStateSeed) (*DeviceState, error) {
	const fn = "DB:CreateState"
	state := DeviceState{
		ID:                  uuid.New(),
		DeviceID:            seed.DeviceID,
		DeviceTypeID:        seed.DeviceTypeID,
		DeviceAssignmentID:  seed.DeviceAssignmentID,
		CustomerID:          seed.CustomerID,
		AreaID:              seed.AreaID,
		AssetID:             seed.AssetID,
		LastInteractionDate: seed.LastInteractionDate,
	}
	_, err := db.pool.Exec(ctx, `
		INSERT INTO device_state (
			id,
			device_id,
			device_type_id,
			device_assignment_id,
			customer_id,
			area_id,
			asset_id,
			last_interaction_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, state.ID, state.DeviceID, state.DeviceTypeID, state.DeviceAssignmentID,
		state.CustomerID, state.AreaID, state.AssetID, state.LastInteractionDate)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return &state, nil
}

// MergeState applies one assignment's window events to its state in a
// single transaction: latest-wins replacement for the recent location and
// alert, rolling min/max per measurement name, and an advanced
// last_interaction_date. The merged state is returned.
func (db *DB) MergeState(ctx context.Context, stateID uuid.UUID, req MergeRequest) (*DeviceState, error) {
	const fn = "DB:MergeState"
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrTransactionStartFailed, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		} else {
			tx.Commit(ctx)
		}
	}()

	var state DeviceState
	err = pgxscan.Get(ctx, tx, &state, `
		SELECT `+stateColumns+`
		FROM device_state
		WHERE id = $1
		FOR UPDATE
	`, stateID)
	if err != nil {
		if pgxscan.NotFound(err) {
			err = fmt.Errorf("%s:%w", fn, ErrNotFound)
		} else {
			err = fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
		}
		return nil, err
	}

	if err = mergeLocations(ctx, tx, stateID, req.Locations); err != nil {
		err = fmt.Errorf("%s:%w", fn, err)
		return nil, err
	}
	if err = mergeMeasurements(ctx, tx, stateID, req.Measurements); err != nil {
		err = fmt.Errorf("%s:%w", fn, err)
		return nil, err
	}
	if err = mergeAlerts(ctx, tx, stateID, req.Alerts); err != nil {
		err = fmt.Errorf("%s:%w", fn, err)
		return nil, err
	}

	now := time.Now().UTC()
	_, err = tx.Exec(ctx, `
		UPDATE device_state
		SET last_interaction_date = $2,
			presence_missing_date = NULL
		WHERE id = $1
	`, stateID, now)
	if err != nil {
		err = fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
		return nil, err
	}
	state.LastInteractionDate = now
	state.PresenceMissingDate = nil

	if err = db.loadRecent(ctx, tx, &state); err != nil {
		err = fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
		return nil, err
	}
	return &state, nil
}

// ListStatesInteractedBefore returns states whose last interaction is
// older than the cutoff and that are not already marked missing. Recent
// records are not loaded; the presence sweep has no use for them.
func (db *DB) ListStatesInteractedBefore(ctx context.Context, cutoff time.Time, limit int) ([]DeviceState, error) {
	const fn = "DB:ListStatesInteractedBefore"
	var states []DeviceState
	err := pgxscan.Select(ctx, db.pool, &states, `
		SELECT `+stateColumns+`
		FROM device_state
		WHERE last_interaction_date < $1
		AND presence_missing_date IS NULL
		ORDER BY last_interaction_date ASC
		LIMIT $2
	`, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return states, nil
}

// MarkPresenceMissing stamps the presence missing date on a state.
func (db *DB) MarkPresenceMissing(ctx context.Context, stateID uuid.UUID, when time.Time) error {
	const fn = "DB:MarkPresenceMissing"
	_, err := db.pool.Exec(ctx, `
		UPDATE device_state
		SET presence_missing_date = $2
		WHERE id = $1
	`, stateID, when)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}
	return nil
}

// InsertEvent persists one raw envelope. Redelivered events with the same
// id are ignored.
func (db *DB) InsertEvent(ctx context.Context, e k.Envelope) error {
	const fn = "DB:InsertEvent"
	payload, err := k.EncodeEnvelope(e)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	_, err = db.pool.Exec(ctx, `
		INSERT INTO device_events (
			id,
			kind,
			device_id,
			device_assignment_id,
			event_date,
			payload
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`, e.EventID, e.Kind, e.DeviceID, e.DeviceAssignmentID, e.EventDate, payload)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

func (db *DB) loadRecent(ctx context.Context, q pgxscan.Querier, state *DeviceState) error {
	var loc RecentLocation
	err := pgxscan.Get(ctx, q, &loc, `
		SELECT state_id, event_id, event_date, latitude, longitude, elevation
		FROM recent_location
		WHERE state_id = $1
	`, state.ID)
	switch {
	case err == nil:
		state.RecentLocation = &loc
	case !pgxscan.NotFound(err):
		return err
	}

	var alert RecentAlert
	err = pgxscan.Get(ctx, q, &alert, `
		SELECT state_id, event_id, event_date, source, level, type, message
		FROM recent_alert
		WHERE state_id = $1
	`, state.ID)
	switch {
	case err == nil:
		state.RecentAlert = &alert
	case !pgxscan.NotFound(err):
		return err
	}

	state.RecentMeasurements = nil
	return pgxscan.Select(ctx, q, &state.RecentMeasurements, `
		SELECT state_id, name, event_date, value, max_value, max_value_date, min_value, min_value_date
		FROM recent_measurement
		WHERE state_id = $1
		ORDER BY name ASC
	`, state.ID)
}

// latestByEventDate returns the envelope with the latest event date; the
// first one encountered wins on ties.
func latestByEventDate(events []k.Envelope) k.Envelope {
	latest := events[0]
	for _, e := range events[1:] {
		if e.EventDate.After(latest.EventDate) {
			latest = e
		}
	}
	return latest
}

func mergeLocations(ctx context.Context, tx pgx.Tx, stateID uuid.UUID, locations []k.Envelope) error {
	incoming := make([]k.Envelope, 0, len(locations))
	for _, e := range locations {
		if e.Location != nil {
			incoming = append(incoming, e)
		}
	}
	if len(incoming) == 0 {
		return nil
	}
	latest := latestByEventDate(incoming)

	var existingDate time.Time
	err := tx.QueryRow(ctx, `
		SELECT event_date FROM recent_location WHERE state_id = $1 FOR UPDATE
	`, stateID).Scan(&existingDate)
	if err != nil && err != pgx.ErrNoRows {
		return fmt.Errorf("%w:%w", ErrSelectFailed, err)
	}
	if err == nil && !latest.EventDate.After(existingDate) {
		return nil
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO recent_location (state_id, event_id, event_date, latitude, longitude, elevation)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (state_id) DO UPDATE SET
			event_id = EXCLUDED.event_id,
			event_date = EXCLUDED.event_date,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			elevation = EXCLUDED.elevation
	`, stateID, latest.EventID, latest.EventDate,
		latest.Location.Latitude, latest.Location.Longitude, latest.Location.Elevation)
	if err != nil {
		return fmt.Errorf("%w:%w", ErrInsertFailed, err)
	}
	return nil
}

func mergeAlerts(ctx context.Context, tx pgx.Tx, stateID uuid.UUID, alerts []k.Envelope) error {
	incoming := make([]k.Envelope, 0, len(alerts))
	for _, e := range alerts {
		if e.Alert != nil {
			incoming = append(incoming, e)
		}
	}
	if len(incoming) == 0 {
		return nil
	}
	latest := latestByEventDate(incoming)

	var existingDate time.Time
	err := tx.QueryRow(ctx, `
		SELECT event_date FROM recent_alert WHERE state_id = $1 FOR UPDATE
	`, stateID).Scan(&existingDate)
	if err != nil && err != pgx.ErrNoRows {
		return fmt.Errorf("%w:%w", ErrSelectFailed, err)
	}
	if err == nil && !latest.EventDate.After(existingDate) {
		return nil
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO recent_alert (state_id, event_id, event_date, source, level, type, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (state_id) DO UPDATE SET
			event_id = EXCLUDED.event_id,
			event_date = EXCLUDED.event_date,
			source = EXCLUDED.source,
			level = EXCLUDED.level,
			type = EXCLUDED.type,
			message = EXCLUDED.message
	`, stateID, latest.EventID, latest.EventDate,
		latest.Alert.Source, latest.Alert.Level, latest.Alert.Type, latest.Alert.Message)
	if err != nil {
		return fmt.Errorf("%w:%w", ErrInsertFailed, err)
	}
	return nil
}

func mergeMeasurements(ctx context.Context, tx pgx.Tx, stateID uuid.UUID, measurements []k.Envelope) error {
	if len(measurements) == 0 {
		return nil
	}

	var existing []RecentMeasurement
	err := pgxscan.Select(ctx, tx, &existing, `
		SELECT state_id, name, event_date, value, max_value, max_value_date, min_value, min_value_date
		FROM recent_measurement
		WHERE state_id = $1
		FOR UPDATE
	`, stateID)
	if err != nil {
		return fmt.Errorf("%w:%w", ErrSelectFailed, err)
	}

	byName := make(map[string]*RecentMeasurement, len(existing))
	for i := range existing {
		byName[existing[i].Name] = &existing[i]
	}

	// Events are applied in window append order, not time order. The
	// current value tracks the last applied event; min/max only move on
	// strict improvement and keep the date of the event that set them.
	touched := make(map[string]*RecentMeasurement)
	for _, e := range measurements {
		m := e.Measurement
		if m == nil {
			continue
		}
		rec, ok := byName[m.Name]
		if !ok {
			rec = &RecentMeasurement{
				StateID:      stateID,
				Name:         m.Name,
				EventDate:    e.EventDate,
				Value:        m.Value,
				MaxValue:     m.Value,
				MaxValueDate: e.EventDate,
				MinValue:     m.Value,
				MinValueDate: e.EventDate,
			}
			byName[m.Name] = rec
			touched[m.Name] = rec
			continue
		}
		rec.Value = m.Value
		rec.EventDate = e.EventDate
		if m.Value > rec.MaxValue {
			rec.MaxValue = m.Value
			rec.MaxValueDate = e.EventDate
		}
		if m.Value < rec.MinValue {
			rec.MinValue = m.Value
			rec.MinValueDate = e.EventDate
		}
		touched[m.Name] = rec
	}

	for _, rec := range touched {
		_, err = tx.Exec(ctx, `
			INSERT INTO recent_measurement (
				state_id, name, event_date, value,
				max_value, max_value_date, min_value, min_value_date
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (state_id, name) DO UPDATE SET
				event_date = EXCLUDED.event_date,
				value = EXCLUDED.value,
				max_value = EXCLUDED.max_value,
				max_value_date = EXCLUDED.max_value_date,
				min_value = EXCLUDED.min_value,
				min_value_date = EXCLUDED.min_value_date
		`, rec.StateID, rec.Name, rec.EventDate, rec.Value,
			rec.MaxValue, rec.MaxValueDate, rec.MinValue, rec.MinValueDate)
		if err != nil {
			return fmt.Errorf("%w:%w", ErrInsertFailed, err)
		}
	}
	return nil
}
