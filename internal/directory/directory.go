// Package directory resolves device assignments and devices from the
// registration tables. The merge engine consumes it only on the create
// path, when an assignment produces events before any state exists.
package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrSelectFailed = errors.New("select operation failed")
)

type Assignment struct {
	ID       uuid.UUID `db:"id"`
	DeviceID uuid.UUID `db:"device_id"`
}

type Device struct {
	ID           uuid.UUID `db:"id"`
	Token        string    `db:"token"`
	DeviceTypeID uuid.UUID `db:"device_type_id"`
}

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) GetAssignment(ctx context.Context, assignmentID uuid.UUID) (*Assignment, error) {
	const fn = "Directory:GetAssignment"
	var a Assignment
	err := pgxscan.Get(ctx, s.pool, &a, `
		SELECT id, device_id FROM device_assignments WHERE id = $1
	`, assignmentID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return &a, nil
}

func (s *Store) GetDevice(ctx context.Context, deviceID uuid.UUID) (*Device, error) {
	const fn = "Directory:GetDevice"
	var d Device
	err := pgxscan.Get(ctx, s.pool, &d, `
		SELECT id, token, device_type_id FROM devices WHERE id = $1
	`, deviceID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return &d, nil
}
