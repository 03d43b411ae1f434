package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"device-state-pipeline/internal/db"
)

func Test_GetDeviceState(t *testing.T) {
	assignmentID := uuid.New()
	stateID := uuid.New()
	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	state := &db.DeviceState{
		ID:                  stateID,
		DeviceID:            uuid.New(),
		DeviceTypeID:        uuid.New(),
		DeviceAssignmentID:  assignmentID,
		LastInteractionDate: when,
		RecentLocation: &db.RecentLocation{
			StateID:   stateID,
			EventID:   uuid.New(),
			EventDate: when,
			Latitude:  33.75,
			Longitude: -84.39,
		},
		RecentMeasurements: []db.RecentMeasurement{{
			StateID:      stateID,
			Name:         "engine.temp",
			EventDate:    when,
			Value:        18,
			MaxValue:     25,
			MaxValueDate: when.Add(-time.Second),
			MinValue:     10,
			MinValueDate: when.Add(-2 * time.Second),
		}},
	}

	tests := []struct {
		name         string
		assignmentID string
		setupMock    func(m *Mockrepository)
		wantStatus   int
	}{
		{
			name:         "returns state",
			assignmentID: assignmentID.String(),
			setupMock: func(m *Mockrepository) {
				m.EXPECT().GetStateByAssignment(mock.Anything, assignmentID).Return(state, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "invalid assignment id",
			assignmentID: "not-a-uuid",
			setupMock:    func(m *Mockrepository) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "state not found",
			assignmentID: assignmentID.String(),
			setupMock: func(m *Mockrepository) {
				m.EXPECT().GetStateByAssignment(mock.Anything, assignmentID).
					Return(nil, db.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:         "store failure",
			assignmentID: assignmentID.String(),
			setupMock: func(m *Mockrepository) {
				m.EXPECT().GetStateByAssignment(mock.Anything, assignmentID).
					Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states := NewMockrepository(t)
			tt.setupMock(states)
			router := New(Config{States: states}).Router()

			req := httptest.NewRequest(http.MethodGet, "/api/devices/"+tt.assignmentID+"/state", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp GetDeviceStateResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, stateID.String(), resp.ID)
			assert.Equal(t, assignmentID.String(), resp.DeviceAssignmentID)
			assert.Nil(t, resp.CustomerID)
			assert.NotNil(t, resp.RecentLocation)
			assert.Equal(t, 33.75, resp.RecentLocation.Latitude)
			assert.Len(t, resp.RecentMeasurements, 1)
			assert.Equal(t, float64(18), resp.RecentMeasurements[0].Value)
			assert.Equal(t, float64(25), resp.RecentMeasurements[0].MaxValue)
			assert.Equal(t, float64(10), resp.RecentMeasurements[0].MinValue)
			assert.Nil(t, resp.RecentAlert)
		})
	}
}

func Test_Health(t *testing.T) {
	router := New(Config{States: NewMockrepository(t)}).Router()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
