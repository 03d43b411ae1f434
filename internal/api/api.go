package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"device-state-pipeline/internal/db"
)

type repository interface {
	GetStateByAssignment(ctx context.Context, assignmentID uuid.UUID) (*db.DeviceState, error)
}

type Config struct {
	States repository
}

type API struct {
	states repository
}

func New(cfg Config) *API {
	return &API{states: cfg.States}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/api/devices/{assignmentID}/state", a.GetDeviceState)
	return r
}

func (a *API) GetDeviceState(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := uuid.Parse(chi.URLParam(r, "assignmentID"))
	if err != nil {
		http.Error(w, "invalid assignment id", http.StatusBadRequest)
		return
	}

	state, err := a.states.GetStateByAssignment(r.Context(), assignmentID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "device state not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toResponse(state))
}

func toResponse(state *db.DeviceState) GetDeviceStateResponse {
	resp := GetDeviceStateResponse{
		ID:                  state.ID.String(),
		DeviceID:            state.DeviceID.String(),
		DeviceTypeID:        state.DeviceTypeID.String(),
		DeviceAssignmentID:  state.DeviceAssignmentID.String(),
		CustomerID:          uuidString(state.CustomerID),
		AreaID:              uuidString(state.AreaID),
		AssetID:             uuidString(state.AssetID),
		LastInteractionDate: state.LastInteractionDate.Format(time.RFC3339),
	}
	if state.PresenceMissingDate != nil {
		s := state.PresenceMissingDate.Format(time.RFC3339)
		resp.PresenceMissingDate = &s
	}
	if loc := state.RecentLocation; loc != nil {
		resp.RecentLocation = &LocationRecord{
			EventID:   loc.EventID.String(),
			EventDate: loc.EventDate.Format(time.RFC3339),
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
			Elevation: loc.Elevation,
		}
	}
	for _, mx := range state.RecentMeasurements {
		resp.RecentMeasurements = append(resp.RecentMeasurements, MeasurementRecord{
			Name:         mx.Name,
			EventDate:    mx.EventDate.Format(time.RFC3339),
			Value:        mx.Value,
			MaxValue:     mx.MaxValue,
			MaxValueDate: mx.MaxValueDate.Format(time.RFC3339),
			MinValue:     mx.MinValue,
			MinValueDate: mx.MinValueDate.Format(time.RFC3339),
		})
	}
	if alert := state.RecentAlert; alert != nil {
		resp.RecentAlert = &AlertRecord{
			EventID:   alert.EventID.String(),
			EventDate: alert.EventDate.Format(time.RFC3339),
			Source:    alert.Source,
			Level:     alert.Level,
			Type:      alert.Type,
			Message:   alert.Message,
		}
	}
	return resp
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
