package api

type LocationRecord struct {
	EventID   string   `json:"eventID"`
	EventDate string   `json:"eventDate"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Elevation *float64 `json:"elevation,omitempty"`
}

type MeasurementRecord struct {
	Name         string  `json:"name"`
	EventDate    string  `json:"eventDate"`
	Value        float64 `json:"value"`
	MaxValue     float64 `json:"maxValue"`
	MaxValueDate string  `json:"maxValueDate"`
	MinValue     float64 `json:"minValue"`
	MinValueDate string  `json:"minValueDate"`
}

type AlertRecord struct {
	EventID   string `json:"eventID"`
	EventDate string `json:"eventDate"`
	Source    string `json:"source"`
	Level     string `json:"level"`
	Type      string `json:"type"`
	Message   string `json:"message"`
}

type GetDeviceStateResponse struct {
	ID                  string              `json:"id"`
	DeviceID            string              `json:"deviceID"`
	DeviceTypeID        string              `json:"deviceTypeID"`
	DeviceAssignmentID  string              `json:"deviceAssignmentID"`
	CustomerID          *string             `json:"customerID,omitempty"`
	AreaID              *string             `json:"areaID,omitempty"`
	AssetID             *string             `json:"assetID,omitempty"`
	LastInteractionDate string              `json:"lastInteractionDate"`
	PresenceMissingDate *string             `json:"presenceMissingDate,omitempty"`
	RecentLocation      *LocationRecord     `json:"recentLocation,omitempty"`
	RecentMeasurements  []MeasurementRecord `json:"recentMeasurements,omitempty"`
	RecentAlert         *AlertRecord        `json:"recentAlert,omitempty"`
}
