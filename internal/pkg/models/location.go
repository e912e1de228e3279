package models

import "time"

// Location is an immutable snapshot of a tracked position. A new value is
// constructed for every fix; there is no identity beyond field equality.
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address   string    `json:"address,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Coordinate is a bare latitude/longitude pair, used for destinations and
// query origins where no address or capture time exists.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Fix is a raw reading from a local positioning sensor. Course is the
// direction of travel in degrees; a negative value means the sensor could not
// determine one.
type Fix struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Course    float64   `json:"course"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationUpdate is the envelope published on the realtime channel and the
// archival pipeline whenever a vehicle fix is accepted.
type LocationUpdate struct {
	EventID   string    `json:"event_id"`
	VehicleID string    `json:"vehicle_id"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
