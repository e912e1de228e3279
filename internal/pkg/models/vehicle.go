package models

import "time"

// VehicleLocation pairs a vehicle with its last known position. DistanceKm is
// populated only by nearby queries.
type VehicleLocation struct {
	VehicleID  string   `json:"vehicle_id"`
	Location   Location `json:"location"`
	DistanceKm float64  `json:"distance_km,omitempty"`
}

// LocationHistoryEntry is one archived fix in the location_history table.
type LocationHistoryEntry struct {
	ID         string    `json:"id" db:"id"`
	VehicleID  string    `json:"vehicle_id" db:"vehicle_id"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Address    string    `json:"address,omitempty" db:"address"`
	Geohash    string    `json:"geohash,omitempty" db:"geohash"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}
