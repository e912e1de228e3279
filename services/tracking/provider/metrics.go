package provider

import (
	"fmt"
	"time"

	"github.com/openfleet/fleettrack/internal/pkg/models"
	"github.com/openfleet/fleettrack/internal/utils"
)

const (
	// RoadCorrectionFactor scales straight-line distance to an estimated
	// road distance
	RoadCorrectionFactor = 1.3

	// AverageSpeedMPS is the assumed travel speed in meters per second,
	// roughly 40 km/h
	AverageSpeedMPS = 11.1
)

// DerivedMetrics are the trip figures computed from the current position and
// the destination.
type DerivedMetrics struct {
	RemainingDistanceMeters float64   `json:"remaining_distance_meters"`
	ETA                     time.Time `json:"eta"`
	FormattedETA            string    `json:"formatted_eta"`
}

// ComputeMetrics derives the remaining road distance and arrival time for a
// trip from current to destination, as of now. The distance is the haversine
// great-circle distance scaled by the road correction factor; the ETA
// assumes a constant average speed.
func ComputeMetrics(current models.Location, destination models.Coordinate, now time.Time) DerivedMetrics {
	straightKm := utils.CalculateDistance(
		utils.GeoPoint{Latitude: current.Latitude, Longitude: current.Longitude},
		utils.GeoPoint{Latitude: destination.Latitude, Longitude: destination.Longitude},
	)
	meters := straightKm * 1000 * RoadCorrectionFactor
	travel := time.Duration(meters / AverageSpeedMPS * float64(time.Second))

	return DerivedMetrics{
		RemainingDistanceMeters: meters,
		ETA:                     now.Add(travel),
		FormattedETA:            FormatETA(travel),
	}
}

// FormatETA renders a travel duration for display, e.g. "3h 37m" or "12m"
func FormatETA(travel time.Duration) string {
	if travel < time.Minute {
		return "<1m"
	}
	hours := int(travel.Hours())
	minutes := int(travel.Minutes()) % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
