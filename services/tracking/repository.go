package tracking

import (
	"context"
	"errors"
	"time"

	"github.com/openfleet/fleettrack/internal/pkg/models"
)

// ErrLocationNotFound is returned by TrackingRepo.GetVehicleLocation when no
// position has ever been stored for the vehicle. Callers distinguish it from
// a store outage with errors.Is.
var ErrLocationNotFound = errors.New("vehicle location not found")

// TrackingRepo defines the interface for live vehicle location storage
type TrackingRepo interface {
	UpdateVehicleLocation(ctx context.Context, vehicleID string, location *models.Location) error
	GetVehicleLocation(ctx context.Context, vehicleID string) (*models.Location, error)
	GetNearbyVehicles(ctx context.Context, location *models.Location, radiusKm float64) ([]*models.VehicleLocation, error)
}

// HistoryRepo defines the interface for the location history archive
type HistoryRepo interface {
	StoreLocationHistory(ctx context.Context, vehicleID string, location *models.Location) error
	GetLocationHistory(ctx context.Context, vehicleID string, startTime, endTime time.Time) ([]*models.LocationHistoryEntry, error)
}
