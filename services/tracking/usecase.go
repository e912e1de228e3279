package tracking

import (
	"context"
	"time"

	"github.com/openfleet/fleettrack/internal/pkg/models"
	"github.com/openfleet/fleettrack/services/tracking/provider"
)

// TrackingUC defines the interface for tracking business logic
type TrackingUC interface {
	// Vehicle location operations
	UpdateVehicleLocation(ctx context.Context, vehicleID string, location *models.Location) error
	GetVehicleLocation(ctx context.Context, vehicleID string) (*models.Location, provider.Status, error)
	GetNearbyVehicles(ctx context.Context, location *models.Location, radiusKm float64) ([]*models.VehicleLocation, error)

	// Location history operations
	GetLocationHistory(ctx context.Context, vehicleID string, startTime, endTime time.Time) ([]*models.LocationHistoryEntry, error)
	ArchiveLocationUpdate(ctx context.Context, update *models.LocationUpdate) error

	// Trip metric operations
	EstimateArrival(ctx context.Context, vehicleID string, destination models.Coordinate) (*provider.DerivedMetrics, error)
}
