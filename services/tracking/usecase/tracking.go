package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openfleet/fleettrack/internal/pkg/logger"
	"github.com/openfleet/fleettrack/internal/pkg/models"
	"github.com/openfleet/fleettrack/services/tracking"
	"github.com/openfleet/fleettrack/services/tracking/provider"
)

// TrackingUC implements the tracking.TrackingUC interface
type TrackingUC struct {
	cfg         *models.Config
	repo        tracking.TrackingRepo
	historyRepo tracking.HistoryRepo
	gw          tracking.TrackingGW
	now         func() time.Time
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(
	cfg *models.Config,
	repo tracking.TrackingRepo,
	historyRepo tracking.HistoryRepo,
	gw tracking.TrackingGW,
) tracking.TrackingUC {
	return &TrackingUC{
		cfg:         cfg,
		repo:        repo,
		historyRepo: historyRepo,
		gw:          gw,
		now:         models.Now,
	}
}

// UpdateVehicleLocation accepts a vehicle fix: it validates and stores the
// position, fans it out to live watchers over NATS and enqueues it for
// archival. The archival enqueue is best effort; a broker outage must not
// block the live feed.
func (uc *TrackingUC) UpdateVehicleLocation(ctx context.Context, vehicleID string, location *models.Location) error {
	if vehicleID == "" {
		return errors.New("vehicle ID cannot be empty")
	}
	if err := validateLocationData(location); err != nil {
		return err
	}

	if location.Timestamp.IsZero() {
		location.Timestamp = uc.now()
	}

	if err := uc.repo.UpdateVehicleLocation(ctx, vehicleID, location); err != nil {
		return fmt.Errorf("failed to update vehicle location: %w", err)
	}

	update := &models.LocationUpdate{
		EventID:   uuid.New().String(),
		VehicleID: vehicleID,
		Location:  *location,
		CreatedAt: uc.now(),
	}

	if err := uc.gw.PublishLocationUpdate(ctx, update); err != nil {
		return fmt.Errorf("failed to publish location update: %w", err)
	}

	if err := uc.gw.EnqueueHistory(ctx, update); err != nil {
		logger.Warn("Failed to enqueue location history",
			logger.String("vehicle_id", vehicleID),
			logger.Err(err))
	}

	return nil
}

// GetVehicleLocation returns the vehicle's last stored position along with a
// freshness status evaluated against the stale threshold. A vehicle with no
// stored position reports Offline with no error; store failures propagate so
// an outage is not mistaken for an unknown vehicle.
func (uc *TrackingUC) GetVehicleLocation(ctx context.Context, vehicleID string) (*models.Location, provider.Status, error) {
	if vehicleID == "" {
		return nil, provider.Offline(), errors.New("vehicle ID cannot be empty")
	}

	location, err := uc.repo.GetVehicleLocation(ctx, vehicleID)
	if errors.Is(err, tracking.ErrLocationNotFound) {
		return nil, provider.Offline(), nil
	}
	if err != nil {
		return nil, provider.Offline(), fmt.Errorf("failed to get vehicle location: %w", err)
	}

	status := provider.Freshness(uc.now(), location.Timestamp, uc.staleThreshold())
	return location, status, nil
}

// GetNearbyVehicles finds vehicles within radiusKm of the given location
func (uc *TrackingUC) GetNearbyVehicles(ctx context.Context, location *models.Location, radiusKm float64) ([]*models.VehicleLocation, error) {
	if err := validateLocationData(location); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		return nil, errors.New("radius must be positive")
	}

	return uc.repo.GetNearbyVehicles(ctx, location, radiusKm)
}

// GetLocationHistory returns the vehicle's archived fixes within the window
func (uc *TrackingUC) GetLocationHistory(ctx context.Context, vehicleID string, startTime, endTime time.Time) ([]*models.LocationHistoryEntry, error) {
	if vehicleID == "" {
		return nil, errors.New("vehicle ID cannot be empty")
	}
	if endTime.Before(startTime) {
		return nil, errors.New("end time must not precede start time")
	}

	return uc.historyRepo.GetLocationHistory(ctx, vehicleID, startTime, endTime)
}

// ArchiveLocationUpdate persists one dequeued update into the history table.
// Called by the NSQ archiver worker.
func (uc *TrackingUC) ArchiveLocationUpdate(ctx context.Context, update *models.LocationUpdate) error {
	if update == nil || update.VehicleID == "" {
		return errors.New("invalid location update")
	}

	location := update.Location
	if err := validateLocationData(&location); err != nil {
		return err
	}

	return uc.historyRepo.StoreLocationHistory(ctx, update.VehicleID, &location)
}

// EstimateArrival derives remaining distance and ETA from the vehicle's last
// known position to the destination.
func (uc *TrackingUC) EstimateArrival(ctx context.Context, vehicleID string, destination models.Coordinate) (*provider.DerivedMetrics, error) {
	if destination.Latitude < -90 || destination.Latitude > 90 {
		return nil, errors.New("latitude must be between -90 and 90")
	}
	if destination.Longitude < -180 || destination.Longitude > 180 {
		return nil, errors.New("longitude must be between -180 and 180")
	}

	location, err := uc.repo.GetVehicleLocation(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("no known location for vehicle %s: %w", vehicleID, err)
	}

	metrics := provider.ComputeMetrics(*location, destination, uc.now())
	return &metrics, nil
}

func (uc *TrackingUC) staleThreshold() time.Duration {
	if uc.cfg != nil && uc.cfg.Tracking.StaleThresholdSeconds > 0 {
		return time.Duration(uc.cfg.Tracking.StaleThresholdSeconds) * time.Second
	}
	return provider.DefaultStaleThreshold
}

func validateLocationData(location *models.Location) error {
	if location == nil {
		return errors.New("location cannot be nil")
	}

	// Validate latitude (between -90 and 90)
	if location.Latitude < -90 || location.Latitude > 90 {
		return errors.New("latitude must be between -90 and 90")
	}

	// Validate longitude (between -180 and 180)
	if location.Longitude < -180 || location.Longitude > 180 {
		return errors.New("longitude must be between -180 and 180")
	}

	return nil
}
