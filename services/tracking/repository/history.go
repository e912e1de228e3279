package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openfleet/fleettrack/internal/pkg/database"
	"github.com/openfleet/fleettrack/internal/pkg/models"
	"github.com/openfleet/fleettrack/internal/utils"
	"github.com/openfleet/fleettrack/services/tracking"
)

type historyRepo struct {
	db *database.PostgresClient
}

// NewHistoryRepository creates a Postgres-backed location history archive
func NewHistoryRepository(db *database.PostgresClient) tracking.HistoryRepo {
	return &historyRepo{
		db: db,
	}
}

// StoreLocationHistory appends one fix to the vehicle's history
func (r *historyRepo) StoreLocationHistory(ctx context.Context, vehicleID string, location *models.Location) error {
	entry := models.LocationHistoryEntry{
		ID:         uuid.New().String(),
		VehicleID:  vehicleID,
		Latitude:   location.Latitude,
		Longitude:  location.Longitude,
		Address:    location.Address,
		Geohash:    utils.EncodeLocation(*location),
		RecordedAt: location.Timestamp,
	}

	query := `
		INSERT INTO location_history (id, vehicle_id, latitude, longitude, address, geohash, recorded_at)
		VALUES (:id, :vehicle_id, :latitude, :longitude, :address, :geohash, :recorded_at)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, entry)
	if err != nil {
		return fmt.Errorf("failed to store location history: %w", err)
	}

	return nil
}

// GetLocationHistory returns the vehicle's archived fixes within the time
// window, oldest first.
func (r *historyRepo) GetLocationHistory(ctx context.Context, vehicleID string, startTime, endTime time.Time) ([]*models.LocationHistoryEntry, error) {
	query := `
		SELECT id, vehicle_id, latitude, longitude, address, geohash, recorded_at
		FROM location_history
		WHERE vehicle_id = $1 AND recorded_at BETWEEN $2 AND $3
		ORDER BY recorded_at ASC`

	var entries []*models.LocationHistoryEntry
	err := r.db.GetDB().SelectContext(ctx, &entries, query, vehicleID, startTime, endTime)
	if err != nil {
		return nil, fmt.Errorf("failed to get location history: %w", err)
	}

	return entries, nil
}
