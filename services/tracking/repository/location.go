package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/openfleet/fleettrack/internal/pkg/constants"
	"github.com/openfleet/fleettrack/internal/pkg/database"
	"github.com/openfleet/fleettrack/internal/pkg/models"
	"github.com/openfleet/fleettrack/internal/utils"
	"github.com/openfleet/fleettrack/services/tracking"
)

const (
	// LocationTTL is how long a vehicle's live position is kept in Redis.
	// 24 hours covers seeding a watcher long after the vehicle went quiet.
	LocationTTL = 24 * time.Hour
)

type trackingRepo struct {
	redisClient *database.RedisClient
}

// NewTrackingRepository creates a Redis-backed live location store
func NewTrackingRepository(redisClient *database.RedisClient) tracking.TrackingRepo {
	return &trackingRepo{
		redisClient: redisClient,
	}
}

// UpdateVehicleLocation stores the vehicle's latest position in its location
// hash and refreshes its entry in the fleet geo set.
func (r *trackingRepo) UpdateVehicleLocation(ctx context.Context, vehicleID string, location *models.Location) error {
	locationKey := fmt.Sprintf(constants.KeyVehicleLocation, vehicleID)
	locationData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		constants.FieldAddress:   location.Address,
		constants.FieldGeohash:   utils.EncodeLocation(*location),
		constants.FieldUpdatedAt: strconv.FormatInt(location.Timestamp.Unix(), 10),
	}

	err := r.redisClient.HMSet(ctx, locationKey, locationData)
	if err != nil {
		return fmt.Errorf("failed to store vehicle location: %w", err)
	}

	err = r.redisClient.Expire(ctx, locationKey, LocationTTL)
	if err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	err = r.redisClient.GeoAdd(ctx, constants.KeyFleetGeo, location.Longitude, location.Latitude, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to update fleet geo set: %w", err)
	}

	return nil
}

// GetVehicleLocation gets the last stored position for a vehicle
func (r *trackingRepo) GetVehicleLocation(ctx context.Context, vehicleID string) (*models.Location, error) {
	locationKey := fmt.Sprintf(constants.KeyVehicleLocation, vehicleID)

	fields := []string{
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldAddress,
		constants.FieldUpdatedAt,
	}

	values, err := r.redisClient.HMGet(ctx, locationKey, fields...)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle location: %w", err)
	}

	hasValue := false
	for _, v := range values {
		if v != "" {
			hasValue = true
			break
		}
	}
	if !hasValue || len(values) != 4 {
		return nil, fmt.Errorf("vehicle %s: %w", vehicleID, tracking.ErrLocationNotFound)
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	ts, err := strconv.ParseInt(values[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.Location{
		Latitude:  lat,
		Longitude: lng,
		Address:   values[2],
		Timestamp: time.Unix(ts, 0).UTC(),
	}, nil
}

// GetNearbyVehicles finds vehicles within radiusKm of the given location,
// nearest first.
func (r *trackingRepo) GetNearbyVehicles(ctx context.Context, location *models.Location, radiusKm float64) ([]*models.VehicleLocation, error) {
	results, err := r.redisClient.GeoRadius(ctx, constants.KeyFleetGeo, location.Longitude, location.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby vehicles: %w", err)
	}

	vehicles := make([]*models.VehicleLocation, 0, len(results))
	for _, result := range results {
		vehicles = append(vehicles, &models.VehicleLocation{
			VehicleID: result.Name,
			Location: models.Location{
				Latitude:  result.Latitude,
				Longitude: result.Longitude,
			},
			DistanceKm: result.Dist,
		})
	}

	return vehicles, nil
}
