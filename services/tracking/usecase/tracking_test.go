package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfleet/fleettrack/internal/pkg/models"
	"github.com/openfleet/fleettrack/services/tracking"
	"github.com/openfleet/fleettrack/services/tracking/mocks"
	"github.com/openfleet/fleettrack/services/tracking/provider"
)

func newTestUC(t *testing.T) (*TrackingUC, *mocks.MockTrackingRepo, *mocks.MockHistoryRepo, *mocks.MockTrackingGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockTrackingRepo(ctrl)
	mockHistory := mocks.NewMockHistoryRepo(ctrl)
	mockGW := mocks.NewMockTrackingGW(ctrl)

	cfg := &models.Config{}
	cfg.Tracking.StaleThresholdSeconds = 300

	uc := NewTrackingUC(cfg, mockRepo, mockHistory, mockGW).(*TrackingUC)
	return uc, mockRepo, mockHistory, mockGW
}

func TestUpdateVehicleLocation_Success(t *testing.T) {
	uc, mockRepo, _, mockGW := newTestUC(t)

	ctx := context.Background()
	vehicleID := "vehicle-123"
	timestamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	location := &models.Location{
		Latitude:  -6.175392,
		Longitude: 106.827153,
		Address:   "Monas",
		Timestamp: timestamp,
	}

	mockRepo.EXPECT().
		UpdateVehicleLocation(gomock.Any(), vehicleID, location).
		Return(nil)

	var published *models.LocationUpdate
	mockGW.EXPECT().
		PublishLocationUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update *models.LocationUpdate) error {
			published = update
			return nil
		})

	mockGW.EXPECT().
		EnqueueHistory(gomock.Any(), gomock.Any()).
		Return(nil)

	err := uc.UpdateVehicleLocation(ctx, vehicleID, location)

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.NotEmpty(t, published.EventID)
	assert.Equal(t, vehicleID, published.VehicleID)
	assert.Equal(t, *location, published.Location)
}

func TestUpdateVehicleLocation_DefaultsTimestamp(t *testing.T) {
	uc, mockRepo, _, mockGW := newTestUC(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	location := &models.Location{Latitude: 1, Longitude: 2}

	mockRepo.EXPECT().UpdateVehicleLocation(gomock.Any(), "vehicle-123", gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().EnqueueHistory(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.UpdateVehicleLocation(context.Background(), "vehicle-123", location)

	require.NoError(t, err)
	assert.True(t, location.Timestamp.Equal(now))
}

func TestUpdateVehicleLocation_ValidationErrors(t *testing.T) {
	uc, _, _, _ := newTestUC(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		vehicleID string
		location  *models.Location
	}{
		{"Empty vehicle ID", "", &models.Location{Latitude: 1, Longitude: 2}},
		{"Nil location", "vehicle-123", nil},
		{"Latitude too large", "vehicle-123", &models.Location{Latitude: 91, Longitude: 2}},
		{"Latitude too small", "vehicle-123", &models.Location{Latitude: -91, Longitude: 2}},
		{"Longitude too large", "vehicle-123", &models.Location{Latitude: 1, Longitude: 181}},
		{"Longitude too small", "vehicle-123", &models.Location{Latitude: 1, Longitude: -181}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.UpdateVehicleLocation(ctx, tt.vehicleID, tt.location)
			assert.Error(t, err)
		})
	}
}

func TestUpdateVehicleLocation_HistoryFailureDoesNotBlock(t *testing.T) {
	uc, mockRepo, _, mockGW := newTestUC(t)

	location := &models.Location{Latitude: 1, Longitude: 2, Timestamp: time.Now()}

	mockRepo.EXPECT().UpdateVehicleLocation(gomock.Any(), "vehicle-123", location).Return(nil)
	mockGW.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().EnqueueHistory(gomock.Any(), gomock.Any()).Return(errors.New("nsqd unreachable"))

	err := uc.UpdateVehicleLocation(context.Background(), "vehicle-123", location)

	assert.NoError(t, err)
}

func TestUpdateVehicleLocation_PublishFailure(t *testing.T) {
	uc, mockRepo, _, mockGW := newTestUC(t)

	location := &models.Location{Latitude: 1, Longitude: 2, Timestamp: time.Now()}

	mockRepo.EXPECT().UpdateVehicleLocation(gomock.Any(), "vehicle-123", location).Return(nil)
	mockGW.EXPECT().PublishLocationUpdate(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	err := uc.UpdateVehicleLocation(context.Background(), "vehicle-123", location)

	assert.Error(t, err)
}

func TestGetVehicleLocation(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }
	ctx := context.Background()

	t.Run("Fresh position is active", func(t *testing.T) {
		location := &models.Location{Latitude: 1, Longitude: 2, Timestamp: now.Add(-time.Minute)}
		mockRepo.EXPECT().GetVehicleLocation(gomock.Any(), "vehicle-123").Return(location, nil)

		got, status, err := uc.GetVehicleLocation(ctx, "vehicle-123")

		require.NoError(t, err)
		assert.Equal(t, location, got)
		assert.Equal(t, provider.Active(), status)
	})

	t.Run("Aged position is stale", func(t *testing.T) {
		lastFix := now.Add(-10 * time.Minute)
		location := &models.Location{Latitude: 1, Longitude: 2, Timestamp: lastFix}
		mockRepo.EXPECT().GetVehicleLocation(gomock.Any(), "vehicle-123").Return(location, nil)

		_, status, err := uc.GetVehicleLocation(ctx, "vehicle-123")

		require.NoError(t, err)
		assert.Equal(t, provider.StateStale, status.State)
		assert.True(t, status.StaleSince.Equal(lastFix))
	})

	t.Run("Unknown vehicle is offline", func(t *testing.T) {
		mockRepo.EXPECT().GetVehicleLocation(gomock.Any(), "vehicle-404").
			Return(nil, fmt.Errorf("vehicle vehicle-404: %w", tracking.ErrLocationNotFound))

		got, status, err := uc.GetVehicleLocation(ctx, "vehicle-404")

		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, provider.Offline(), status)
	})

	t.Run("Store outage surfaces as error", func(t *testing.T) {
		mockRepo.EXPECT().GetVehicleLocation(gomock.Any(), "vehicle-123").
			Return(nil, errors.New("redis: connection refused"))

		got, _, err := uc.GetVehicleLocation(ctx, "vehicle-123")

		require.Error(t, err)
		assert.Nil(t, got)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("Empty vehicle ID", func(t *testing.T) {
		_, _, err := uc.GetVehicleLocation(ctx, "")
		assert.Error(t, err)
	})
}

func TestGetNearbyVehicles(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)
	ctx := context.Background()
	origin := &models.Location{Latitude: -6.2, Longitude: 106.8}

	t.Run("Success", func(t *testing.T) {
		expected := []*models.VehicleLocation{
			{VehicleID: "vehicle-1", DistanceKm: 0.8},
		}
		mockRepo.EXPECT().GetNearbyVehicles(gomock.Any(), origin, 5.0).Return(expected, nil)

		vehicles, err := uc.GetNearbyVehicles(ctx, origin, 5.0)

		require.NoError(t, err)
		assert.Equal(t, expected, vehicles)
	})

	t.Run("Non-positive radius", func(t *testing.T) {
		_, err := uc.GetNearbyVehicles(ctx, origin, 0)
		assert.Error(t, err)
	})

	t.Run("Invalid origin", func(t *testing.T) {
		_, err := uc.GetNearbyVehicles(ctx, &models.Location{Latitude: 92}, 5.0)
		assert.Error(t, err)
	})
}

func TestGetLocationHistory(t *testing.T) {
	uc, _, mockHistory, _ := newTestUC(t)
	ctx := context.Background()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	t.Run("Success", func(t *testing.T) {
		expected := []*models.LocationHistoryEntry{
			{ID: "entry-1", VehicleID: "vehicle-123"},
		}
		mockHistory.EXPECT().GetLocationHistory(gomock.Any(), "vehicle-123", start, end).Return(expected, nil)

		entries, err := uc.GetLocationHistory(ctx, "vehicle-123", start, end)

		require.NoError(t, err)
		assert.Equal(t, expected, entries)
	})

	t.Run("Inverted window", func(t *testing.T) {
		_, err := uc.GetLocationHistory(ctx, "vehicle-123", end, start)
		assert.Error(t, err)
	})

	t.Run("Empty vehicle ID", func(t *testing.T) {
		_, err := uc.GetLocationHistory(ctx, "", start, end)
		assert.Error(t, err)
	})
}

func TestArchiveLocationUpdate(t *testing.T) {
	uc, _, mockHistory, _ := newTestUC(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		update := &models.LocationUpdate{
			EventID:   "event-1",
			VehicleID: "vehicle-123",
			Location:  models.Location{Latitude: 1, Longitude: 2, Timestamp: time.Now()},
		}
		mockHistory.EXPECT().
			StoreLocationHistory(gomock.Any(), "vehicle-123", gomock.Any()).
			Return(nil)

		assert.NoError(t, uc.ArchiveLocationUpdate(ctx, update))
	})

	t.Run("Nil update", func(t *testing.T) {
		assert.Error(t, uc.ArchiveLocationUpdate(ctx, nil))
	})

	t.Run("Invalid coordinates", func(t *testing.T) {
		update := &models.LocationUpdate{
			VehicleID: "vehicle-123",
			Location:  models.Location{Latitude: 120, Longitude: 2},
		}
		assert.Error(t, uc.ArchiveLocationUpdate(ctx, update))
	})
}

func TestEstimateArrival(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		current := &models.Location{Latitude: 0, Longitude: 0, Timestamp: now}
		mockRepo.EXPECT().GetVehicleLocation(gomock.Any(), "vehicle-123").Return(current, nil)

		metrics, err := uc.EstimateArrival(ctx, "vehicle-123", models.Coordinate{Latitude: 1, Longitude: 0})

		require.NoError(t, err)
		assert.InDelta(t, 144560, metrics.RemainingDistanceMeters, 300)
		assert.True(t, metrics.ETA.After(now))
	})

	t.Run("No known location", func(t *testing.T) {
		mockRepo.EXPECT().GetVehicleLocation(gomock.Any(), "vehicle-404").Return(nil, errors.New("not found"))

		_, err := uc.EstimateArrival(ctx, "vehicle-404", models.Coordinate{Latitude: 1, Longitude: 0})
		assert.Error(t, err)
	})

	t.Run("Invalid destination", func(t *testing.T) {
		_, err := uc.EstimateArrival(ctx, "vehicle-123", models.Coordinate{Latitude: 99, Longitude: 0})
		assert.Error(t, err)
	})
}
