package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfleet/fleettrack/internal/pkg/models"
	"github.com/openfleet/fleettrack/services/tracking/mocks"
)

func newTestArchiver(t *testing.T) (*Archiver, *mocks.MockTrackingUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockTrackingUC(ctrl)
	archiver := NewArchiver(mockUC, models.NSQConfig{Address: "127.0.0.1:4150"}, nil)
	return archiver, mockUC
}

func TestArchiver_HandleMessage(t *testing.T) {
	archiver, mockUC := newTestArchiver(t)

	update := models.LocationUpdate{
		EventID:   "event-1",
		VehicleID: "vehicle-123",
		Location: models.Location{
			Latitude:  -6.175392,
			Longitude: 106.827153,
			Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	body, err := json.Marshal(update)
	require.NoError(t, err)

	mockUC.EXPECT().
		ArchiveLocationUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got *models.LocationUpdate) error {
			assert.Equal(t, "vehicle-123", got.VehicleID)
			assert.Equal(t, "event-1", got.EventID)
			return nil
		})

	assert.NoError(t, archiver.handleMessage(body))
}

func TestArchiver_MalformedMessageIsDropped(t *testing.T) {
	archiver, _ := newTestArchiver(t)

	// nil error keeps NSQ from requeueing a message that can never parse
	assert.NoError(t, archiver.handleMessage([]byte("not json")))
}

func TestArchiver_RetriesBeforeRequeue(t *testing.T) {
	archiver, mockUC := newTestArchiver(t)

	update := models.LocationUpdate{
		VehicleID: "vehicle-123",
		Location:  models.Location{Latitude: 1, Longitude: 2},
	}
	body, err := json.Marshal(update)
	require.NoError(t, err)

	mockUC.EXPECT().
		ArchiveLocationUpdate(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused")).
		Times(4) // initial attempt plus three retries

	assert.Error(t, archiver.handleMessage(body))
}
