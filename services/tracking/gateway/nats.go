package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openfleet/fleettrack/internal/pkg/constants"
	"github.com/openfleet/fleettrack/internal/pkg/models"
	natspkg "github.com/openfleet/fleettrack/internal/pkg/nats"
	"github.com/openfleet/fleettrack/internal/pkg/nsq"
	"github.com/openfleet/fleettrack/services/tracking"
)

type trackingGW struct {
	natsClient *natspkg.Client
	producer   *nsq.Producer
}

// NewTrackingGW creates a new tracking gateway
func NewTrackingGW(natsClient *natspkg.Client, producer *nsq.Producer) tracking.TrackingGW {
	return &trackingGW{
		natsClient: natsClient,
		producer:   producer,
	}
}

// PublishLocationUpdate publishes a change event on the vehicle's location
// subject. The payload is the row-change shape that watchers decode: a type
// plus a generic record map, so schema additions never break old consumers.
func (g *trackingGW) PublishLocationUpdate(ctx context.Context, update *models.LocationUpdate) error {
	event := map[string]interface{}{
		"type": "update",
		"record": map[string]interface{}{
			"event_id":             update.EventID,
			"vehicle_id":           update.VehicleID,
			"latitude":             update.Location.Latitude,
			"longitude":            update.Location.Longitude,
			"address":              update.Location.Address,
			"last_location_update": models.FormatTime(update.Location.Timestamp),
		},
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal location update: %w", err)
	}

	subject := fmt.Sprintf(constants.SubjectVehicleLocation, update.VehicleID)
	return g.natsClient.Publish(subject, data)
}

// EnqueueHistory hands the update to NSQ for asynchronous archival
func (g *trackingGW) EnqueueHistory(ctx context.Context, update *models.LocationUpdate) error {
	if err := g.producer.Publish(constants.TopicLocationHistory, update); err != nil {
		return fmt.Errorf("failed to enqueue location history: %w", err)
	}
	return nil
}
