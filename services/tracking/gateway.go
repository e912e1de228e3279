package tracking

import (
	"context"

	"github.com/openfleet/fleettrack/internal/pkg/models"
)

// TrackingGW defines the interface for tracking gateway operations
type TrackingGW interface {
	// PublishLocationUpdate publishes a location change event to NATS for
	// live watchers
	PublishLocationUpdate(ctx context.Context, update *models.LocationUpdate) error

	// EnqueueHistory enqueues a location update on NSQ for asynchronous
	// archival
	EnqueueHistory(ctx context.Context, update *models.LocationUpdate) error
}
