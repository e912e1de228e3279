package websocket

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/openfleet/fleettrack/internal/pkg/constants"
	"github.com/openfleet/fleettrack/internal/pkg/logger"
	"github.com/openfleet/fleettrack/internal/pkg/models"
	"github.com/openfleet/fleettrack/services/tracking/provider"
)

// HandleWatchConnection serves the watch socket for one vehicle. A remote
// provider is created per connection, seeded from the vehicle's last stored
// position, and every snapshot it emits is pushed to the client as a
// tracking_snapshot frame.
func (h *WebSocketHandler) HandleWatchConnection(c echo.Context) error {
	vehicleID := c.Param("id")

	return h.manager.HandleConnection(c, func(client *models.WebSocketClient, conn *websocket.Conn) error {
		return h.handleWatchClient(client, conn, vehicleID)
	})
}

func (h *WebSocketHandler) handleWatchClient(client *models.WebSocketClient, conn *websocket.Conn, vehicleID string) error {
	if vehicleID == "" {
		return h.manager.SendErrorMessage(client, conn, constants.ErrCodeInvalidPayload, "vehicle_id is required")
	}

	logger.Info("Watcher connected",
		logger.String("user_id", client.UserID),
		logger.String("vehicle_id", vehicleID))

	seed, _, err := h.trackingUC.GetVehicleLocation(context.Background(), vehicleID)
	if err != nil {
		logger.Warn("Failed to seed watch provider",
			logger.String("vehicle_id", vehicleID),
			logger.Err(err))
	}

	watchProvider := provider.NewRemoteProvider(vehicleID, provider.NewNATSChannel(h.natsClient), provider.RemoteConfig{
		Seed:           seed,
		StaleThreshold: h.staleThreshold(),
		CheckInterval:  h.checkInterval(),
	})

	unsubscribe := watchProvider.Subscribe(func(snap provider.Snapshot) {
		if err := h.manager.SendMessage(client, conn, constants.EventTrackingSnapshot, snap); err != nil {
			logger.Debug("Failed to push tracking snapshot",
				logger.String("vehicle_id", vehicleID),
				logger.Err(err))
		}
	})
	defer unsubscribe()

	if err := watchProvider.StartTracking(); err != nil {
		logger.Error("Failed to start watch provider",
			logger.String("vehicle_id", vehicleID),
			logger.Err(err))
		return h.manager.SendErrorMessage(client, conn, constants.ErrCodeInternal, "tracking unavailable")
	}
	defer watchProvider.StopTracking()

	// initial frame so the client renders the seed state without waiting
	// for the first live event
	if err := h.manager.SendMessage(client, conn, constants.EventTrackingSnapshot, snapshotOf(watchProvider)); err != nil {
		return err
	}

	// the read loop only services pings and detects disconnect; watchers
	// never push state
	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return nil
		}
		if msg.Event == constants.EventPing {
			if err := h.manager.SendMessage(client, conn, constants.EventPong, nil); err != nil {
				return nil
			}
		}
	}
}

func snapshotOf(p provider.LocationProvider) provider.Snapshot {
	heading, hasHeading := p.Heading()
	return provider.Snapshot{
		Location:   p.CurrentLocation(),
		Heading:    heading,
		HasHeading: hasHeading,
		Status:     p.Status(),
		Updating:   p.IsUpdating(),
	}
}

func (h *WebSocketHandler) staleThreshold() time.Duration {
	if h.cfg.Tracking.StaleThresholdSeconds > 0 {
		return time.Duration(h.cfg.Tracking.StaleThresholdSeconds) * time.Second
	}
	return provider.DefaultStaleThreshold
}

func (h *WebSocketHandler) checkInterval() time.Duration {
	if h.cfg.Tracking.CheckIntervalSeconds > 0 {
		return time.Duration(h.cfg.Tracking.CheckIntervalSeconds) * time.Second
	}
	return provider.DefaultCheckInterval
}
