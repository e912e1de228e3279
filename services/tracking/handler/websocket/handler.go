// Package websocket carries the two realtime sockets of the tracking
// service: the driver ingest socket that accepts fixes, and the watch socket
// that streams one vehicle's tracking snapshots to a fleet manager.
package websocket

import (
	"github.com/openfleet/fleettrack/internal/pkg/models"
	natspkg "github.com/openfleet/fleettrack/internal/pkg/nats"
	wspkg "github.com/openfleet/fleettrack/internal/pkg/websocket"
	"github.com/openfleet/fleettrack/services/tracking"
)

// WebSocketHandler handles realtime tracking connections
type WebSocketHandler struct {
	trackingUC tracking.TrackingUC
	manager    *wspkg.Manager
	natsClient *natspkg.Client
	cfg        *models.Config
}

// NewWebSocketHandler creates a new tracking WebSocket handler
func NewWebSocketHandler(
	trackingUC tracking.TrackingUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *WebSocketHandler {
	return &WebSocketHandler{
		trackingUC: trackingUC,
		manager:    wspkg.NewManager(cfg.JWT),
		natsClient: natsClient,
		cfg:        cfg,
	}
}
