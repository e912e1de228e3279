package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/openfleet/fleettrack/internal/pkg/models"
	natspkg "github.com/openfleet/fleettrack/internal/pkg/nats"
	"github.com/openfleet/fleettrack/services/tracking"
	httpHandler "github.com/openfleet/fleettrack/services/tracking/handler/http"
	wsHandler "github.com/openfleet/fleettrack/services/tracking/handler/websocket"
)

// Handler combines the HTTP and WebSocket handlers of the tracking service
type Handler struct {
	trackingHTTP *httpHandler.TrackingHandler
	trackingWS   *wsHandler.WebSocketHandler
	cfg          *models.Config
}

// NewHandler creates the combined tracking handler
func NewHandler(
	trackingUC tracking.TrackingUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		trackingHTTP: httpHandler.NewTrackingHandler(trackingUC),
		trackingWS:   wsHandler.NewWebSocketHandler(trackingUC, natsClient, cfg),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all tracking routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1")

	// Vehicle location routes
	v1.POST("/vehicles/:id/location", h.trackingHTTP.UpdateVehicleLocation)
	v1.GET("/vehicles/:id/location", h.trackingHTTP.GetVehicleLocation)
	v1.GET("/vehicles/nearby", h.trackingHTTP.FindNearbyVehicles)
	v1.GET("/vehicles/:id/history", h.trackingHTTP.GetLocationHistory)
	v1.GET("/vehicles/:id/eta", h.trackingHTTP.EstimateArrival)

	// Realtime sockets
	e.GET("/ws/drivers", h.trackingWS.HandleDriverConnection)
	e.GET("/ws/watch/:id", h.trackingWS.HandleWatchConnection)
}
