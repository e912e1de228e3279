package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/openfleet/fleettrack/internal/pkg/constants"
	"github.com/openfleet/fleettrack/internal/pkg/logger"
	"github.com/openfleet/fleettrack/internal/pkg/models"
)

// HandleDriverConnection serves the driver ingest socket. Drivers push
// location_update frames; each accepted fix flows through the same path as
// the HTTP ingest endpoint.
func (h *WebSocketHandler) HandleDriverConnection(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleDriverClient)
}

func (h *WebSocketHandler) handleDriverClient(client *models.WebSocketClient, conn *websocket.Conn) error {
	logger.Info("Driver connected to ingest socket",
		logger.String("user_id", client.UserID))

	for {
		var msg models.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Driver socket closed unexpectedly",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return nil
		}

		if err := h.handleDriverMessage(client, conn, msg); err != nil {
			logger.Error("Failed to handle driver message",
				logger.String("user_id", client.UserID),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

func (h *WebSocketHandler) handleDriverMessage(client *models.WebSocketClient, conn *websocket.Conn, msg models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		return h.manager.SendMessage(client, conn, constants.EventPong, nil)
	case constants.EventLocationUpdate:
		return h.handleLocationUpdate(client, conn, msg.Data)
	default:
		return h.manager.SendErrorMessage(client, conn, constants.ErrCodeInvalidPayload, "unknown event")
	}
}

func (h *WebSocketHandler) handleLocationUpdate(client *models.WebSocketClient, conn *websocket.Conn, data json.RawMessage) error {
	var update models.WSLocationUpdate
	if err := json.Unmarshal(data, &update); err != nil {
		return h.manager.SendErrorMessage(client, conn, constants.ErrCodeInvalidPayload, "invalid location payload")
	}

	vehicleID := update.VehicleID
	if vehicleID == "" {
		vehicleID = client.UserID
	}

	location := &models.Location{
		Latitude:  update.Latitude,
		Longitude: update.Longitude,
		Address:   update.Address,
	}

	if err := h.trackingUC.UpdateVehicleLocation(context.Background(), vehicleID, location); err != nil {
		return h.manager.SendErrorMessage(client, conn, constants.ErrCodeInvalidPayload, err.Error())
	}

	return nil
}
