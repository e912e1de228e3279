package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openfleet/fleettrack/internal/pkg/logger"
	"github.com/openfleet/fleettrack/internal/pkg/models"
	"github.com/openfleet/fleettrack/internal/utils"
	"github.com/openfleet/fleettrack/services/tracking"
)

// defaultHistoryWindow is used when a history query omits the time range
const defaultHistoryWindow = 24 * time.Hour

// TrackingHandler handles HTTP requests for vehicle tracking operations
type TrackingHandler struct {
	trackingUC tracking.TrackingUC
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUC) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
	}
}

// UpdateVehicleLocation ingests a vehicle fix
func (h *TrackingHandler) UpdateVehicleLocation(c echo.Context) error {
	vehicleID := c.Param("id")
	if vehicleID == "" {
		return utils.BadRequestResponse(c, "vehicle_id is required")
	}

	var req struct {
		Latitude  float64   `json:"latitude"`
		Longitude float64   `json:"longitude"`
		Address   string    `json:"address"`
		Timestamp time.Time `json:"timestamp"`
	}

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	location := &models.Location{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Address:   req.Address,
		Timestamp: req.Timestamp,
	}

	if err := h.trackingUC.UpdateVehicleLocation(c.Request().Context(), vehicleID, location); err != nil {
		logger.Error("Failed to update vehicle location",
			logger.String("vehicle_id", vehicleID),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated successfully", map[string]string{"status": "success"})
}

// GetVehicleLocation returns the vehicle's last known position and a
// freshness status.
func (h *TrackingHandler) GetVehicleLocation(c echo.Context) error {
	vehicleID := c.Param("id")
	if vehicleID == "" {
		return utils.BadRequestResponse(c, "vehicle_id is required")
	}

	location, status, err := h.trackingUC.GetVehicleLocation(c.Request().Context(), vehicleID)
	if err != nil {
		logger.Error("Failed to get vehicle location",
			logger.String("vehicle_id", vehicleID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to get vehicle location")
	}

	if location == nil {
		return utils.NotFoundResponse(c, "no location known for vehicle")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location retrieved successfully", map[string]interface{}{
		"vehicle_id": vehicleID,
		"location":   location,
		"status":     status,
	})
}

// FindNearbyVehicles returns vehicles within a radius of a point
func (h *TrackingHandler) FindNearbyVehicles(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "latitude is required")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "longitude is required")
	}

	radiusKm := 5.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid radius_km")
		}
	}

	origin := &models.Location{Latitude: lat, Longitude: lng}
	vehicles, err := h.trackingUC.GetNearbyVehicles(c.Request().Context(), origin, radiusKm)
	if err != nil {
		logger.Error("Failed to find nearby vehicles", logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby vehicles retrieved successfully", map[string]interface{}{
		"vehicles": vehicles,
		"count":    len(vehicles),
	})
}

// GetLocationHistory returns the vehicle's archived fixes in a time window
func (h *TrackingHandler) GetLocationHistory(c echo.Context) error {
	vehicleID := c.Param("id")
	if vehicleID == "" {
		return utils.BadRequestResponse(c, "vehicle_id is required")
	}

	endTime := models.Now()
	if raw := c.QueryParam("end"); raw != "" {
		parsed, err := models.ParseTime(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid end time")
		}
		endTime = parsed
	}

	startTime := endTime.Add(-defaultHistoryWindow)
	if raw := c.QueryParam("start"); raw != "" {
		parsed, err := models.ParseTime(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid start time")
		}
		startTime = parsed
	}

	entries, err := h.trackingUC.GetLocationHistory(c.Request().Context(), vehicleID, startTime, endTime)
	if err != nil {
		logger.Error("Failed to get location history",
			logger.String("vehicle_id", vehicleID),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location history retrieved successfully", map[string]interface{}{
		"vehicle_id": vehicleID,
		"entries":    entries,
		"count":      len(entries),
	})
}

// EstimateArrival returns remaining distance and ETA to a destination
func (h *TrackingHandler) EstimateArrival(c echo.Context) error {
	vehicleID := c.Param("id")
	if vehicleID == "" {
		return utils.BadRequestResponse(c, "vehicle_id is required")
	}

	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "latitude is required")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "longitude is required")
	}

	metrics, err := h.trackingUC.EstimateArrival(c.Request().Context(), vehicleID, models.Coordinate{
		Latitude:  lat,
		Longitude: lng,
	})
	if err != nil {
		logger.Error("Failed to estimate arrival",
			logger.String("vehicle_id", vehicleID),
			logger.ErrorField(err))
		return utils.NotFoundResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Arrival estimated successfully", metrics)
}
