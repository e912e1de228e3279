package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Ingest events (driver socket)
	EventLocationUpdate = "location_update"

	// Watch events (manager socket)
	EventTrackingSnapshot = "tracking_snapshot"
)

// WebSocket close/error codes
const (
	ErrCodeInvalidPayload = "invalid_payload"
	ErrCodeInternal       = "internal_error"
)
