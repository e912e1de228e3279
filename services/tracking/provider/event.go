package provider

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/openfleet/fleettrack/internal/pkg/models"
)

// Change event types delivered on the realtime channel.
const (
	EventInsert = "insert"
	EventUpdate = "update"
)

// DefaultUpdatedAddress labels a remote fix whose payload carried no address.
const DefaultUpdatedAddress = "Updated Location"

// ChangeEvent is one row-change notification for a tracked entity's backing
// record. Record is a generic field map; only the fields the decoder knows
// about are consumed, everything else is ignored.
type ChangeEvent struct {
	Type   string                 `json:"type"`
	Record map[string]interface{} `json:"record"`
}

// RealtimeChannel opens per-entity subscriptions to change events.
type RealtimeChannel interface {
	Subscribe(ctx context.Context, entityID string) (Subscription, error)
}

// Subscription is a live stream of change events for one entity. Events may
// be closed by the transport; Close releases the subscription and is safe to
// call more than once.
type Subscription interface {
	Events() <-chan ChangeEvent
	Close() error
}

// DecodeLocation extracts a Location from a change event. Latitude and
// longitude are required; an event missing either is dropped (ok=false). The
// update timestamp defaults to now when absent or unparseable, and the
// address defaults to a generic label, so a sparse payload still yields a
// displayable fix.
func DecodeLocation(event ChangeEvent, now time.Time) (models.Location, bool) {
	lat, ok := floatField(event.Record, "latitude")
	if !ok {
		return models.Location{}, false
	}
	lng, ok := floatField(event.Record, "longitude")
	if !ok {
		return models.Location{}, false
	}

	timestamp := now
	if raw, ok := stringField(event.Record, "last_location_update"); ok {
		if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			timestamp = parsed
		}
	}

	address := DefaultUpdatedAddress
	if raw, ok := stringField(event.Record, "address"); ok && raw != "" {
		address = raw
	}

	return models.Location{
		Latitude:  lat,
		Longitude: lng,
		Address:   address,
		Timestamp: timestamp,
	}, true
}

// floatField reads a numeric record field. Payloads that crossed a JSON
// boundary may carry floats, json.Number or strings depending on the
// publisher, so all three are accepted.
func floatField(record map[string]interface{}, key string) (float64, bool) {
	value, exists := record[key]
	if !exists || value == nil {
		return 0, false
	}

	switch v := value.(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func stringField(record map[string]interface{}, key string) (string, bool) {
	value, exists := record[key]
	if !exists || value == nil {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}
