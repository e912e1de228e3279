// Package provider implements location providers for tracked entities: a
// device-local provider that relays a positioning sensor, and a remote
// provider that follows another vehicle over a realtime channel. Both expose
// the same observable surface so consumers never depend on the concrete
// source.
package provider

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/openfleet/fleettrack/internal/pkg/models"
)

// Defaults for staleness detection.
const (
	DefaultStaleThreshold = 300 * time.Second
	DefaultCheckInterval  = 60 * time.Second
)

// State enumerates the freshness/connectivity of a location feed.
type State int

const (
	StateConnecting State = iota
	StateActive
	StateStale
	StateOffline
)

// String returns the lowercase name of the state
func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateActive:
		return "active"
	case StateStale:
		return "stale"
	case StateOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the state as its string name
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Status describes the current condition of a location feed. Exactly one
// state is current at any time; StaleSince is set only for StateStale and
// carries the timestamp of the last accepted fix.
type Status struct {
	State      State     `json:"state"`
	StaleSince time.Time `json:"stale_since,omitempty"`
}

// Connecting returns the status used between StartTracking and the first fix
func Connecting() Status { return Status{State: StateConnecting} }

// Active returns the status for a feed with a fresh fix
func Active() Status { return Status{State: StateActive} }

// Stale returns the status for a feed whose last fix aged past the threshold
func Stale(since time.Time) Status { return Status{State: StateStale, StaleSince: since} }

// Offline returns the status of a stopped feed
func Offline() Status { return Status{State: StateOffline} }

// Freshness evaluates a fix captured at lastFix against the stale threshold.
// Used on every accepted fix and on every staleness timer tick, so a feed
// that stops producing degrades to Stale within one tick of the threshold
// elapsing.
func Freshness(now, lastFix time.Time, threshold time.Duration) Status {
	if now.Sub(lastFix) > threshold {
		return Stale(lastFix)
	}
	return Active()
}

// Snapshot is the full observable state of a provider at one instant.
type Snapshot struct {
	Location   *models.Location `json:"location,omitempty"`
	Heading    float64          `json:"heading,omitempty"`
	HasHeading bool             `json:"has_heading"`
	Status     Status           `json:"status"`
	Updating   bool             `json:"updating"`
}

// LocationProvider is the consumer-facing contract shared by all providers.
// Getters are safe from any goroutine. StopTracking is idempotent and safe to
// call before StartTracking.
type LocationProvider interface {
	CurrentLocation() *models.Location
	Heading() (float64, bool)
	Status() Status
	IsUpdating() bool
	StartTracking() error
	StopTracking()

	// Subscribe registers a callback invoked with a fresh Snapshot on every
	// state change. Callbacks are serialized (never invoked concurrently) and
	// must not block or call back into the provider. The returned function
	// removes the subscription.
	Subscribe(fn func(Snapshot)) func()
}

// observers is a callback registry shared by the provider implementations.
type observers struct {
	mu     sync.Mutex
	emitMu sync.Mutex
	nextID int
	subs   map[int]func(Snapshot)
}

func (o *observers) add(fn func(Snapshot)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.subs == nil {
		o.subs = make(map[int]func(Snapshot))
	}
	id := o.nextID
	o.nextID++
	o.subs[id] = fn

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.subs, id)
	}
}

// emit invokes every registered callback with the snapshot. The emit lock
// guarantees callbacks are serialized even when a status change originates
// from a different goroutine than the event loop.
func (o *observers) emit(snap Snapshot) {
	o.mu.Lock()
	callbacks := make([]func(Snapshot), 0, len(o.subs))
	for _, fn := range o.subs {
		callbacks = append(callbacks, fn)
	}
	o.mu.Unlock()

	o.emitMu.Lock()
	defer o.emitMu.Unlock()
	for _, fn := range callbacks {
		fn(snap)
	}
}
