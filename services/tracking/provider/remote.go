package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/openfleet/fleettrack/internal/pkg/logger"
	"github.com/openfleet/fleettrack/internal/pkg/models"
)

// RemoteConfig configures a RemoteProvider. Zero values fall back to the
// package defaults; Clock exists for tests.
type RemoteConfig struct {
	Seed           *models.Location // last known location, if any
	StaleThreshold time.Duration
	CheckInterval  time.Duration
	Clock          func() time.Time
}

// RemoteProvider tracks one entity by subscribing to change events on its
// backing record. Staleness is evaluated against the fix timestamp on every
// event and on a periodic timer, so a feed that goes quiet degrades to Stale
// within one timer interval of the threshold elapsing. The provider never
// reconnects on its own; the status enum is the only failure surface.
type RemoteProvider struct {
	entityID       string
	channel        RealtimeChannel
	staleThreshold time.Duration
	checkInterval  time.Duration
	now            func() time.Time

	observers observers

	mu       sync.RWMutex
	location *models.Location
	status   Status
	updating bool
	cancel   context.CancelFunc
}

// NewRemoteProvider creates a provider for the given tracked entity. When a
// seed location is supplied its staleness is evaluated immediately, so
// consumers get a meaningful status before the first live event arrives.
func NewRemoteProvider(entityID string, channel RealtimeChannel, cfg RemoteConfig) *RemoteProvider {
	if cfg.StaleThreshold <= 0 {
		cfg.StaleThreshold = DefaultStaleThreshold
	}
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = DefaultCheckInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	p := &RemoteProvider{
		entityID:       entityID,
		channel:        channel,
		staleThreshold: cfg.StaleThreshold,
		checkInterval:  cfg.CheckInterval,
		now:            cfg.Clock,
		status:         Offline(),
	}

	if cfg.Seed != nil {
		seed := *cfg.Seed
		p.location = &seed
		p.status = Freshness(p.now(), seed.Timestamp, p.staleThreshold)
	}

	return p
}

// CurrentLocation returns a copy of the last accepted fix, or nil
func (p *RemoteProvider) CurrentLocation() *models.Location {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.location == nil {
		return nil
	}
	loc := *p.location
	return &loc
}

// Heading always reports absent: change events carry no course field
func (p *RemoteProvider) Heading() (float64, bool) {
	return 0, false
}

// Status returns the current feed status
func (p *RemoteProvider) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// IsUpdating reports whether a subscription is open
func (p *RemoteProvider) IsUpdating() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.updating
}

// Subscribe registers a snapshot callback; see LocationProvider
func (p *RemoteProvider) Subscribe(fn func(Snapshot)) func() {
	return p.observers.add(fn)
}

// StartTracking opens the subscription and starts the staleness timer. A
// second call while tracking is a no-op, so double-starting never creates a
// duplicate subscription. An error is returned only when the channel refuses
// the subscription synchronously; after a successful start the provider
// stays Connecting until the first event arrives.
func (p *RemoteProvider) StartTracking() error {
	p.mu.Lock()
	if p.updating {
		p.mu.Unlock()
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.updating = true
	p.status = Connecting()
	snap := p.snapshotLocked()
	p.mu.Unlock()
	p.observers.emit(snap)

	sub, err := p.channel.Subscribe(ctx, p.entityID)
	if err != nil {
		cancel()
		p.mu.Lock()
		p.cancel = nil
		p.updating = false
		p.status = Offline()
		snap := p.snapshotLocked()
		p.mu.Unlock()
		p.observers.emit(snap)
		return fmt.Errorf("failed to open realtime subscription for %s: %w", p.entityID, err)
	}

	go p.run(ctx, sub)

	logger.Debug("Remote provider started tracking",
		logger.String("entity_id", p.entityID))
	return nil
}

// StopTracking cancels the subscription and timer and reports Offline.
// Idempotent; additional calls leave the provider Offline with no error.
func (p *RemoteProvider) StopTracking() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.updating = false
	changed := p.status != Offline()
	p.status = Offline()
	snap := p.snapshotLocked()
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if changed {
		p.observers.emit(snap)
	}
}

// run is the provider's event loop: one goroutine serializes event handling,
// staleness ticks and teardown. Cancellation is cooperative at the next
// select.
func (p *RemoteProvider) run(ctx context.Context, sub Subscription) {
	defer sub.Close()

	ticker := time.NewTicker(p.checkInterval)
	defer ticker.Stop()

	events := sub.Events()
	for {
		select {
		case event, ok := <-events:
			if !ok {
				// The transport closed the stream without a terminal error.
				// Keep ticking so the feed degrades to Stale instead of
				// freezing on the last status.
				events = nil
				continue
			}
			p.applyEvent(event)
		case <-ticker.C:
			p.evaluateStaleness()
		case <-ctx.Done():
			return
		}
	}
}

// applyEvent decodes and publishes one change event. Events missing required
// fields are dropped with no state change.
func (p *RemoteProvider) applyEvent(event ChangeEvent) {
	location, ok := DecodeLocation(event, p.now())
	if !ok {
		logger.Debug("Dropping change event without coordinates",
			logger.String("entity_id", p.entityID))
		return
	}

	p.mu.Lock()
	if !p.updating {
		p.mu.Unlock()
		return
	}
	loc := location
	p.location = &loc
	p.status = Freshness(p.now(), location.Timestamp, p.staleThreshold)
	snap := p.snapshotLocked()
	p.mu.Unlock()
	p.observers.emit(snap)
}

// evaluateStaleness re-checks the last fix against the threshold
func (p *RemoteProvider) evaluateStaleness() {
	p.mu.Lock()
	if !p.updating || p.location == nil {
		// no fix yet: stay Connecting until an event arrives or the
		// consumer stops tracking
		p.mu.Unlock()
		return
	}

	next := Freshness(p.now(), p.location.Timestamp, p.staleThreshold)
	if next == p.status {
		p.mu.Unlock()
		return
	}
	p.status = next
	snap := p.snapshotLocked()
	p.mu.Unlock()
	p.observers.emit(snap)
}

func (p *RemoteProvider) snapshotLocked() Snapshot {
	var loc *models.Location
	if p.location != nil {
		l := *p.location
		loc = &l
	}
	return Snapshot{
		Location: loc,
		Status:   p.status,
		Updating: p.updating,
	}
}
