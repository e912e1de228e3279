package provider

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/openfleet/fleettrack/internal/pkg/logger"
	"github.com/openfleet/fleettrack/internal/pkg/models"
)

// Profile selects the sensor power/accuracy trade-off requested from a
// FixSource.
type Profile string

// ProfileTracking requests continuous high-accuracy fixes
const ProfileTracking Profile = "tracking"

// DeviceAddressLabel is the placeholder address attached to sensor fixes,
// which carry coordinates only.
const DeviceAddressLabel = "Current Location"

// FixSource abstracts the positioning hardware. Authorize must be called
// before Start; Start returns a stream of fixes that the source closes when
// it shuts down.
type FixSource interface {
	Authorize(ctx context.Context) error
	Start(ctx context.Context, profile Profile) (<-chan models.Fix, error)
	Stop()
}

// DeviceProvider reports the position of the local device from a FixSource.
// Unlike the remote provider it has no staleness machinery: the sensor
// either delivers fixes or it does not, and the consumer sees Connecting
// until the first one lands.
type DeviceProvider struct {
	source FixSource
	now    func() time.Time

	observers observers

	mu         sync.RWMutex
	location   *models.Location
	heading    float64
	hasHeading bool
	status     Status
	updating   bool
	cancel     context.CancelFunc
}

// NewDeviceProvider creates a provider over the given fix source
func NewDeviceProvider(source FixSource) *DeviceProvider {
	return &DeviceProvider{
		source: source,
		now:    time.Now,
		status: Offline(),
	}
}

// CurrentLocation returns a copy of the last fix, or nil
func (p *DeviceProvider) CurrentLocation() *models.Location {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.location == nil {
		return nil
	}
	loc := *p.location
	return &loc
}

// Heading returns the last reported course over ground. The second return
// is false until the sensor delivers a fix with a valid course.
func (p *DeviceProvider) Heading() (float64, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.heading, p.hasHeading
}

// Status returns the current sensor status
func (p *DeviceProvider) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// IsUpdating reports whether the sensor stream is open
func (p *DeviceProvider) IsUpdating() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.updating
}

// Subscribe registers a snapshot callback; see LocationProvider
func (p *DeviceProvider) Subscribe(fn func(Snapshot)) func() {
	return p.observers.add(fn)
}

// StartTracking authorizes against the source and opens the fix stream.
// Calling it while already tracking is a no-op.
func (p *DeviceProvider) StartTracking() error {
	p.mu.Lock()
	if p.updating {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())

	if err := p.source.Authorize(ctx); err != nil {
		cancel()
		return fmt.Errorf("failed to authorize fix source: %w", err)
	}

	fixes, err := p.source.Start(ctx, ProfileTracking)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to start fix source: %w", err)
	}

	p.mu.Lock()
	if p.updating {
		// lost the race to a concurrent start
		p.mu.Unlock()
		cancel()
		p.source.Stop()
		return nil
	}
	p.cancel = cancel
	p.updating = true
	p.status = Connecting()
	snap := p.snapshotLocked()
	p.mu.Unlock()
	p.observers.emit(snap)

	go p.run(ctx, fixes)

	logger.Debug("Device provider started tracking")
	return nil
}

// StopTracking shuts down the sensor stream and reports Offline. Idempotent.
func (p *DeviceProvider) StopTracking() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	wasUpdating := p.updating
	p.updating = false
	changed := p.status != Offline()
	p.status = Offline()
	snap := p.snapshotLocked()
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if wasUpdating {
		p.source.Stop()
	}
	if changed {
		p.observers.emit(snap)
	}
}

func (p *DeviceProvider) run(ctx context.Context, fixes <-chan models.Fix) {
	for {
		select {
		case fix, ok := <-fixes:
			if !ok {
				return
			}
			p.applyFix(fix)
		case <-ctx.Done():
			return
		}
	}
}

// applyFix converts a raw sensor fix into a location. Fixes carry no
// address; a fixed placeholder stands in until a geocoder resolves one.
func (p *DeviceProvider) applyFix(fix models.Fix) {
	timestamp := fix.Timestamp
	if timestamp.IsZero() {
		timestamp = p.now()
	}

	p.mu.Lock()
	if !p.updating {
		p.mu.Unlock()
		return
	}
	p.location = &models.Location{
		Latitude:  fix.Latitude,
		Longitude: fix.Longitude,
		Address:   DeviceAddressLabel,
		Timestamp: timestamp,
	}
	if fix.Course >= 0 {
		p.heading = fix.Course
		p.hasHeading = true
	}
	p.status = Active()
	snap := p.snapshotLocked()
	p.mu.Unlock()
	p.observers.emit(snap)
}

func (p *DeviceProvider) snapshotLocked() Snapshot {
	var loc *models.Location
	if p.location != nil {
		l := *p.location
		loc = &l
	}
	return Snapshot{
		Location:   loc,
		Heading:    p.heading,
		HasHeading: p.hasHeading,
		Status:     p.status,
		Updating:   p.updating,
	}
}
