// devicesim drives the public ingest API with fixes from a simulated
// positioning sensor, exercising the same provider path a real device uses.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/openfleet/fleettrack/internal/pkg/logger"
	"github.com/openfleet/fleettrack/internal/pkg/models"
	"github.com/openfleet/fleettrack/services/tracking/provider"
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:8080", "tracking service base URL")
		vehicleID = flag.String("vehicle", "", "vehicle ID (random when empty)")
		lat       = flag.Float64("lat", -6.175392, "starting latitude")
		lng       = flag.Float64("lng", 106.827153, "starting longitude")
		interval  = flag.Duration("interval", 5*time.Second, "fix interval")
	)
	flag.Parse()

	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{Level: "info"})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	id := *vehicleID
	if id == "" {
		id = uuid.New().String()
	}

	source := newSimSource(*lat, *lng, *interval)
	deviceProvider := provider.NewDeviceProvider(source)

	client := &http.Client{Timeout: 10 * time.Second}
	endpoint := fmt.Sprintf("%s/v1/vehicles/%s/location", *baseURL, id)

	poster := newFixPoster(client, endpoint)
	go poster.run()
	defer poster.stop()

	unsubscribe := deviceProvider.Subscribe(poster.enqueue)
	defer unsubscribe()

	if err := deviceProvider.StartTracking(); err != nil {
		logger.Fatal("Failed to start device provider", logger.Err(err))
	}
	defer deviceProvider.StopTracking()

	logger.Info("Simulating vehicle",
		logger.String("vehicle_id", id),
		logger.String("endpoint", endpoint))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Simulator stopped")
}

// fixPoster delivers accepted fixes to the ingest endpoint. Snapshots are
// handed off on a buffered channel so the provider callback never blocks on
// network I/O; when the backlog is full the fix is dropped and the next one
// supersedes it anyway.
type fixPoster struct {
	client    *http.Client
	endpoint  string
	snapshots chan provider.Snapshot
	quit      chan struct{}
	done      chan struct{}
}

func newFixPoster(client *http.Client, endpoint string) *fixPoster {
	return &fixPoster{
		client:    client,
		endpoint:  endpoint,
		snapshots: make(chan provider.Snapshot, 16),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

func (p *fixPoster) enqueue(snap provider.Snapshot) {
	if snap.Location == nil || snap.Status.State != provider.StateActive {
		return
	}
	select {
	case p.snapshots <- snap:
	default:
		logger.Debug("Dropping fix, poster backlog full")
	}
}

func (p *fixPoster) run() {
	defer close(p.done)
	for {
		select {
		case snap := <-p.snapshots:
			if err := postFix(p.client, p.endpoint, snap.Location); err != nil {
				logger.Warn("Failed to push fix", logger.Err(err))
			}
		case <-p.quit:
			return
		}
	}
}

func (p *fixPoster) stop() {
	close(p.quit)
	<-p.done
}

func postFix(client *http.Client, endpoint string, location *models.Location) error {
	body, err := json.Marshal(map[string]interface{}{
		"latitude":  location.Latitude,
		"longitude": location.Longitude,
		"address":   location.Address,
		"timestamp": location.Timestamp,
	})
	if err != nil {
		return err
	}

	resp, err := client.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ingest returned %s", resp.Status)
	}
	return nil
}

// simSource walks a small circle around the starting point, emitting one fix
// per interval with the course tangent to the circle.
type simSource struct {
	lat      float64
	lng      float64
	interval time.Duration
	cancel   context.CancelFunc
}

func newSimSource(lat, lng float64, interval time.Duration) *simSource {
	return &simSource{lat: lat, lng: lng, interval: interval}
}

func (s *simSource) Authorize(_ context.Context) error {
	return nil
}

func (s *simSource) Start(ctx context.Context, _ provider.Profile) (<-chan models.Fix, error) {
	ctx, s.cancel = context.WithCancel(ctx)
	fixes := make(chan models.Fix)

	go func() {
		defer close(fixes)

		const radiusDeg = 0.01 // roughly a 1km circle
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		angle := 0.0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				angle += 0.1
				fix := models.Fix{
					Latitude:  s.lat + radiusDeg*math.Sin(angle),
					Longitude: s.lng + radiusDeg*math.Cos(angle),
					Course:    math.Mod(angle*180/math.Pi+90, 360),
					Timestamp: time.Now().UTC(),
				}
				select {
				case fixes <- fix:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return fixes, nil
}

func (s *simSource) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}
