package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfleet/fleettrack/internal/pkg/models"
	"github.com/openfleet/fleettrack/services/tracking/provider"
)

func activeSnapshot(lat, lng float64) provider.Snapshot {
	return provider.Snapshot{
		Location: &models.Location{
			Latitude:  lat,
			Longitude: lng,
			Address:   provider.DeviceAddressLabel,
			Timestamp: time.Now().UTC(),
		},
		Status:   provider.Active(),
		Updating: true,
	}
}

func TestFixPoster_DeliversFixes(t *testing.T) {
	received := make(chan map[string]interface{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		received <- body
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	poster := newFixPoster(server.Client(), server.URL)
	go poster.run()
	defer poster.stop()

	poster.enqueue(activeSnapshot(-6.175392, 106.827153))

	select {
	case body := <-received:
		assert.InDelta(t, -6.175392, body["latitude"], 0.000001)
		assert.InDelta(t, 106.827153, body["longitude"], 0.000001)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for posted fix")
	}
}

func TestFixPoster_EnqueueNeverBlocks(t *testing.T) {
	// no run loop draining: every enqueue past the buffer must drop
	// instead of stalling the provider callback
	poster := newFixPoster(&http.Client{}, "http://127.0.0.1:1")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			poster.enqueue(activeSnapshot(float64(i), 0))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("enqueue blocked with a full backlog")
	}
	assert.Equal(t, cap(poster.snapshots), len(poster.snapshots))
}

func TestFixPoster_SkipsNonActiveSnapshots(t *testing.T) {
	poster := newFixPoster(&http.Client{}, "http://127.0.0.1:1")

	poster.enqueue(provider.Snapshot{Status: provider.Connecting()})
	poster.enqueue(provider.Snapshot{Status: provider.Offline()})
	stale := activeSnapshot(1, 2)
	stale.Status = provider.Stale(time.Now().Add(-10 * time.Minute))
	poster.enqueue(stale)

	assert.Empty(t, poster.snapshots)
}

func TestSimSource_EmitsFixes(t *testing.T) {
	source := newSimSource(-6.2, 106.8, 10*time.Millisecond)
	defer source.Stop()

	fixes, err := source.Start(context.Background(), provider.ProfileTracking)
	require.NoError(t, err)

	select {
	case fix := <-fixes:
		assert.InDelta(t, -6.2, fix.Latitude, 0.02)
		assert.InDelta(t, 106.8, fix.Longitude, 0.02)
		assert.GreaterOrEqual(t, fix.Course, 0.0)
		assert.Less(t, fix.Course, 360.0)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for simulated fix")
	}

	source.Stop()
	for range fixes {
	}
}
