package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openfleet/fleettrack/internal/pkg/models"
)

func TestComputeMetrics(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("One degree of latitude", func(t *testing.T) {
		current := models.Location{Latitude: 0, Longitude: 0}
		destination := models.Coordinate{Latitude: 1, Longitude: 0}

		metrics := ComputeMetrics(current, destination, now)

		// ~111.2 km great-circle, scaled by the road factor
		assert.InDelta(t, 144560, metrics.RemainingDistanceMeters, 300)

		travel := metrics.ETA.Sub(now)
		assert.InDelta(t, (3*time.Hour + 37*time.Minute).Seconds(), travel.Seconds(), 60)
		assert.Equal(t, "3h 37m", metrics.FormattedETA)
	})

	t.Run("Same point", func(t *testing.T) {
		current := models.Location{Latitude: -6.2, Longitude: 106.8}
		destination := models.Coordinate{Latitude: -6.2, Longitude: 106.8}

		metrics := ComputeMetrics(current, destination, now)

		assert.Equal(t, 0.0, metrics.RemainingDistanceMeters)
		assert.True(t, metrics.ETA.Equal(now))
		assert.Equal(t, "<1m", metrics.FormattedETA)
	})

	t.Run("Short hop formats minutes only", func(t *testing.T) {
		current := models.Location{Latitude: -6.2, Longitude: 106.8}
		destination := models.Coordinate{Latitude: -6.25, Longitude: 106.8}

		metrics := ComputeMetrics(current, destination, now)

		// ~5.56 km straight, ~7.2 km by road, ~11 minutes at 11.1 m/s
		assert.InDelta(t, 7228, metrics.RemainingDistanceMeters, 50)
		assert.Equal(t, "10m", metrics.FormattedETA)
	})
}

func TestFormatETA(t *testing.T) {
	tests := []struct {
		name   string
		travel time.Duration
		want   string
	}{
		{"Under a minute", 30 * time.Second, "<1m"},
		{"Exact minutes", 12 * time.Minute, "12m"},
		{"Hours and minutes", 3*time.Hour + 37*time.Minute, "3h 37m"},
		{"Exact hour", 2 * time.Hour, "2h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatETA(tt.travel))
		})
	}
}
