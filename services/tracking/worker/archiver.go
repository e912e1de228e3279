// Package worker runs the asynchronous side of the tracking service: the
// archiver that drains the location history queue into Postgres.
package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openfleet/fleettrack/internal/pkg/constants"
	"github.com/openfleet/fleettrack/internal/pkg/logger"
	"github.com/openfleet/fleettrack/internal/pkg/models"
	"github.com/openfleet/fleettrack/internal/pkg/nsq"
	"github.com/openfleet/fleettrack/internal/pkg/retry"
	"github.com/openfleet/fleettrack/services/tracking"
)

// Archiver consumes location updates from NSQ and persists them to the
// history archive. Database writes are retried with backoff before the
// message is requeued.
type Archiver struct {
	trackingUC tracking.TrackingUC
	retrier    *retry.Retrier
	consumer   *nsq.Consumer
	channel    string
	address    string
}

// NewArchiver creates an archiver for the location history topic
func NewArchiver(trackingUC tracking.TrackingUC, cfg models.NSQConfig, zapLogger *logger.ZapLogger) *Archiver {
	channel := cfg.ArchiverChannel
	if channel == "" {
		channel = "archiver"
	}

	return &Archiver{
		trackingUC: trackingUC,
		retrier:    retry.NewWithDefaults(zapLogger),
		channel:    channel,
		address:    cfg.Address,
	}
}

// Start connects the consumer. Returned errors are connection failures;
// per-message failures are requeued by NSQ.
func (a *Archiver) Start() error {
	consumer, err := nsq.NewConsumer(constants.TopicLocationHistory, a.channel, a.address, a.handleMessage)
	if err != nil {
		return fmt.Errorf("failed to start history archiver: %w", err)
	}
	a.consumer = consumer

	logger.Info("History archiver started",
		logger.String("topic", constants.TopicLocationHistory),
		logger.String("channel", a.channel))
	return nil
}

// Stop gracefully stops the consumer
func (a *Archiver) Stop() {
	if a.consumer != nil {
		a.consumer.Stop()
	}
}

func (a *Archiver) handleMessage(body []byte) error {
	var update models.LocationUpdate
	if err := json.Unmarshal(body, &update); err != nil {
		// malformed messages can never succeed; drop instead of requeueing
		logger.Warn("Dropping malformed history message", logger.Err(err))
		return nil
	}

	return a.retrier.Execute(context.Background(), func(ctx context.Context) error {
		return a.trackingUC.ArchiveLocationUpdate(ctx, &update)
	})
}
