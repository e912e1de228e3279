package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/openfleet/fleettrack/internal/pkg/constants"
	"github.com/openfleet/fleettrack/internal/pkg/logger"
	natspkg "github.com/openfleet/fleettrack/internal/pkg/nats"
)

// eventBufferSize bounds the per-subscription event queue. The tracked state
// is last-write-wins, so dropping under backpressure is acceptable.
const eventBufferSize = 16

// NATSChannel implements RealtimeChannel over the NATS location subjects
type NATSChannel struct {
	client *natspkg.Client
}

// NewNATSChannel creates a realtime channel over the given NATS client
func NewNATSChannel(client *natspkg.Client) *NATSChannel {
	return &NATSChannel{client: client}
}

// Subscribe opens a subscription on the entity's location subject. The
// subscription is torn down when ctx is canceled or Close is called.
func (c *NATSChannel) Subscribe(ctx context.Context, entityID string) (Subscription, error) {
	subject := fmt.Sprintf(constants.SubjectVehicleLocation, entityID)
	events := make(chan ChangeEvent, eventBufferSize)

	sub, err := c.client.Subscribe(subject, func(msg *nats.Msg) {
		var event ChangeEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Warn("Dropping malformed change event",
				logger.String("subject", subject),
				logger.Err(err))
			return
		}
		select {
		case events <- event:
		default:
			logger.Debug("Dropping change event, consumer is behind",
				logger.String("subject", subject))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	s := &natsSubscription{sub: sub}
	s.events = events

	go func() {
		<-ctx.Done()
		if err := s.Close(); err != nil {
			logger.Warn("Failed to close location subscription",
				logger.String("subject", subject),
				logger.Err(err))
		}
	}()

	return s, nil
}

// natsSubscription never closes its events channel: the NATS handler may
// still be delivering when Close runs. Consumers stop reading via their own
// context instead.
type natsSubscription struct {
	sub    *nats.Subscription
	events chan ChangeEvent
	once   sync.Once
}

func (s *natsSubscription) Events() <-chan ChangeEvent {
	return s.events
}

func (s *natsSubscription) Close() error {
	var err error
	s.once.Do(func() {
		err = s.sub.Unsubscribe()
	})
	return err
}
