package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"talk-lab/contract"
	"talk-lab/domain"
	"talk-lab/domain/event"
	"talk-lab/errors"
	"talk-lab/observability"
)

// Broadcaster delivers one event to the sinks of a channel's members.
//
// Delivery is at-most-once: a sink that fails or is full loses the event,
// nothing is retried or buffered for later. A failing sink never prevents
// delivery to the others.
type Broadcaster struct {
	log         *slog.Logger
	registry    contract.IRegistry
	monitoring  *observability.MonitoringManager
	sinkTimeout time.Duration
}

var _ contract.IBroadcaster = (*Broadcaster)(nil)

func NewBroadcaster(log *slog.Logger, registry contract.IRegistry,
	monitoring *observability.MonitoringManager, sinkTimeout time.Duration) *Broadcaster {
	return &Broadcaster{
		log:         log,
		registry:    registry,
		monitoring:  monitoring,
		sinkTimeout: sinkTimeout,
	}
}

// Publish sends evt to every current member of its channel.
func (b *Broadcaster) Publish(ctx context.Context, evt event.DomainEvent) contract.PublishResult {
	return b.deliver(ctx, evt, b.registry.GetSinksForChannel(evt.ChannelID()))
}

// PublishExcept sends evt to every current member of its channel but one.
func (b *Broadcaster) PublishExcept(ctx context.Context, evt event.DomainEvent, excluded domain.ParticipantID) contract.PublishResult {
	return b.deliver(ctx, evt, b.registry.GetSinksForChannelExcept(evt.ChannelID(), excluded))
}

// SendTo sends evt to one participant, whatever channel they are in.
func (b *Broadcaster) SendTo(ctx context.Context, participantID domain.ParticipantID, evt event.DomainEvent) error {
	sink, ok := b.registry.SinkOf(participantID)
	if !ok {
		return errors.ErrNotMember
	}
	result := b.deliver(ctx, evt, []contract.EventSink{sink})
	if result.Dropped > 0 {
		return errors.ErrBackpressure
	}
	return nil
}

func (b *Broadcaster) deliver(ctx context.Context, evt event.DomainEvent, sinks []contract.EventSink) contract.PublishResult {
	var result contract.PublishResult
	for _, sink := range sinks {
		if err := b.consume(ctx, sink, evt); err != nil {
			result.Dropped++
			b.log.Warn(fmt.Sprintf("Event %s dropped for one member of channel %s", evt.Kind(), evt.ChannelID()),
				"error", err)
			continue
		}
		result.Delivered++
	}
	if b.monitoring != nil {
		b.monitoring.AddDeliveries(result.Delivered, result.Dropped)
	}
	return result
}

func (b *Broadcaster) consume(ctx context.Context, sink contract.EventSink, evt event.DomainEvent) error {
	sinkCtx, cancel := context.WithTimeout(ctx, b.sinkTimeout)
	defer cancel()
	return sink.Consume(sinkCtx, evt)
}
