package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"talk-lab/contract"
	"talk-lab/domain/event"
)

// EventFanout delivers moderated events to the channel members through the
// broadcaster, and to the permanent sinks (history, search index).
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering across channels, durability, or retries. EventFanout is not a message broker.
type EventFanout struct {
	log            *slog.Logger
	permanentSinks []contract.EventSink
	broadcaster    contract.IBroadcaster
	domainEvents   chan event.DomainEvent
	telemetry      chan event.DomainEvent
	sinkTimeout    time.Duration
}

var _ contract.Worker = (*EventFanout)(nil)

func NewEventFanout(log *slog.Logger, permanentSinks []contract.EventSink,
	broadcaster contract.IBroadcaster, domainEvents, telemetry chan event.DomainEvent,
	sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:            log,
		permanentSinks: permanentSinks,
		broadcaster:    broadcaster,
		domainEvents:   domainEvents,
		telemetry:      telemetry,
		sinkTimeout:    sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt, ok := <-w.domainEvents:
			if !ok {
				return nil
			}
			w.Fanout(ctx, evt)
			select {
			case w.telemetry <- evt:
			default:
				w.log.Debug("Observability telemetry event lost")
			}
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// Fanout sends the event to its channel members first, then to every permanent sink.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	result := w.broadcaster.Publish(ctx, evt)
	w.log.Debug("Event fanned out", "kind", evt.Kind(), "channel_id", evt.ChannelID(),
		"delivered", result.Delivered, "dropped", result.Dropped)

	for _, sink := range w.permanentSinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Permanent sink failed", "kind", evt.Kind(), "sink", fmt.Sprintf("%T", sink), "error", err)
		}
		cancel()
	}
}
