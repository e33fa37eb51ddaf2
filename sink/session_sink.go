package sink

import (
	"context"

	"talk-lab/contract"
	"talk-lab/domain/event"
	"talk-lab/errors"
)

// SessionSink is the outbound queue of one connected participant.
// The session's write pump drains Events and serializes them to the wire.
type SessionSink struct {
	events chan event.DomainEvent
}

var _ contract.EventSink = (*SessionSink)(nil)

func NewSessionSink(bufferSize int) *SessionSink {
	return &SessionSink{events: make(chan event.DomainEvent, bufferSize)}
}

// Consume never blocks the publisher: a full buffer drops the event.
func (s *SessionSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.ErrBackpressure
	}
}

func (s *SessionSink) Events() <-chan event.DomainEvent {
	return s.events
}

func (s *SessionSink) Len() int {
	return len(s.events)
}
