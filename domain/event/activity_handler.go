package event

import (
	"log/slog"
)

// ActivityHandler counts every event that went through the fanout, per kind.
type ActivityHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewActivityHandler(log *slog.Logger, counter *Counter) *ActivityHandler {
	return &ActivityHandler{log: log, counter: counter}
}

func (h *ActivityHandler) Handle(evt DomainEvent) {
	h.counter.Increment(string(evt.Kind()))
}
