package workers

import (
	"context"
	"log/slog"

	"talk-lab/contract"
	"talk-lab/domain/event"
)

// TelemetryWorker feeds every fanned out event to the telemetry handlers.
type TelemetryWorker struct {
	log           *slog.Logger
	telemetryChan chan event.DomainEvent
	handlers      []event.Handler
}

var _ contract.Worker = (*TelemetryWorker)(nil)

func NewTelemetryWorker(log *slog.Logger,
	telemetryChan chan event.DomainEvent,
	handlers []event.Handler) *TelemetryWorker {
	return &TelemetryWorker{
		log:           log,
		telemetryChan: telemetryChan,
		handlers:      handlers,
	}
}

func (w TelemetryWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping telemetry worker")
			return nil
		case evt, ok := <-w.telemetryChan:
			if !ok {
				return nil
			}
			w.handle(evt)
		}
	}
}

func (w TelemetryWorker) handle(evt event.DomainEvent) {
	for _, h := range w.handlers {
		h.Handle(evt)
	}
}
