package sink

import (
	"context"
	"fmt"
	"log/slog"

	"talk-lab/contract"
	"talk-lab/domain/event"
	"talk-lab/observability"
	"talk-lab/repositories"
)

// DiskSink keeps the history of moderated messages.
type DiskSink struct {
	repository repositories.IMessageRepository
	monitoring *observability.MonitoringManager
	log        *slog.Logger
}

var _ contract.EventSink = DiskSink{}

func NewDiskSink(repository repositories.IMessageRepository, monitoring *observability.MonitoringManager, log *slog.Logger) DiskSink {
	return DiskSink{repository: repository, monitoring: monitoring, log: log}
}

func (d DiskSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.SanitizedMessage:
		if err := d.repository.StoreMessage(evt.ToMessage()); err != nil {
			return fmt.Errorf("store message %s: %w", evt.ID, err)
		}
		if d.monitoring != nil {
			d.monitoring.IncrMessagesStored()
		}
		return nil
	default:
		d.log.Debug(fmt.Sprintf("Not persisted event : %s", e.Kind()))
		return nil
	}
}
