package workers

import (
	"context"
	"log/slog"
	"testing"

	"talk-lab/domain/event"

	"github.com/stretchr/testify/require"
)

func TestTelemetryWorker_RunsHandlers(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	counter := event.NewCounter()
	hits := event.NewCounter()
	telemetry := make(chan event.DomainEvent, 2)
	worker := NewTelemetryWorker(log, telemetry, []event.Handler{
		event.NewActivityHandler(log, counter),
		event.NewCensoredHandler(log, hits),
	})

	// Given two events then a closed channel
	telemetry <- event.SanitizedMessage{Channel: "general", CensoredWords: []string{"darn"}}
	telemetry <- event.QueueUpdated{Channel: "general"}
	close(telemetry)

	// When the worker drains it
	req.NoError(worker.Run(context.Background()))

	// Then every handler saw every event
	req.Equal(uint64(1), counter.Get(string(event.SanitizedMessageKind)))
	req.Equal(uint64(1), counter.Get(string(event.QueueUpdatedKind)))
	req.Equal(uint64(1), hits.Get("darn"))
}
