package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"talk-lab/contract"
	"talk-lab/domain/event"
	"talk-lab/errors"
	"talk-lab/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventFanout_Fanout(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBroadcaster := mocks.NewMockIBroadcaster(ctrl)
	diskSink := mocks.NewMockEventSink(ctrl)
	searchSink := mocks.NewMockEventSink(ctrl)
	fanout := NewEventFanout(log, []contract.EventSink{diskSink, searchSink},
		mockBroadcaster, nil, nil, time.Second)
	evt := event.SanitizedMessage{Channel: "general", Content: "hi"}

	// Then members and both permanent sinks get the event once
	mockBroadcaster.EXPECT().Publish(gomock.Any(), evt).
		Return(contract.PublishResult{Delivered: 2}).Times(1)
	diskSink.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)
	searchSink.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)

	// When an event is handled
	fanout.Fanout(context.Background(), evt)
}

func TestEventFanout_FailingSinkDoesNotBlockOthers(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBroadcaster := mocks.NewMockIBroadcaster(ctrl)
	slowSink := mocks.NewMockEventSink(ctrl)
	otherSink := mocks.NewMockEventSink(ctrl)
	fanout := NewEventFanout(log, []contract.EventSink{slowSink, otherSink},
		mockBroadcaster, nil, nil, 20*time.Millisecond)

	mockBroadcaster.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(contract.PublishResult{})
	// Given a sink slower than the timeout
	slowSink.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.DomainEvent) error {
			<-ctx.Done()
			return ctx.Err()
		}).Times(1)
	otherSink.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(errors.ErrBackpressure).Times(1)

	fanout.Fanout(context.Background(), event.SanitizedMessage{Channel: "general"})
}

func TestEventFanout_Run_ForwardsToTelemetry(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBroadcaster := mocks.NewMockIBroadcaster(ctrl)
	domainEvents := make(chan event.DomainEvent, 1)
	telemetry := make(chan event.DomainEvent, 1)
	fanout := NewEventFanout(log, nil, mockBroadcaster, domainEvents, telemetry, time.Second)
	evt := event.ReactionSent{Channel: "general", Type: "love"}

	mockBroadcaster.EXPECT().Publish(gomock.Any(), evt).Return(contract.PublishResult{}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fanout.Run(ctx) }()

	domainEvents <- evt

	select {
	case got := <-telemetry:
		req.Equal(evt, got)
	case <-time.After(time.Second):
		req.Fail("telemetry event not forwarded")
	}
}
