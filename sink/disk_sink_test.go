package sink_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"talk-lab/domain/event"
	"talk-lab/mocks"
	"talk-lab/observability"
	"talk-lab/sink"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sanitized(content string) event.SanitizedMessage {
	return event.SanitizedMessage{
		ID:       uuid.New(),
		Channel:  "general",
		AuthorID: "alice",
		Author:   "Alice",
		Content:  content,
		Language: "en",
		At:       time.Now().UTC(),
	}
}

func TestDiskSink_Consume_Stores_Sanitized_Messages(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockIMessageRepository(ctrl)
	monitoring := observability.NewMonitoringManager(slog.Default(), time.Second)
	s := sink.NewDiskSink(mockRepo, monitoring, slog.Default())
	evt := sanitized("hello")

	mockRepo.EXPECT().StoreMessage(evt.ToMessage()).Return(nil).Times(1)

	req.NoError(s.Consume(context.Background(), evt))
	req.Equal(uint64(1), monitoring.GetLatest().MessagesStored)
}

func TestDiskSink_Consume_Ignores_Other_Events(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockIMessageRepository(ctrl)
	s := sink.NewDiskSink(mockRepo, nil, slog.Default())

	mockRepo.EXPECT().StoreMessage(gomock.Any()).Times(0)

	req.NoError(s.Consume(context.Background(), event.HandRaised{Channel: "general"}))
}

func TestDiskSink_Consume_Repository_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockIMessageRepository(ctrl)
	s := sink.NewDiskSink(mockRepo, nil, slog.Default())

	mockRepo.EXPECT().StoreMessage(gomock.Any()).Return(fmt.Errorf("disk full"))

	req.Error(s.Consume(context.Background(), sanitized("hello")))
}
