package sink_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"talk-lab/domain"
	"talk-lab/mocks"
	"talk-lab/sink"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSearchSink_Consume(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIndex := mocks.NewMockIMessageIndex(ctrl)
	// Silencing logs for clean test output
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("Flush triggered by size limit", func(t *testing.T) {
		maxSize := 3
		s := sink.NewSearchSink(mockIndex, logger, maxSize, 10*time.Second)

		mockIndex.EXPECT().
			IndexBatch(gomock.Any()).
			DoAndReturn(func(messages []domain.Message) error {
				req.Len(messages, maxSize)
				return nil
			}).Times(1)

		for range maxSize {
			req.NoError(s.Consume(ctx, sanitized("saxophone")))
		}
	})

	t.Run("Flush triggered by timeout", func(t *testing.T) {
		timeout := 50 * time.Millisecond
		s := sink.NewSearchSink(mockIndex, logger, 100, timeout)
		done := make(chan struct{})

		mockIndex.EXPECT().
			IndexBatch(gomock.Any()).
			DoAndReturn(func(messages []domain.Message) error {
				req.Len(messages, 1)
				close(done)
				return nil
			}).Times(1)

		req.NoError(s.Consume(ctx, sanitized("saxophone")))

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("timer flush never happened")
		}
	})

	t.Run("Concurrent access safety", func(t *testing.T) {
		numWorkers := 10
		eventsPerWorker := 10
		total := numWorkers * eventsPerWorker
		s := sink.NewSearchSink(mockIndex, logger, total, 10*time.Second)

		var mu sync.Mutex
		indexed := 0
		mockIndex.EXPECT().
			IndexBatch(gomock.Any()).
			DoAndReturn(func(messages []domain.Message) error {
				mu.Lock()
				defer mu.Unlock()
				indexed += len(messages)
				return nil
			}).AnyTimes()

		var wg sync.WaitGroup
		for range numWorkers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range eventsPerWorker {
					_ = s.Consume(ctx, sanitized("saxophone"))
				}
			}()
		}
		wg.Wait()
		req.NoError(s.Flush())

		mu.Lock()
		defer mu.Unlock()
		req.Equal(total, indexed)
	})

	t.Run("Empty flush is a no-op", func(t *testing.T) {
		s := sink.NewSearchSink(mockIndex, logger, 10, time.Second)
		req.NoError(s.Flush())
	})
}
