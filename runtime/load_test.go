package runtime_test

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"talk-lab/domain"
	"talk-lab/mocks"
	"talk-lab/observability"
	"talk-lab/runtime"
	"talk-lab/runtime/workers"
	"talk-lab/sink"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrchestrator_LoadTest(t *testing.T) {
	if testing.Short() {
		t.Skip("load test")
	}
	req := require.New(t)
	// 1. Minimal setup, the repository is mocked so Badger does not bound the throughput
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctrl := gomock.NewController(t)
	mockMessageRepo := mocks.NewMockIMessageRepository(ctrl)
	mockDirectory := mocks.NewMockChannelDirectory(ctrl)
	mockMessageRepo.EXPECT().StoreMessage(gomock.Any()).Do(
		func(_ domain.Message) {
			time.Sleep(2 * time.Millisecond)
		},
	).Return(nil).AnyTimes()
	mockDirectory.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	log := slog.New(slog.DiscardHandler)
	monitoring := observability.NewMonitoringManager(log, 50*time.Millisecond)
	registry := runtime.NewRegistry()
	broadcaster := runtime.NewBroadcaster(log, registry, monitoring, 100*time.Millisecond)
	coordinator := runtime.NewCoordinator(log, registry, broadcaster)
	relay := runtime.NewRelay(log, registry, coordinator, broadcaster, monitoring, 4096)

	o := runtime.NewOrchestrator(log, workers.NewSupervisor(log, 100*time.Millisecond),
		registry, coordinator, relay, broadcaster, mockDirectory, monitoring,
		runtime.Settings{
			BufferSize:       1000,
			SinkTimeout:      100 * time.Millisecond,
			MetricInterval:   50 * time.Millisecond,
			CharReplacement:  '*',
			MaxContentLength: 500,
		})
	o.Add(sink.NewDiskSink(mockMessageRepo, monitoring, log))

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := o.Start(ctx); err != nil {
			fmt.Printf("Orchestrator failed to start: %v\n", err)
		}
	}()
	// Workers must be gone before the mock controller is finished
	defer func() {
		cancel()
		<-done
	}()
	time.Sleep(100 * time.Millisecond) // let the workers start

	numClients := 100
	messagesPerClient := 200
	channels := []domain.ChannelID{"general", "music", "science", "sports"}
	for i := range numClients {
		participant := domain.Participant{ID: domain.ParticipantID(fmt.Sprintf("user-%d", i)), Name: fmt.Sprintf("User %d", i)}
		_, err := o.Join(ctx, channels[i%len(channels)], participant, "", sink.NewSessionSink(256))
		req.NoError(err)
	}

	// 2. Counters
	var successCount atomic.Uint64
	var failureCount atomic.Uint64

	start := time.Now()
	var wg sync.WaitGroup

	// 3. Traffic
	for i := range numClients {
		wg.Add(1)
		go func(clientID int) {
			defer wg.Done()
			participantID := domain.ParticipantID(fmt.Sprintf("user-%d", clientID))
			channelID := channels[clientID%len(channels)]
			for range messagesPerClient {
				if err := o.PostMessage(ctx, channelID, participantID, "this is a load test message"); err != nil {
					failureCount.Add(1)
				} else {
					successCount.Add(1)
				}
			}
		}(i)
	}

	wg.Wait()
	duration := time.Since(start)

	req.Equal(uint64(numClients*messagesPerClient), successCount.Load()+failureCount.Load())
	req.Positive(successCount.Load())

	// 4. Results
	fmt.Printf("\n--- LOAD TEST RESULTS ---\n")
	fmt.Printf("Total duration    : %v\n", duration)
	fmt.Printf("Accepted messages : %d\n", successCount.Load())
	fmt.Printf("Rejected messages : %d (Backpressure)\n", failureCount.Load())
	fmt.Printf("Throughput        : %.2f msg/sec\n", float64(successCount.Load())/duration.Seconds())
	fmt.Printf("-------------------------\n")
}
