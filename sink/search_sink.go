package sink

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"talk-lab/contract"
	"talk-lab/domain"
	"talk-lab/domain/event"
	"talk-lab/repositories"
)

// SearchSink feeds the full text index. Messages are buffered and indexed in
// batches, flushed either when maxBatch is reached or after flushTimeout.
type SearchSink struct {
	mu           sync.Mutex
	timer        *time.Timer
	index        repositories.IMessageIndex
	log          *slog.Logger
	messages     []domain.Message
	maxBatch     int
	flushTimeout time.Duration
}

var _ contract.EventSink = (*SearchSink)(nil)

func NewSearchSink(index repositories.IMessageIndex, log *slog.Logger, maxBatch int, flushTimeout time.Duration) *SearchSink {
	return &SearchSink{
		index:        index,
		log:          log,
		maxBatch:     max(maxBatch, 1),
		flushTimeout: flushTimeout,
	}
}

func (s *SearchSink) Consume(_ context.Context, e event.DomainEvent) error {
	evt, ok := e.(event.SanitizedMessage)
	if !ok {
		return nil
	}

	s.mu.Lock()
	s.messages = append(s.messages, evt.ToMessage())

	// First message of a batch arms the timer, so a quiet channel is still indexed
	if len(s.messages) == 1 && s.timer == nil {
		s.timer = time.AfterFunc(s.flushTimeout, func() {
			if err := s.Flush(); err != nil {
				s.log.Error("Timeout flush failed", "error", err)
			}
		})
	}
	isFull := len(s.messages) >= s.maxBatch
	s.mu.Unlock()

	if isFull {
		return s.Flush()
	}
	return nil
}

// Flush swaps the buffer out under the lock and indexes it outside.
func (s *SearchSink) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if len(s.messages) == 0 {
		s.mu.Unlock()
		return nil
	}
	batch := s.messages
	s.messages = make([]domain.Message, 0, s.maxBatch)
	s.mu.Unlock()

	if err := s.index.IndexBatch(batch); err != nil {
		return fmt.Errorf("failed to index batch: %w", err)
	}
	s.log.Debug("Batch indexed", "count", len(batch))
	return nil
}
