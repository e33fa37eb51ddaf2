package event

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActivityHandler_CountsPerKind(t *testing.T) {
	req := require.New(t)
	counter := NewCounter()
	handler := NewActivityHandler(slog.Default(), counter)

	// When three events of two kinds go through the handler
	handler.Handle(QueueUpdated{Channel: "general"})
	handler.Handle(QueueUpdated{Channel: "general"})
	handler.Handle(SpeakerUpdated{Channel: "general"})

	// Then each kind has its own tally
	req.Equal(uint64(2), counter.Get(string(QueueUpdatedKind)))
	req.Equal(uint64(1), counter.Get(string(SpeakerUpdatedKind)))
	req.Len(counter.All(), 2)
}

func TestCensoredHandler_CountsWords(t *testing.T) {
	req := require.New(t)
	hits := NewCounter()
	handler := NewCensoredHandler(slog.Default(), hits)

	handler.Handle(SanitizedMessage{CensoredWords: []string{"darn", "heck"}})
	handler.Handle(SanitizedMessage{CensoredWords: []string{"darn"}})
	handler.Handle(ReactionSent{Type: "fire"})

	req.Equal(uint64(2), hits.Get("darn"))
	req.Equal(uint64(1), hits.Get("heck"))
	req.Zero(hits.Get("fire"))
}
