package event

import (
	"fmt"
	"log/slog"
)

// CensoredHandler keeps the number of hits per censored word.
type CensoredHandler struct {
	log *slog.Logger
	hit *Counter
}

func NewCensoredHandler(log *slog.Logger, hit *Counter) *CensoredHandler {
	return &CensoredHandler{log: log, hit: hit}
}

func (h *CensoredHandler) Handle(evt DomainEvent) {
	switch e := evt.(type) {
	case SanitizedMessage:
		for _, word := range e.CensoredWords {
			h.hit.Increment(word)
		}
		if len(e.CensoredWords) > 0 {
			h.log.Debug(fmt.Sprintf("%d word(s) censored in channel %s", len(e.CensoredWords), e.Channel))
		}
	}
}
