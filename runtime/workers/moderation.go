package workers

import (
	"context"
	"log/slog"

	"talk-lab/contract"
	"talk-lab/domain/event"
	"talk-lab/moderation"
	"talk-lab/observability"

	"github.com/abadojack/whatlanggo"
)

// ModerationWorker turns raw chat messages into sanitized ones:
// forbidden words masked, language detected. Other events pass through.
type ModerationWorker struct {
	moderator      moderation.Moderator
	moderationChan chan event.DomainEvent
	events         chan event.DomainEvent
	monitoring     *observability.MonitoringManager
	log            *slog.Logger
}

var _ contract.Worker = (*ModerationWorker)(nil)

func NewModerationWorker(moderator moderation.Moderator,
	moderationChan, events chan event.DomainEvent,
	monitoring *observability.MonitoringManager, log *slog.Logger) *ModerationWorker {
	return &ModerationWorker{
		moderator:      moderator,
		moderationChan: moderationChan,
		events:         events,
		monitoring:     monitoring,
		log:            log,
	}
}

func (w ModerationWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping moderation worker")
			return nil
		case e, ok := <-w.moderationChan:
			if !ok {
				w.log.Debug("Moderation channel is closed")
				return nil
			}
			out := e
			if evt, isMessage := e.(event.MessagePosted); isMessage {
				out = w.toSanitizedEvent(evt)
			}
			select {
			case <-ctx.Done():
				return nil
			case w.events <- out:
			}
		}
	}
}

func (w ModerationWorker) toSanitizedEvent(evt event.MessagePosted) event.SanitizedMessage {
	lang := whatlanggo.Detect(evt.Content).Lang.Iso6391()

	sanitized, foundWords := w.moderator.Censor(evt.Content)
	if len(foundWords) > 0 {
		w.log.Debug("Message censored", "channel_id", evt.Channel,
			"author_id", evt.AuthorID, "words", len(foundWords))
		if w.monitoring != nil {
			w.monitoring.IncrMessagesCensored()
		}
	}

	return event.SanitizedMessage{
		ID:            evt.ID,
		Channel:       evt.Channel,
		AuthorID:      evt.AuthorID,
		Author:        evt.Author,
		Content:       sanitized,
		Language:      lang,
		CensoredWords: foundWords,
		At:            evt.At,
	}
}
