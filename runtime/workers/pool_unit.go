package workers

import (
	"context"
	"fmt"
	"log/slog"

	"talk-lab/contract"
	"talk-lab/domain"
	"talk-lab/domain/event"

	"github.com/google/uuid"
)

// Ensure *PoolUnitWorker implements the contract.Worker interface at compile time.
var _ contract.Worker = (*PoolUnitWorker)(nil)

// PoolUnitWorker turns chat commands into raw domain events.
// Several of them share the same command channel.
type PoolUnitWorker struct {
	commands chan domain.Command
	events   chan event.DomainEvent
	log      *slog.Logger
}

func NewPoolUnitWorker(
	commands chan domain.Command,
	events chan event.DomainEvent,
	log *slog.Logger) *PoolUnitWorker {
	return &PoolUnitWorker{
		commands: commands,
		events:   events,
		log:      log,
	}
}

func (w *PoolUnitWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping pool unit worker")
			return nil
		case cmd, ok := <-w.commands:
			if !ok {
				w.log.Debug("Command channel is closed")
				return nil
			}
			postCmd, ok := cmd.(domain.PostMessageCommand)
			if !ok {
				w.log.Debug(fmt.Sprintf("Unsupported command %T for channel %s", cmd, cmd.Channel()))
				continue
			}
			select {
			case <-ctx.Done():
				return nil
			case w.events <- toEvent(postCmd):
			}
		}
	}
}

func toEvent(cmd domain.PostMessageCommand) event.MessagePosted {
	return event.MessagePosted{
		ID:       uuid.New(),
		Channel:  cmd.ChannelID,
		AuthorID: cmd.SenderID,
		Author:   cmd.SenderName,
		Content:  cmd.Content,
		At:       cmd.CreatedAt,
	}
}
