package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"talk-lab/contract"
	"talk-lab/domain"
	"talk-lab/errors"
	"talk-lab/repositories"
)

const defaultSearchLimit = 20

type HistoryService struct {
	channels       repositories.IChannelRepository
	messages       repositories.IMessageRepository
	index          repositories.IMessageIndex
	log            *slog.Logger
	maxSearchLimit int
}

var _ contract.IHistoryService = (*HistoryService)(nil)

func NewHistoryService(channels repositories.IChannelRepository, messages repositories.IMessageRepository,
	index repositories.IMessageIndex, log *slog.Logger, maxSearchLimit int) *HistoryService {
	return &HistoryService{
		channels:       channels,
		messages:       messages,
		index:          index,
		log:            log,
		maxSearchLimit: maxSearchLimit,
	}
}

// FetchHistory returns one chronological page and the cursor of the next (older) one.
func (s *HistoryService) FetchHistory(_ context.Context, cmd domain.GetMessageCommand) ([]domain.Message, *string, error) {
	if _, err := s.channels.Get(cmd.ChannelID); err != nil {
		return nil, nil, err
	}
	messages, cursor, err := s.messages.GetMessages(cmd.ChannelID, cmd.Cursor)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch history of %s: %w", cmd.ChannelID, err)
	}
	return messages, cursor, nil
}

func (s *HistoryService) Search(ctx context.Context, cmd domain.SearchMessageCommand) ([]domain.Message, error) {
	query := strings.TrimSpace(cmd.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty search query", errors.ErrInvalidPayload)
	}
	limit := cmd.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if s.maxSearchLimit > 0 {
		limit = min(limit, s.maxSearchLimit)
	}
	if _, err := s.channels.Get(cmd.ChannelID); err != nil {
		return nil, err
	}
	s.log.Debug("Searching messages", "channel_id", cmd.ChannelID, "query", query, "limit", limit)
	return s.index.Search(ctx, cmd.ChannelID, query, limit)
}
