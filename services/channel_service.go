package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"talk-lab/auth"
	"talk-lab/contract"
	"talk-lab/domain"
	"talk-lab/errors"
	"talk-lab/repositories"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ChannelService is the channel directory: listing, creation and the
// password check performed before a join.
type ChannelService struct {
	repository repositories.IChannelRepository
	members    contract.MemberCounter
	log        *slog.Logger
	// createMu keeps the unique-name check and the save of a creation together
	createMu sync.Mutex
}

var _ contract.IChannelService = (*ChannelService)(nil)

func NewChannelService(repository repositories.IChannelRepository, members contract.MemberCounter, log *slog.Logger) *ChannelService {
	return &ChannelService{repository: repository, members: members, log: log}
}

// ListChannels returns the directory with the live member count of each channel.
func (s *ChannelService) ListChannels(_ context.Context) ([]domain.ChannelSummary, error) {
	channels, err := s.repository.List()
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	return lo.Map(channels, func(channel domain.Channel, _ int) domain.ChannelSummary {
		return domain.ChannelSummary{
			ID:              channel.ID,
			Name:            channel.Name,
			Description:     channel.Description,
			Topic:           channel.Topic,
			Protected:       channel.IsProtected(),
			ActiveUserCount: s.members.MemberCount(channel.ID),
			CreatedAt:       channel.CreatedAt,
		}
	}), nil
}

func (s *ChannelService) CreateChannel(_ context.Context, cmd domain.CreateChannelCommand) (domain.ChannelID, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Description = strings.TrimSpace(cmd.Description)
	if err := auth.Validate(cmd); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	if cmd.Topic == "" {
		cmd.Topic = domain.TopicGeneral
	}

	channel := domain.Channel{
		ID:          domain.ChannelID(uuid.NewString()),
		Name:        cmd.Name,
		Description: cmd.Description,
		Topic:       cmd.Topic,
		CreatedAt:   time.Now().UTC(),
	}
	if cmd.Password != "" {
		var err error
		if channel.PasswordHash, err = auth.HashPassword(cmd.Password); err != nil {
			return "", fmt.Errorf("hashing failed: %w", err)
		}
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()
	_, taken, err := s.repository.FindByName(cmd.Name)
	if err != nil {
		return "", err
	}
	if taken {
		return "", fmt.Errorf("%w: channel %q already exists", errors.ErrInvalidPayload, cmd.Name)
	}
	if err = s.repository.Save(channel); err != nil {
		return "", err
	}
	s.log.Info(fmt.Sprintf("Channel %s created", channel.Name), "channel_id", channel.ID, "protected", channel.IsProtected())
	return channel.ID, nil
}

// Authorize lets anyone into an open channel, and checks the password of a protected one.
func (s *ChannelService) Authorize(_ context.Context, channelID domain.ChannelID, password string) error {
	channel, err := s.repository.Get(channelID)
	if err != nil {
		return err
	}
	if !channel.IsProtected() {
		return nil
	}
	match, err := auth.ComparePassword(password, channel.PasswordHash)
	if err != nil {
		return fmt.Errorf("verify password of %s: %w", channelID, err)
	}
	if !match {
		return errors.ErrInvalidPassword
	}
	return nil
}

// EnsureChannels seeds an empty directory with open channels of the given names.
func (s *ChannelService) EnsureChannels(ctx context.Context, names []string) error {
	existing, err := s.repository.List()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, name := range lo.Uniq(lo.Compact(names)) {
		if _, err = s.CreateChannel(ctx, domain.CreateChannelCommand{Name: name}); err != nil {
			return fmt.Errorf("seed channel %q: %w", name, err)
		}
	}
	return nil
}
