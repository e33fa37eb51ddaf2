package services

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"talk-lab/auth"
	"talk-lab/domain"
	"talk-lab/errors"
	"talk-lab/mocks"
	"talk-lab/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChannelService_CreateChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIChannelRepository(ctrl)
	mockMembers := mocks.NewMockMemberCounter(ctrl)
	svc := NewChannelService(mockRepo, mockMembers, slog.Default())
	ctx := context.Background()

	t.Run("should create an open channel with the default topic", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().FindByName("Jazz").Return(domain.Channel{}, false, nil)
		mockRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(channel domain.Channel) error {
			req.Equal("Jazz", channel.Name)
			req.Equal(domain.TopicGeneral, channel.Topic)
			req.False(channel.IsProtected())
			req.NotEmpty(channel.ID)
			return nil
		})

		id, err := svc.CreateChannel(ctx, domain.CreateChannelCommand{Name: "  Jazz "})

		req.NoError(err)
		req.NotEmpty(id)
	})

	t.Run("should hash the password of a protected channel", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().FindByName("Vault").Return(domain.Channel{}, false, nil)
		mockRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(channel domain.Channel) error {
			req.True(channel.IsProtected())
			req.NotContains(string(channel.PasswordHash), "s3cret")
			match, err := auth.ComparePassword("s3cret", channel.PasswordHash)
			req.NoError(err)
			req.True(match)
			return nil
		})

		_, err := svc.CreateChannel(ctx, domain.CreateChannelCommand{Name: "Vault", Topic: domain.TopicBusiness, Password: "s3cret"})

		req.NoError(err)
	})

	t.Run("should reject an invalid request before touching storage", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().Save(gomock.Any()).Times(0)

		_, err := svc.CreateChannel(ctx, domain.CreateChannelCommand{Name: "Jazz", Topic: "Cooking"})
		req.ErrorIs(err, errors.ErrInvalidPayload)

		_, err = svc.CreateChannel(ctx, domain.CreateChannelCommand{Name: "   "})
		req.ErrorIs(err, errors.ErrInvalidPayload)
	})

	t.Run("should reject a duplicate name", func(t *testing.T) {
		req := require.New(t)
		mockRepo.EXPECT().FindByName("General").Return(domain.Channel{ID: "g", Name: "general"}, true, nil)
		mockRepo.EXPECT().Save(gomock.Any()).Times(0)

		_, err := svc.CreateChannel(ctx, domain.CreateChannelCommand{Name: "General"})

		req.ErrorIs(err, errors.ErrInvalidPayload)
	})
}

func TestChannelService_ListChannels_With_Member_Count(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockIChannelRepository(ctrl)
	mockMembers := mocks.NewMockMemberCounter(ctrl)
	svc := NewChannelService(mockRepo, mockMembers, slog.Default())
	now := time.Now().UTC()

	mockRepo.EXPECT().List().Return([]domain.Channel{
		{ID: "a", Name: "General", Topic: domain.TopicGeneral, CreatedAt: now},
		{ID: "b", Name: "Vault", Topic: domain.TopicBusiness, PasswordHash: []byte("hash"), CreatedAt: now},
	}, nil)
	mockMembers.EXPECT().MemberCount(domain.ChannelID("a")).Return(3)
	mockMembers.EXPECT().MemberCount(domain.ChannelID("b")).Return(0)

	summaries, err := svc.ListChannels(context.Background())

	req.NoError(err)
	req.Len(summaries, 2)
	req.Equal(3, summaries[0].ActiveUserCount)
	req.False(summaries[0].Protected)
	req.True(summaries[1].Protected)
	req.Equal(0, summaries[1].ActiveUserCount)
}

func TestChannelService_Authorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockIChannelRepository(ctrl)
	svc := NewChannelService(mockRepo, mocks.NewMockMemberCounter(ctrl), slog.Default())
	ctx := context.Background()
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	vault := domain.Channel{ID: "vault", Name: "Vault", PasswordHash: hash}

	t.Run("open channel needs no password", func(t *testing.T) {
		mockRepo.EXPECT().Get(domain.ChannelID("open")).Return(domain.Channel{ID: "open"}, nil)
		require.NoError(t, svc.Authorize(ctx, "open", ""))
	})

	t.Run("protected channel with the right password", func(t *testing.T) {
		mockRepo.EXPECT().Get(domain.ChannelID("vault")).Return(vault, nil)
		require.NoError(t, svc.Authorize(ctx, "vault", "s3cret"))
	})

	t.Run("protected channel with a wrong password", func(t *testing.T) {
		mockRepo.EXPECT().Get(domain.ChannelID("vault")).Return(vault, nil)
		require.ErrorIs(t, svc.Authorize(ctx, "vault", "guess"), errors.ErrInvalidPassword)
	})

	t.Run("unknown channel", func(t *testing.T) {
		mockRepo.EXPECT().Get(domain.ChannelID("nowhere")).Return(domain.Channel{}, errors.ErrChannelNotFound)
		require.ErrorIs(t, svc.Authorize(ctx, "nowhere", ""), errors.ErrChannelNotFound)
	})
}

func TestChannelService_EnsureChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockIChannelRepository(ctrl)
	svc := NewChannelService(mockRepo, mocks.NewMockMemberCounter(ctrl), slog.Default())
	ctx := context.Background()

	t.Run("seeds an empty directory once per name", func(t *testing.T) {
		mockRepo.EXPECT().List().Return(nil, nil)
		mockRepo.EXPECT().FindByName(gomock.Any()).Return(domain.Channel{}, false, nil).Times(2)
		mockRepo.EXPECT().Save(gomock.Any()).Return(nil).Times(2)

		require.NoError(t, svc.EnsureChannels(ctx, []string{"General", "Music", "General", ""}))
	})

	t.Run("leaves a populated directory untouched", func(t *testing.T) {
		mockRepo.EXPECT().List().Return([]domain.Channel{{ID: "a", Name: "General"}}, nil)
		mockRepo.EXPECT().Save(gomock.Any()).Times(0)

		require.NoError(t, svc.EnsureChannels(ctx, []string{"Music"}))
	})
}

func TestChannelService_CreateChannel_Concurrent_Same_Name(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()
	repository := repositories.NewChannelRepository(db, slog.Default())
	svc := NewChannelService(repository, nil, slog.Default())

	// When many clients create the same channel at once
	const attempts = 8
	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = svc.CreateChannel(context.Background(), domain.CreateChannelCommand{Name: "Jazz"})
		}()
	}
	wg.Wait()

	// Then exactly one wins and the others are told the name is taken
	succeeded := lo.CountBy(results, func(err error) bool { return err == nil })
	req.Equal(1, succeeded)
	for _, err := range lo.Compact(results) {
		req.ErrorIs(err, errors.ErrInvalidPayload)
	}
	channels, err := repository.List()
	req.NoError(err)
	req.Len(channels, 1)
}
