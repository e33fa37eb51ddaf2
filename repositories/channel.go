//go:generate go run go.uber.org/mock/mockgen -source=channel.go -destination=../mocks/mock_channel_repository.go -package=mocks
package repositories

import (
	"encoding/base64"
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"talk-lab/domain"
	"talk-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const channelPrefix = "channel:"

type IChannelRepository interface {
	Save(channel domain.Channel) error
	Get(channelID domain.ChannelID) (domain.Channel, error)
	List() ([]domain.Channel, error)
	FindByName(name string) (domain.Channel, bool, error)
}

type ChannelRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewChannelRepository(db *badger.DB, log *slog.Logger) ChannelRepository {
	return ChannelRepository{db: db, log: log}
}

// Save upserts the channel under "channel:{id}".
func (c ChannelRepository) Save(channel domain.Channel) error {
	value, err := encodeChannel(channel)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(channelPrefix+string(channel.ID)), value)
	})
}

func (c ChannelRepository) Get(channelID domain.ChannelID) (domain.Channel, error) {
	var channel domain.Channel
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(channelPrefix + string(channelID)))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrChannelNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			channel, err = decodeChannel(value)
			return err
		})
	})
	return channel, err
}

// List returns every channel, oldest first.
func (c ChannelRepository) List() ([]domain.Channel, error) {
	var channels []domain.Channel
	err := c.db.View(func(txn *badger.Txn) error {
		prefix := []byte(channelPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			channel, err := decodeChannel(value)
			if err != nil {
				c.log.Warn("Skipping unreadable channel", "key", string(it.Item().Key()), "error", err)
				continue
			}
			channels = append(channels, channel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortByCreation(channels)
	return channels, nil
}

// FindByName is case insensitive.
func (c ChannelRepository) FindByName(name string) (domain.Channel, bool, error) {
	channels, err := c.List()
	if err != nil {
		return domain.Channel{}, false, err
	}
	channel, ok := lo.Find(channels, func(ch domain.Channel) bool {
		return strings.EqualFold(ch.Name, name)
	})
	return channel, ok, nil
}

func sortByCreation(channels []domain.Channel) {
	slices.SortStableFunc(channels, func(a, b domain.Channel) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}

func encodeChannel(channel domain.Channel) ([]byte, error) {
	value, err := structpb.NewStruct(map[string]any{
		"id":            string(channel.ID),
		"name":          channel.Name,
		"description":   channel.Description,
		"topic":         string(channel.Topic),
		"password_hash": base64.StdEncoding.EncodeToString(channel.PasswordHash),
		"created_at":    channel.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(value)
}

func decodeChannel(bytes []byte) (domain.Channel, error) {
	var value structpb.Struct
	if err := proto.Unmarshal(bytes, &value); err != nil {
		return domain.Channel{}, err
	}
	fields := value.GetFields()
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"].GetStringValue())
	if err != nil {
		return domain.Channel{}, err
	}
	hash, err := base64.StdEncoding.DecodeString(fields["password_hash"].GetStringValue())
	if err != nil {
		return domain.Channel{}, err
	}
	if len(hash) == 0 {
		hash = nil
	}
	return domain.Channel{
		ID:           domain.ChannelID(fields["id"].GetStringValue()),
		Name:         fields["name"].GetStringValue(),
		Description:  fields["description"].GetStringValue(),
		Topic:        domain.Topic(fields["topic"].GetStringValue()),
		PasswordHash: hash,
		CreatedAt:    createdAt,
	}, nil
}
