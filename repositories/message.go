//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"talk-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	GetMessages(channelID domain.ChannelID, cursor *string) ([]domain.Message, *string, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

// StoreMessage persists a message in BadgerDB.
// The key is formatted as "msg:{channel_id}:{timestamp_padded}:{uuid}":
//  1. 19-digit zero padding keeps lexicographical order chronological.
//  2. The UUID separates two messages stored at the same nanosecond.
func (m MessageRepository) StoreMessage(message domain.Message) error {
	key := messageKey(message)
	value, err := encodeMessage(message)
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func messageKey(message domain.Message) string {
	return fmt.Sprintf("msg:%s:%019d:%s", message.ChannelID, message.CreatedAt.UnixNano(), message.ID)
}

// GetMessages walks the channel backwards from the cursor (or from the newest
// message) and returns one page in chronological order.
// The returned cursor points at the oldest message of the page, it is nil
// once the beginning of the channel is reached.
func (m MessageRepository) GetMessages(channelID domain.ChannelID, cursor *string) ([]domain.Message, *string, error) {
	var values [][]byte
	var lastKey string
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("msg:%s:", channelID)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Past the newest possible timestamp, reverse iteration lands on the last message
			seekKey = append([]byte(prefixStr), []byte("9999999999999999999")...)
		default:
			seekKey = append([]byte(prefixStr), []byte(*cursor)...)
		}

		it.Seek(seekKey)

		// The cursor itself was already served by the previous page
		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()) == string(seekKey) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(values) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", *m.limitMessages))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[prefixLen:])
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	messages := make([]domain.Message, 0, len(values))
	for _, value := range values {
		message, err := decodeMessage(value)
		if err != nil {
			return nil, nil, err
		}
		messages = append(messages, message)
	}
	slices.Reverse(messages)

	if m.limitMessages == nil || len(messages) < *m.limitMessages {
		return messages, nil, nil
	}
	return messages, &lastKey, nil
}

func encodeMessage(message domain.Message) ([]byte, error) {
	value, err := structpb.NewStruct(map[string]any{
		"id":          message.ID.String(),
		"channel_id":  string(message.ChannelID),
		"sender_id":   string(message.SenderID),
		"sender_name": message.SenderName,
		"content":     message.Content,
		"language":    message.Language,
		"created_at":  message.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(value)
}

func decodeMessage(bytes []byte) (domain.Message, error) {
	var value structpb.Struct
	if err := proto.Unmarshal(bytes, &value); err != nil {
		return domain.Message{}, err
	}
	fields := value.GetFields()
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return domain.Message{}, err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"].GetStringValue())
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:         id,
		ChannelID:  domain.ChannelID(fields["channel_id"].GetStringValue()),
		SenderID:   domain.ParticipantID(fields["sender_id"].GetStringValue()),
		SenderName: fields["sender_name"].GetStringValue(),
		Content:    fields["content"].GetStringValue(),
		Language:   fields["language"].GetStringValue(),
		CreatedAt:  createdAt,
	}, nil
}
