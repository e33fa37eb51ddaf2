//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_search_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"talk-lab/domain"

	"github.com/blugelabs/bluge"
	"github.com/blugelabs/bluge/search"
	"github.com/google/uuid"
)

const (
	fieldChannel    = "channel_id"
	fieldSenderID   = "sender_id"
	fieldSenderName = "sender_name"
	fieldContent    = "content"
	fieldLanguage   = "language"
	fieldCreatedAt  = "created_at"
)

type IMessageIndex interface {
	Index(message domain.Message) error
	IndexBatch(messages []domain.Message) error
	Search(ctx context.Context, channelID domain.ChannelID, query string, limit int) ([]domain.Message, error)
}

// MessageIndex is the full text index of moderated messages.
type MessageIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageIndex(writer *bluge.Writer, log *slog.Logger) *MessageIndex {
	return &MessageIndex{writer: writer, log: log}
}

func (m *MessageIndex) Index(message domain.Message) error {
	return m.IndexBatch([]domain.Message{message})
}

// IndexBatch applies every document in a single bluge batch.
func (m *MessageIndex) IndexBatch(messages []domain.Message) error {
	batch := bluge.NewBatch()
	for _, message := range messages {
		doc := toDocument(message)
		batch.Update(doc.ID(), doc)
	}
	if err := m.writer.Batch(batch); err != nil {
		return fmt.Errorf("index %d messages: %w", len(messages), err)
	}
	return nil
}

func toDocument(message domain.Message) *bluge.Document {
	return bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewKeywordField(fieldChannel, string(message.ChannelID)).StoreValue()).
		AddField(bluge.NewKeywordField(fieldSenderID, string(message.SenderID)).StoreValue()).
		AddField(bluge.NewKeywordField(fieldSenderName, message.SenderName).StoreValue()).
		AddField(bluge.NewTextField(fieldContent, message.Content).StoreValue()).
		AddField(bluge.NewKeywordField(fieldLanguage, message.Language).StoreValue()).
		AddField(bluge.NewDateTimeField(fieldCreatedAt, message.CreatedAt).StoreValue())
}

// Search matches the query against the content of one channel, best hits first.
func (m *MessageIndex) Search(ctx context.Context, channelID domain.ChannelID, query string, limit int) ([]domain.Message, error) {
	reader, err := m.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			m.log.Warn("Unable to close index reader", "error", err)
		}
	}()

	q := bluge.NewBooleanQuery().
		AddMust(bluge.NewTermQuery(string(channelID)).SetField(fieldChannel)).
		AddMust(bluge.NewMatchQuery(query).SetField(fieldContent))
	request := bluge.NewTopNSearch(limit, q)

	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	var messages []domain.Message
	match, err := iterator.Next()
	for err == nil && match != nil {
		message, visitErr := toMessage(match)
		if visitErr != nil {
			m.log.Warn("Skipping unreadable hit", "error", visitErr)
		} else {
			messages = append(messages, message)
		}
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	m.log.Debug(fmt.Sprintf("Search %q matched %d messages", query, len(messages)), "channel_id", channelID)
	return messages, nil
}

func toMessage(match *search.DocumentMatch) (domain.Message, error) {
	var message domain.Message
	var decodeErr error
	err := match.VisitStoredFields(func(field string, value []byte) bool {
		switch field {
		case "_id":
			message.ID, decodeErr = uuid.ParseBytes(value)
		case fieldChannel:
			message.ChannelID = domain.ChannelID(value)
		case fieldSenderID:
			message.SenderID = domain.ParticipantID(value)
		case fieldSenderName:
			message.SenderName = string(value)
		case fieldContent:
			message.Content = string(value)
		case fieldLanguage:
			message.Language = string(value)
		case fieldCreatedAt:
			var at time.Time
			at, decodeErr = bluge.DecodeDateTime(value)
			message.CreatedAt = at.UTC()
		}
		return decodeErr == nil
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, decodeErr
}
