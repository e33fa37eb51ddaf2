package repositories

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"talk-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newMessage(channelID domain.ChannelID, author string, at time.Time) domain.Message {
	return domain.Message{
		ID:         uuid.New(),
		ChannelID:  channelID,
		SenderID:   domain.ParticipantID(author),
		SenderName: author,
		Content:    "this message will self destruct in 5 seconds",
		Language:   "en",
		CreatedAt:  at,
	}
}

func Test_Record_Multiple_Message(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), nil)
	channelID := domain.ChannelID("general")
	at := time.Now().UTC()
	messages := []domain.Message{
		newMessage(channelID, "Alice", at),
		newMessage(channelID, "Bob", at.Add(1*time.Minute)),
		newMessage(channelID, "Clara", at.Add(2*time.Minute)),
	}
	for _, message := range messages {
		req.NoError(repository.StoreMessage(message))
	}

	fetched, cursor, err := repository.GetMessages(channelID, nil)

	req.NoError(err)
	req.Nil(cursor)
	req.Equal(messages, fetched)
}

func Test_Messages_Are_Isolated_Per_Channel(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), nil)
	at := time.Now().UTC()
	req.NoError(repository.StoreMessage(newMessage("general", "Alice", at)))
	req.NoError(repository.StoreMessage(newMessage("music", "Bob", at)))
	// "general-2" shares a prefix with "general" but not the separator
	req.NoError(repository.StoreMessage(newMessage("general-2", "Clara", at)))

	fetched, _, err := repository.GetMessages("general", nil)

	req.NoError(err)
	req.Len(fetched, 1)
	req.Equal("Alice", fetched[0].SenderName)
}

func Test_Paginate_Backwards_With_Cursor(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), lo.ToPtr(2))
	channelID := domain.ChannelID("general")
	at := time.Now().UTC()
	var messages []domain.Message
	for i := range 5 {
		message := newMessage(channelID, fmt.Sprintf("user-%d", i), at.Add(time.Duration(i)*time.Second))
		messages = append(messages, message)
		req.NoError(repository.StoreMessage(message))
	}

	// Given the first page is the newest, in chronological order
	page, cursor, err := repository.GetMessages(channelID, nil)
	req.NoError(err)
	req.Equal(messages[3:5], page)
	req.NotNil(cursor)

	// When following the cursor
	page, cursor, err = repository.GetMessages(channelID, cursor)
	req.NoError(err)
	req.Equal(messages[1:3], page)
	req.NotNil(cursor)

	// Then the last page is partial and ends the walk
	page, cursor, err = repository.GetMessages(channelID, cursor)
	req.NoError(err)
	req.Equal(messages[0:1], page)
	req.Nil(cursor)
}

func Test_Empty_Channel_Returns_No_Message(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openDB(t), slog.Default(), lo.ToPtr(10))

	page, cursor, err := repository.GetMessages("nowhere", nil)

	req.NoError(err)
	req.Empty(page)
	req.Nil(cursor)
}
