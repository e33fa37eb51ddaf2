package websocket

import (
	"encoding/json"
	"fmt"
	"time"

	"talk-lab/auth"
	"talk-lab/domain"
	"talk-lab/domain/event"
	"talk-lab/errors"

	"github.com/samber/lo"
)

// Envelope is the frame shape in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Inbound events
const (
	JoinChannel  = "join-channel"
	LeaveChannel = "leave-channel"
	RaiseHand    = "raise-hand"
	LowerHand    = "lower-hand"
	ReleaseFloor = "release-floor"
	SendMessage  = "send-message"
	VoiceData    = "voice-data"
	SendReaction = "send-reaction"
)

// Outbound events
const (
	UserJoined            = "user-joined"
	UserLeft              = "user-left"
	QueueUpdated          = "queue-updated"
	CurrentSpeakerUpdated = "current-speaker-updated"
	ReceiveMessage        = "receive-message"
	ReceiveVoiceData      = "receive-voice-data"
	ReactionReceived      = "reaction-received"
	HandRaised            = "hand-raised"
	HandLowered           = "hand-lowered"
	Error                 = "error"
)

type JoinRequest struct {
	ChannelID string `json:"channelId" validate:"required"`
	Username  string `json:"username" validate:"required,max=32"`
	Password  string `json:"password" validate:"max=72"`
}

type ChannelRequest struct {
	ChannelID string `json:"channelId" validate:"required"`
}

type MessageRequest struct {
	ChannelID string `json:"channelId" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type VoiceRequest struct {
	ChannelID  string    `json:"channelId" validate:"required"`
	AudioChunk []float32 `json:"audioChunk" validate:"required,min=1"`
}

type ReactionRequest struct {
	ChannelID string `json:"channelId" validate:"required"`
	Type      string `json:"type" validate:"reaction"`
}

// decode unmarshals and validates the data of an inbound envelope.
func decode[T any](data json.RawMessage) (T, error) {
	var request T
	if len(data) == 0 {
		return request, fmt.Errorf("%w: missing data", errors.ErrInvalidPayload)
	}
	if err := json.Unmarshal(data, &request); err != nil {
		return request, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	if err := auth.Validate(request); err != nil {
		return request, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	return request, nil
}

type usersPayload struct {
	Users        []domain.Participant `json:"users"`
	JoinedUserID domain.ParticipantID `json:"joinedUserId,omitempty"`
	LeftUserID   domain.ParticipantID `json:"leftUserId,omitempty"`
}

type queuePayload struct {
	Queue []domain.Participant `json:"queue"`
}

type speakerPayload struct {
	Speaker *domain.Participant `json:"speaker"`
}

type messagePayload struct {
	ID        string               `json:"id"`
	ChannelID domain.ChannelID     `json:"channelId"`
	Sender    string               `json:"sender"`
	SenderID  domain.ParticipantID `json:"senderId"`
	Content   string               `json:"content"`
	Timestamp time.Time            `json:"timestamp"`
	Language  string               `json:"language,omitempty"`
}

type voicePayload struct {
	ChannelID  domain.ChannelID     `json:"channelId"`
	UserID     domain.ParticipantID `json:"userId"`
	AudioChunk []float32            `json:"audioChunk"`
}

type reactionPayload struct {
	Type     domain.ReactionType  `json:"type"`
	Username string               `json:"username"`
	UserID   domain.ParticipantID `json:"userId"`
}

type handPayload struct {
	UserID domain.ParticipantID `json:"userId"`
}

type errorPayload struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
	Event   string      `json:"event,omitempty"`
}

// nonNil keeps empty lists as [] on the wire, clients never see null.
func nonNil(participants []domain.Participant) []domain.Participant {
	return lo.Ternary(participants == nil, []domain.Participant{}, participants)
}

// Encode turns a domain event into its wire frame.
func Encode(evt event.DomainEvent) ([]byte, error) {
	var name string
	var data any
	switch e := evt.(type) {
	case event.UserJoined:
		name, data = UserJoined, usersPayload{Users: nonNil(e.Users), JoinedUserID: e.Joined.ID}
	case event.UserLeft:
		name, data = UserLeft, usersPayload{Users: nonNil(e.Users), LeftUserID: e.Left.ID}
	case event.QueueUpdated:
		name, data = QueueUpdated, queuePayload{Queue: nonNil(e.Queue)}
	case event.SpeakerUpdated:
		name, data = CurrentSpeakerUpdated, speakerPayload{Speaker: e.Speaker}
	case event.SanitizedMessage:
		name, data = ReceiveMessage, messagePayload{
			ID:        e.ID.String(),
			ChannelID: e.Channel,
			Sender:    e.Author,
			SenderID:  e.AuthorID,
			Content:   e.Content,
			Timestamp: e.At,
			Language:  e.Language,
		}
	case event.VoiceFragment:
		name, data = ReceiveVoiceData, voicePayload{ChannelID: e.Channel, UserID: e.SpeakerID, AudioChunk: e.Samples}
	case event.ReactionSent:
		name, data = ReactionReceived, reactionPayload{Type: e.Type, Username: e.Author, UserID: e.AuthorID}
	case event.HandRaised:
		name, data = HandRaised, handPayload{UserID: e.ParticipantID}
	case event.HandLowered:
		name, data = HandLowered, handPayload{UserID: e.ParticipantID}
	default:
		return nil, fmt.Errorf("%w: %T", errors.ErrUnknownEvent, evt)
	}
	return frame(name, data)
}

// EncodeError builds the error frame sent to the originator of a rejected request.
func EncodeError(err error, inbound string) ([]byte, error) {
	return frame(Error, errorPayload{
		Code:    errors.ToCode(err),
		Message: err.Error(),
		Event:   inbound,
	})
}

func frame(name string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: name, Data: raw})
}
