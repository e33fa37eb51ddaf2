package event

import (
	"time"

	"talk-lab/domain"

	"github.com/google/uuid"
)

type Kind string

const (
	UserJoinedKind       Kind = "USER_JOINED"
	UserLeftKind         Kind = "USER_LEFT"
	QueueUpdatedKind     Kind = "QUEUE_UPDATED"
	SpeakerUpdatedKind   Kind = "SPEAKER_UPDATED"
	HandRaisedKind       Kind = "HAND_RAISED"
	HandLoweredKind      Kind = "HAND_LOWERED"
	MessagePostedKind    Kind = "MESSAGE_POSTED"
	SanitizedMessageKind Kind = "SANITIZED_MESSAGE"
	ReactionSentKind     Kind = "REACTION_SENT"
	VoiceFragmentKind    Kind = "VOICE_FRAGMENT"
)

type DomainEvent interface {
	ChannelID() domain.ChannelID
	Kind() Kind
}

// UserJoined carries the full member list after the join.
type UserJoined struct {
	Channel domain.ChannelID
	Users   []domain.Participant
	Joined  domain.Participant
}

func (e UserJoined) ChannelID() domain.ChannelID { return e.Channel }
func (e UserJoined) Kind() Kind                  { return UserJoinedKind }

// UserLeft carries the full member list after the departure.
type UserLeft struct {
	Channel domain.ChannelID
	Users   []domain.Participant
	Left    domain.Participant
}

func (e UserLeft) ChannelID() domain.ChannelID { return e.Channel }
func (e UserLeft) Kind() Kind                  { return UserLeftKind }

// QueueUpdated is a snapshot of the whole queue, never a delta.
type QueueUpdated struct {
	Channel domain.ChannelID
	Queue   []domain.Participant
}

func (e QueueUpdated) ChannelID() domain.ChannelID { return e.Channel }
func (e QueueUpdated) Kind() Kind                  { return QueueUpdatedKind }

// SpeakerUpdated carries the full speaker record, nil meaning the floor is free.
type SpeakerUpdated struct {
	Channel domain.ChannelID
	Speaker *domain.Participant
}

func (e SpeakerUpdated) ChannelID() domain.ChannelID { return e.Channel }
func (e SpeakerUpdated) Kind() Kind                  { return SpeakerUpdatedKind }

type HandRaised struct {
	Channel       domain.ChannelID
	ParticipantID domain.ParticipantID
}

func (e HandRaised) ChannelID() domain.ChannelID { return e.Channel }
func (e HandRaised) Kind() Kind                  { return HandRaisedKind }

type HandLowered struct {
	Channel       domain.ChannelID
	ParticipantID domain.ParticipantID
}

func (e HandLowered) ChannelID() domain.ChannelID { return e.Channel }
func (e HandLowered) Kind() Kind                  { return HandLoweredKind }

// MessagePosted is a chat message before moderation.
type MessagePosted struct {
	ID       uuid.UUID
	Channel  domain.ChannelID
	AuthorID domain.ParticipantID
	Author   string
	Content  string
	At       time.Time
}

func (m MessagePosted) ChannelID() domain.ChannelID { return m.Channel }
func (m MessagePosted) Kind() Kind                  { return MessagePostedKind }

// SanitizedMessage is what members, history and search receive.
type SanitizedMessage struct {
	ID            uuid.UUID
	Channel       domain.ChannelID
	AuthorID      domain.ParticipantID
	Author        string
	Content       string
	Language      string
	CensoredWords []string
	At            time.Time
}

func (m SanitizedMessage) ChannelID() domain.ChannelID { return m.Channel }
func (m SanitizedMessage) Kind() Kind                  { return SanitizedMessageKind }

func (m SanitizedMessage) ToMessage() domain.Message {
	return domain.Message{
		ID:         m.ID,
		ChannelID:  m.Channel,
		SenderID:   m.AuthorID,
		SenderName: m.Author,
		Content:    m.Content,
		Language:   m.Language,
		CreatedAt:  m.At,
	}
}

type ReactionSent struct {
	Channel  domain.ChannelID
	Type     domain.ReactionType
	AuthorID domain.ParticipantID
	Author   string
}

func (r ReactionSent) ChannelID() domain.ChannelID { return r.Channel }
func (r ReactionSent) Kind() Kind                  { return ReactionSentKind }

// VoiceFragment is opaque: samples are relayed as received.
type VoiceFragment struct {
	Channel   domain.ChannelID
	SpeakerID domain.ParticipantID
	Samples   []float32
}

func (v VoiceFragment) ChannelID() domain.ChannelID { return v.Channel }
func (v VoiceFragment) Kind() Kind                  { return VoiceFragmentKind }
