// Package domain contains core concepts of the talk system.
// This file defines Message events and related rules.
// Messages are immutable once moderated.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable chat entry of a channel.
type Message struct {
	ID         uuid.UUID // unique identifier
	ChannelID  ChannelID
	SenderID   ParticipantID
	SenderName string
	Content    string
	Language   string
	CreatedAt  time.Time
}
