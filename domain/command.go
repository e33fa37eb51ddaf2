package domain

import (
	"time"
)

type Command interface {
	Channel() ChannelID
}

type PostMessageCommand struct {
	ChannelID  ChannelID
	SenderID   ParticipantID
	SenderName string
	Content    string
	CreatedAt  time.Time
}

func (p PostMessageCommand) Channel() ChannelID {
	return p.ChannelID
}

type GetMessageCommand struct {
	ChannelID ChannelID
	Cursor    *string
}

func (g GetMessageCommand) Channel() ChannelID {
	return g.ChannelID
}

type SearchMessageCommand struct {
	ChannelID ChannelID
	Query     string
	Limit     int
}

func (s SearchMessageCommand) Channel() ChannelID {
	return s.ChannelID
}

type CreateChannelCommand struct {
	Name        string `validate:"required,max=64"`
	Description string `validate:"max=280"`
	Topic       Topic  `validate:"topic"`
	Password    string `validate:"omitempty,min=4,max=72"`
}
