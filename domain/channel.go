package domain

import (
	"time"

	"github.com/samber/lo"
)

type ChannelID string

type Topic string

const (
	TopicArt           Topic = "Art"
	TopicTechnology    Topic = "Technology"
	TopicScience       Topic = "Science"
	TopicBusiness      Topic = "Business"
	TopicEducation     Topic = "Education"
	TopicEntertainment Topic = "Entertainment"
	TopicHealth        Topic = "Health"
	TopicPolitics      Topic = "Politics"
	TopicGeneral       Topic = "General"
)

var Topics = []Topic{
	TopicArt, TopicTechnology, TopicScience, TopicBusiness,
	TopicEducation, TopicEntertainment, TopicHealth, TopicPolitics, TopicGeneral,
}

func (t Topic) IsValid() bool {
	return lo.Contains(Topics, t)
}

// Channel is the directory entry of a channel. Turn state lives in ChannelState.
type Channel struct {
	ID           ChannelID
	Name         string
	Description  string
	Topic        Topic
	PasswordHash []byte
	CreatedAt    time.Time
}

func (c Channel) IsProtected() bool {
	return len(c.PasswordHash) > 0
}

// ChannelSummary is a directory entry enriched with the live member count.
type ChannelSummary struct {
	ID              ChannelID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Topic           Topic     `json:"topic"`
	Protected       bool      `json:"protected"`
	ActiveUserCount int       `json:"activeUserCount"`
	CreatedAt       time.Time `json:"createdAt"`
}

type ReactionType string

const (
	ReactionLike      ReactionType = "like"
	ReactionLove      ReactionType = "love"
	ReactionApplause  ReactionType = "applause"
	ReactionCelebrate ReactionType = "celebrate"
	ReactionFire      ReactionType = "fire"
	ReactionPerfect   ReactionType = "perfect"
)

var Reactions = []ReactionType{
	ReactionLike, ReactionLove, ReactionApplause,
	ReactionCelebrate, ReactionFire, ReactionPerfect,
}

func (r ReactionType) IsValid() bool {
	return lo.Contains(Reactions, r)
}
