//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"talk-lab/domain"
	"talk-lab/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry is the membership index: who is in which channel, and where to push their events.
type IRegistry interface {
	Join(channelID domain.ChannelID, participant domain.Participant, sink EventSink) []domain.Participant
	Leave(channelID domain.ChannelID, participantID domain.ParticipantID) ([]domain.Participant, bool)
	Members(channelID domain.ChannelID) []domain.Participant
	MemberCount(channelID domain.ChannelID) int
	Lookup(participantID domain.ParticipantID) (domain.Participant, domain.ChannelID, bool)
	SinkOf(participantID domain.ParticipantID) (EventSink, bool)
	GetSinksForChannel(channelID domain.ChannelID) []EventSink
	GetSinksForChannelExcept(channelID domain.ChannelID, excluded domain.ParticipantID) []EventSink
}

// PublishResult counts the member sinks reached by one publish call.
type PublishResult struct {
	Delivered int
	Dropped   int
}

type IBroadcaster interface {
	Publish(ctx context.Context, evt event.DomainEvent) PublishResult
	PublishExcept(ctx context.Context, evt event.DomainEvent, excluded domain.ParticipantID) PublishResult
	SendTo(ctx context.Context, participantID domain.ParticipantID, evt event.DomainEvent) error
}

// SpeakerReader is the read side of turn state: one atomic load, no channel lock.
type SpeakerReader interface {
	CurrentSpeaker(channelID domain.ChannelID) *domain.Participant
}

type ITurnCoordinator interface {
	SpeakerReader
	Join(ctx context.Context, channelID domain.ChannelID, participant domain.Participant, sink EventSink) domain.ChannelSnapshot
	Leave(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) bool
	RaiseHand(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) error
	LowerHand(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) error
	RequestRelease(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) error
	Snapshot(channelID domain.ChannelID) (domain.ChannelSnapshot, bool)
}

type IRelay interface {
	SubmitFragment(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID, samples []float32) error
}

// IEngine is everything a client session may ask for.
type IEngine interface {
	Join(ctx context.Context, channelID domain.ChannelID, participant domain.Participant, password string, sink EventSink) (domain.ChannelSnapshot, error)
	Leave(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) error
	Disconnect(ctx context.Context, participantID domain.ParticipantID)
	RaiseHand(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) error
	LowerHand(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) error
	RequestRelease(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) error
	PostMessage(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID, content string) error
	SendReaction(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID, reaction domain.ReactionType) error
	SubmitFragment(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID, samples []float32) error
	Snapshot(channelID domain.ChannelID) (domain.ChannelSnapshot, bool)
}

// ChannelDirectory is the part of the directory the engine needs on join.
type ChannelDirectory interface {
	Authorize(ctx context.Context, channelID domain.ChannelID, password string) error
}

type MemberCounter interface {
	MemberCount(channelID domain.ChannelID) int
}

type IChannelService interface {
	ChannelDirectory
	ListChannels(ctx context.Context) ([]domain.ChannelSummary, error)
	CreateChannel(ctx context.Context, cmd domain.CreateChannelCommand) (domain.ChannelID, error)
	EnsureChannels(ctx context.Context, names []string) error
}

type IHistoryService interface {
	FetchHistory(ctx context.Context, cmd domain.GetMessageCommand) ([]domain.Message, *string, error)
	Search(ctx context.Context, cmd domain.SearchMessageCommand) ([]domain.Message, error)
}
