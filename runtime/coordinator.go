package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"talk-lab/contract"
	"talk-lab/domain"
	"talk-lab/domain/event"
	"talk-lab/errors"
)

// channelSlot is one unit of mutual exclusion: every mutation of a channel's
// turn state and membership happens under mu. speaker mirrors the state's
// speaker so the relay can authorize fragments without taking mu.
type channelSlot struct {
	mu      sync.Mutex
	state   *domain.ChannelState
	speaker atomic.Pointer[domain.Participant]
}

func (s *channelSlot) syncSpeaker() {
	s.speaker.Store(s.state.Speaker())
}

// Coordinator owns the turn state of every channel.
// Operations on the same channel are serialized, operations on different
// channels never contend. Events are published while the channel lock is held,
// so every member observes them in mutation order.
type Coordinator struct {
	log         *slog.Logger
	registry    contract.IRegistry
	broadcaster contract.IBroadcaster

	mu       sync.RWMutex
	channels map[domain.ChannelID]*channelSlot
}

var _ contract.ITurnCoordinator = (*Coordinator)(nil)

func NewCoordinator(log *slog.Logger, registry contract.IRegistry, broadcaster contract.IBroadcaster) *Coordinator {
	return &Coordinator{
		log:         log,
		registry:    registry,
		broadcaster: broadcaster,
		channels:    make(map[domain.ChannelID]*channelSlot),
	}
}

// slot returns the channel's slot, creating it on first use.
func (c *Coordinator) slot(channelID domain.ChannelID) *channelSlot {
	c.mu.RLock()
	s, ok := c.channels[channelID]
	c.mu.RUnlock()
	if ok {
		return s
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok = c.channels[channelID]; ok {
		return s
	}
	s = &channelSlot{state: domain.NewChannelState(channelID)}
	c.channels[channelID] = s
	c.log.Debug(fmt.Sprintf("Channel state created for %s", channelID))
	return s
}

func (c *Coordinator) lookup(channelID domain.ChannelID) (*channelSlot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.channels[channelID]
	return s, ok
}

// Join adds the participant to the channel, tells every member, then sends the
// joiner alone the current queue and speaker.
func (c *Coordinator) Join(ctx context.Context, channelID domain.ChannelID,
	participant domain.Participant, sink contract.EventSink) domain.ChannelSnapshot {
	s := c.slot(channelID)
	s.mu.Lock()
	defer s.mu.Unlock()

	rejoined := s.state.AddMember(participant)
	c.registry.Join(channelID, participant, sink)
	s.syncSpeaker()

	c.broadcaster.Publish(ctx, event.UserJoined{
		Channel: channelID,
		Users:   s.state.Members(),
		Joined:  participant,
	})

	snapshot := s.state.Snapshot()
	c.sendSnapshot(ctx, participant.ID, snapshot)

	c.log.Debug("Participant joined", "channel_id", channelID,
		"participant_id", participant.ID, "rejoined", rejoined, "members", len(snapshot.Members))
	return snapshot
}

func (c *Coordinator) sendSnapshot(ctx context.Context, participantID domain.ParticipantID, snapshot domain.ChannelSnapshot) {
	for _, evt := range []event.DomainEvent{
		event.QueueUpdated{Channel: snapshot.ID, Queue: snapshot.Queue},
		event.SpeakerUpdated{Channel: snapshot.ID, Speaker: snapshot.Speaker},
	} {
		if err := c.broadcaster.SendTo(ctx, participantID, evt); err != nil {
			c.log.Warn("Join snapshot not delivered", "participant_id", participantID, "error", err)
		}
	}
}

// Leave removes the participant from membership and from every turn structure.
// It is idempotent: a participant already gone is a no-op reporting false,
// and nothing is published.
func (c *Coordinator) Leave(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) bool {
	s, ok := c.lookup(channelID)
	if !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	participant, ok := s.state.Member(participantID)
	if !ok {
		return false
	}
	transition, _ := s.state.RemoveMember(participantID)
	c.registry.Leave(channelID, participantID)

	c.broadcaster.Publish(ctx, event.UserLeft{
		Channel: channelID,
		Users:   s.state.Members(),
		Left:    participant,
	})
	c.publishTransition(ctx, s, transition)

	if s.state.IsEmpty() {
		c.log.Debug(fmt.Sprintf("Channel %s is empty, turn state reset", channelID))
	}
	return true
}

func (c *Coordinator) RaiseHand(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) error {
	return c.mutate(ctx, channelID, func(s *domain.ChannelState) (domain.Transition, error) {
		transition, err := s.RaiseHand(participantID)
		if err != nil {
			return transition, err
		}
		c.broadcaster.Publish(ctx, event.HandRaised{Channel: channelID, ParticipantID: participantID})
		return transition, nil
	})
}

func (c *Coordinator) LowerHand(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) error {
	return c.mutate(ctx, channelID, func(s *domain.ChannelState) (domain.Transition, error) {
		transition, err := s.LowerHand(participantID)
		if err != nil {
			return transition, err
		}
		c.broadcaster.Publish(ctx, event.HandLowered{Channel: channelID, ParticipantID: participantID})
		return transition, nil
	})
}

func (c *Coordinator) RequestRelease(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) error {
	return c.mutate(ctx, channelID, func(s *domain.ChannelState) (domain.Transition, error) {
		return s.Release(participantID)
	})
}

// mutate runs op under the channel lock and publishes the resulting transition.
// A rejected op leaves the state untouched and publishes nothing.
func (c *Coordinator) mutate(ctx context.Context, channelID domain.ChannelID,
	op func(s *domain.ChannelState) (domain.Transition, error)) error {
	s, ok := c.lookup(channelID)
	if !ok {
		return errors.ErrNotMember
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	transition, err := op(s.state)
	if err != nil {
		return err
	}
	c.publishTransition(ctx, s, transition)
	return nil
}

// publishTransition emits at most one speaker snapshot and one queue snapshot,
// whatever the number of intermediate steps of the operation.
func (c *Coordinator) publishTransition(ctx context.Context, s *channelSlot, transition domain.Transition) {
	s.syncSpeaker()
	channelID := s.state.ID

	if transition.SpeakerUpdated() {
		c.broadcaster.Publish(ctx, event.SpeakerUpdated{Channel: channelID, Speaker: s.state.Speaker()})
	}
	if transition.QueueUpdated() {
		c.broadcaster.Publish(ctx, event.QueueUpdated{Channel: channelID, Queue: s.state.Queue()})
	}
	if transition.Promoted != nil {
		c.log.Debug("Floor granted", "channel_id", channelID, "participant_id", transition.Promoted.ID)
	}
}

// CurrentSpeaker is lock-free. It may lag one pending mutation behind.
func (c *Coordinator) CurrentSpeaker(channelID domain.ChannelID) *domain.Participant {
	s, ok := c.lookup(channelID)
	if !ok {
		return nil
	}
	return s.speaker.Load()
}

func (c *Coordinator) Snapshot(channelID domain.ChannelID) (domain.ChannelSnapshot, bool) {
	s, ok := c.lookup(channelID)
	if !ok {
		return domain.ChannelSnapshot{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot(), true
}
