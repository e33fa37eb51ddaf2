package runtime

import (
	"cmp"
	"slices"
	"sync"

	"talk-lab/contract"
	"talk-lab/domain"

	"github.com/samber/lo"
)

type Set map[domain.ParticipantID]struct{}

type member struct {
	participant domain.Participant
	channelID   domain.ChannelID
	sink        contract.EventSink
	seq         uint64 // join order inside the channel
}

// Registry tracks which participant is in which channel and the sink
// each one is reached through. A participant belongs to one channel at most.
type Registry struct {
	mu             sync.RWMutex
	seq            uint64
	sessions       map[domain.ParticipantID]member // map participant -> membership
	channelMembers map[domain.ChannelID]Set        // map channel to participants
}

var _ contract.IRegistry = (*Registry)(nil)

func NewRegistry() *Registry {
	return &Registry{
		sessions:       make(map[domain.ParticipantID]member),
		channelMembers: make(map[domain.ChannelID]Set),
	}
}

// Join registers a participant's sink and assigns them to a channel.
// Joining again replaces the previous entry, keeping the original join order
// when the channel is unchanged. A membership in another channel is dropped.
func (r *Registry) Join(channelID domain.ChannelID, participant domain.Participant, sink contract.EventSink) []domain.Participant {
	r.mu.Lock()
	defer r.mu.Unlock()

	previous, exists := r.sessions[participant.ID]
	if exists && previous.channelID != channelID {
		r.removeLocked(previous.channelID, participant.ID)
		exists = false
	}

	seq := previous.seq
	if !exists {
		r.seq++
		seq = r.seq
	}
	r.sessions[participant.ID] = member{
		participant: participant,
		channelID:   channelID,
		sink:        sink,
		seq:         seq,
	}

	if _, ok := r.channelMembers[channelID]; !ok {
		r.channelMembers[channelID] = make(Set)
	}
	r.channelMembers[channelID][participant.ID] = struct{}{}

	return r.membersLocked(channelID)
}

// Leave removes a participant from a channel. Leaving a channel the participant
// is not in is a no-op and reports false.
func (r *Registry) Leave(channelID domain.ChannelID, participantID domain.ParticipantID) ([]domain.Participant, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.sessions[participantID]
	if !ok || m.channelID != channelID {
		return r.membersLocked(channelID), false
	}
	r.removeLocked(channelID, participantID)
	return r.membersLocked(channelID), true
}

// removeLocked cleans up the session and ensures no empty sets are left in the
// channel map to prevent memory leaks over time.
func (r *Registry) removeLocked(channelID domain.ChannelID, participantID domain.ParticipantID) {
	delete(r.sessions, participantID)

	if members, ok := r.channelMembers[channelID]; ok {
		delete(members, participantID)

		// If no one is left in the channel, remove the channel entry entirely
		if len(members) == 0 {
			delete(r.channelMembers, channelID)
		}
	}
}

func (r *Registry) Members(channelID domain.ChannelID) []domain.Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.membersLocked(channelID)
}

// membersLocked lists members in join order.
func (r *Registry) membersLocked(channelID domain.ChannelID) []domain.Participant {
	ids, ok := r.channelMembers[channelID]
	if !ok {
		return []domain.Participant{}
	}
	members := make([]member, 0, len(ids))
	for id := range ids {
		members = append(members, r.sessions[id])
	}
	slices.SortFunc(members, func(a, b member) int {
		return cmp.Compare(a.seq, b.seq)
	})
	return lo.Map(members, func(m member, _ int) domain.Participant {
		return m.participant
	})
}

func (r *Registry) MemberCount(channelID domain.ChannelID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channelMembers[channelID])
}

func (r *Registry) Lookup(participantID domain.ParticipantID) (domain.Participant, domain.ChannelID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.sessions[participantID]
	return m.participant, m.channelID, ok
}

func (r *Registry) SinkOf(participantID domain.ParticipantID) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.sessions[participantID]
	return m.sink, ok
}

// GetSinksForChannel retrieves all active sinks for a specific channel.
// Returns nil if the channel doesn't exist or has no members.
func (r *Registry) GetSinksForChannel(channelID domain.ChannelID) []contract.EventSink {
	return r.GetSinksForChannelExcept(channelID, "")
}

// GetSinksForChannelExcept is GetSinksForChannel without the excluded participant.
func (r *Registry) GetSinksForChannelExcept(channelID domain.ChannelID, excluded domain.ParticipantID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.channelMembers[channelID]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for participantID := range members {
		if participantID == excluded {
			continue
		}
		if m, exists := r.sessions[participantID]; exists && m.sink != nil {
			activeSinks = append(activeSinks, m.sink)
		}
	}
	return activeSinks
}
