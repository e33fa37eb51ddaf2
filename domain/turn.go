package domain

import (
	"slices"

	"talk-lab/errors"
)

type Phase string

const (
	PhaseIdle       Phase = "idle"        // no speaker, empty queue
	PhaseSpeaking   Phase = "speaking"    // floor held
	PhaseQueuedWait Phase = "queued-wait" // transient, resolved by promote
)

// ChannelState is the authoritative turn state of one channel.
// It is not safe for concurrent use: callers serialize every access per channel.
type ChannelState struct {
	ID          ChannelID
	members     []Participant
	speaker     *Participant
	queue       []Participant
	raisedHands map[ParticipantID]struct{}
}

func NewChannelState(id ChannelID) *ChannelState {
	return &ChannelState{
		ID:          id,
		raisedHands: make(map[ParticipantID]struct{}),
	}
}

// Transition is what an operation changed, measured between the state before
// the operation and the state after promotion settled.
type Transition struct {
	Promoted       *Participant
	QueueChanged   bool
	SpeakerChanged bool
}

// QueueUpdated reports whether a queue snapshot must be pushed.
// A promotion always counts, even when the queue looks the same before and after.
func (t Transition) QueueUpdated() bool {
	return t.QueueChanged || t.Promoted != nil
}

func (t Transition) SpeakerUpdated() bool {
	return t.SpeakerChanged
}

func (t Transition) IsZero() bool {
	return !t.QueueUpdated() && !t.SpeakerUpdated()
}

type turnMark struct {
	speaker ParticipantID
	queue   []ParticipantID
}

func (s *ChannelState) mark() turnMark {
	m := turnMark{queue: IDs(s.queue)}
	if s.speaker != nil {
		m.speaker = s.speaker.ID
	}
	return m
}

func (s *ChannelState) diff(before turnMark, promoted *Participant) Transition {
	after := s.mark()
	return Transition{
		Promoted:       promoted,
		QueueChanged:   !slices.Equal(before.queue, after.queue),
		SpeakerChanged: before.speaker != after.speaker,
	}
}

// AddMember adds p, or replaces the record of an existing member with the same id.
// A rejoin keeps the participant's position in the turn state.
func (s *ChannelState) AddMember(p Participant) (rejoined bool) {
	if i := indexOf(s.members, p.ID); i >= 0 {
		s.members[i] = p
		if i := indexOf(s.queue, p.ID); i >= 0 {
			s.queue[i] = p
		}
		if s.speaker != nil && s.speaker.ID == p.ID {
			speaker := p
			s.speaker = &speaker
		}
		return true
	}
	s.members = append(s.members, p)
	return false
}

// RemoveMember purges id from membership and from every turn structure.
// When the departing member held the floor, the queue head is promoted.
// An absent id is a no-op and reports false.
func (s *ChannelState) RemoveMember(id ParticipantID) (Transition, bool) {
	i := indexOf(s.members, id)
	if i < 0 {
		return Transition{}, false
	}
	before := s.mark()

	s.members = slices.Delete(s.members, i, i+1)
	if j := indexOf(s.queue, id); j >= 0 {
		s.queue = slices.Delete(s.queue, j, j+1)
	}
	delete(s.raisedHands, id)
	if s.speaker != nil && s.speaker.ID == id {
		s.speaker = nil
	}

	if len(s.members) == 0 {
		s.reset()
		return s.diff(before, nil), true
	}
	return s.diff(before, s.promote()), true
}

// RaiseHand appends id to the queue tail. In the idle phase the caller is
// promoted straight away.
func (s *ChannelState) RaiseHand(id ParticipantID) (Transition, error) {
	i := indexOf(s.members, id)
	if i < 0 {
		return Transition{}, errors.ErrNotMember
	}
	if s.isSpeaker(id) || s.IsQueued(id) {
		return Transition{}, errors.ErrInvalidTurnState
	}
	before := s.mark()

	s.queue = append(s.queue, s.members[i])
	s.raisedHands[id] = struct{}{}

	return s.diff(before, s.promote()), nil
}

// LowerHand withdraws a queued participant. The speaker is never affected.
func (s *ChannelState) LowerHand(id ParticipantID) (Transition, error) {
	if !s.IsMember(id) {
		return Transition{}, errors.ErrNotMember
	}
	j := indexOf(s.queue, id)
	if j < 0 {
		return Transition{}, errors.ErrInvalidTurnState
	}
	before := s.mark()

	s.queue = slices.Delete(s.queue, j, j+1)
	delete(s.raisedHands, id)

	return s.diff(before, s.promote()), nil
}

// Release gives up the floor and hands it to the queue head, if any.
func (s *ChannelState) Release(id ParticipantID) (Transition, error) {
	if !s.IsMember(id) {
		return Transition{}, errors.ErrNotMember
	}
	if !s.isSpeaker(id) {
		return Transition{}, errors.ErrNotCurrentSpeaker
	}
	before := s.mark()

	s.speaker = nil

	return s.diff(before, s.promote()), nil
}

// promote is the only place assigning the speaker.
func (s *ChannelState) promote() *Participant {
	if s.speaker != nil || len(s.queue) == 0 {
		return nil
	}
	head := s.queue[0]
	s.queue = slices.Delete(s.queue, 0, 1)
	delete(s.raisedHands, head.ID)
	s.speaker = &head
	promoted := head
	return &promoted
}

func (s *ChannelState) reset() {
	s.members = nil
	s.speaker = nil
	s.queue = nil
	clear(s.raisedHands)
}

func (s *ChannelState) isSpeaker(id ParticipantID) bool {
	return s.speaker != nil && s.speaker.ID == id
}

func (s *ChannelState) Member(id ParticipantID) (Participant, bool) {
	if i := indexOf(s.members, id); i >= 0 {
		return s.members[i], true
	}
	return Participant{}, false
}

func (s *ChannelState) IsMember(id ParticipantID) bool {
	return indexOf(s.members, id) >= 0
}

func (s *ChannelState) IsQueued(id ParticipantID) bool {
	return indexOf(s.queue, id) >= 0
}

func (s *ChannelState) IsEmpty() bool {
	return len(s.members) == 0
}

// Speaker returns a copy of the current speaker record.
func (s *ChannelState) Speaker() *Participant {
	if s.speaker == nil {
		return nil
	}
	speaker := *s.speaker
	return &speaker
}

func (s *ChannelState) Members() []Participant {
	return slices.Clone(s.members)
}

func (s *ChannelState) Queue() []Participant {
	return slices.Clone(s.queue)
}

func (s *ChannelState) Phase() Phase {
	switch {
	case s.speaker != nil:
		return PhaseSpeaking
	case len(s.queue) > 0:
		return PhaseQueuedWait
	default:
		return PhaseIdle
	}
}

// ChannelSnapshot is a full copy of a channel's state, detached from the live one.
type ChannelSnapshot struct {
	ID          ChannelID       `json:"channelId"`
	Phase       Phase           `json:"phase"`
	Members     []Participant   `json:"members"`
	Speaker     *Participant    `json:"speaker"`
	Queue       []Participant   `json:"queue"`
	RaisedHands []ParticipantID `json:"raisedHands"`
}

func (s *ChannelState) Snapshot() ChannelSnapshot {
	hands := make([]ParticipantID, 0, len(s.raisedHands))
	for _, p := range s.queue {
		if _, ok := s.raisedHands[p.ID]; ok {
			hands = append(hands, p.ID)
		}
	}
	members := s.Members()
	if members == nil {
		members = []Participant{}
	}
	queue := s.Queue()
	if queue == nil {
		queue = []Participant{}
	}
	return ChannelSnapshot{
		ID:          s.ID,
		Phase:       s.Phase(),
		Members:     members,
		Speaker:     s.Speaker(),
		Queue:       queue,
		RaisedHands: hands,
	}
}
