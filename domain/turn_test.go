package domain

import (
	"testing"

	"talk-lab/errors"

	"github.com/stretchr/testify/require"
)

var (
	alice = Participant{ID: "a", Name: "Alice"}
	bob   = Participant{ID: "b", Name: "Bob"}
	carol = Participant{ID: "c", Name: "Carol"}
	dave  = Participant{ID: "d", Name: "Dave"}
)

func newState(members ...Participant) *ChannelState {
	s := NewChannelState("general")
	for _, m := range members {
		s.AddMember(m)
	}
	return s
}

// requireConsistent checks the structural invariants after every step.
func requireConsistent(t *testing.T, s *ChannelState) {
	t.Helper()
	req := require.New(t)
	seen := map[ParticipantID]bool{}
	for _, m := range s.members {
		req.False(seen[m.ID], "duplicate member %s", m.ID)
		seen[m.ID] = true
	}
	if s.speaker != nil {
		req.True(s.IsMember(s.speaker.ID), "speaker must be a member")
		req.False(s.IsQueued(s.speaker.ID), "speaker must not be queued")
	}
	queued := map[ParticipantID]bool{}
	for _, q := range s.queue {
		req.True(s.IsMember(q.ID), "queued participant must be a member")
		req.False(queued[q.ID], "duplicate queue entry %s", q.ID)
		queued[q.ID] = true
		req.Contains(s.raisedHands, q.ID)
	}
	req.False(s.speaker == nil && len(s.queue) > 0, "vacant floor with waiting queue")
}

func TestChannelState_AddMember_Rejoin_Replaces(t *testing.T) {
	req := require.New(t)
	s := newState(alice, bob)

	// Given Alice holds the floor
	_, err := s.RaiseHand(alice.ID)
	req.NoError(err)

	// When Alice joins again under a new name
	rejoined := s.AddMember(Participant{ID: alice.ID, Name: "Alicia"})

	// Then membership has no duplicate and turn state is kept
	req.True(rejoined)
	req.Len(s.Members(), 2)
	req.Equal("Alicia", s.Speaker().Name)
	requireConsistent(t, s)
}

func TestChannelState_RaiseHand_IdlePromotesImmediately(t *testing.T) {
	req := require.New(t)
	s := newState(alice, bob)
	req.Equal(PhaseIdle, s.Phase())

	// When Alice raises her hand on an idle channel
	tr, err := s.RaiseHand(alice.ID)

	// Then she is the speaker and the queue is still empty
	req.NoError(err)
	req.Equal(alice, *s.Speaker())
	req.Empty(s.Queue())
	req.Equal(PhaseSpeaking, s.Phase())
	req.NotNil(tr.Promoted)
	req.True(tr.SpeakerUpdated())
	req.True(tr.QueueUpdated())
	req.False(tr.QueueChanged)
	requireConsistent(t, s)
}

func TestChannelState_Fifo(t *testing.T) {
	req := require.New(t)
	s := newState(alice, bob, carol)

	// Given hands raised in order A, B, C
	for _, p := range []Participant{alice, bob, carol} {
		_, err := s.RaiseHand(p.ID)
		req.NoError(err)
		requireConsistent(t, s)
	}
	req.Equal(alice, *s.Speaker())
	req.Equal([]Participant{bob, carol}, s.Queue())

	// When the floor is released twice
	tr, err := s.Release(alice.ID)
	req.NoError(err)
	req.Equal(bob, *tr.Promoted)
	req.Equal(bob, *s.Speaker())
	req.Equal([]Participant{carol}, s.Queue())

	_, err = s.Release(bob.ID)
	req.NoError(err)

	// Then Carol speaks and nobody waits
	req.Equal(carol, *s.Speaker())
	req.Empty(s.Queue())
	requireConsistent(t, s)

	_, err = s.Release(carol.ID)
	req.NoError(err)
	req.Nil(s.Speaker())
	req.Equal(PhaseIdle, s.Phase())
}

func TestChannelState_RaiseHand_Rejected(t *testing.T) {
	req := require.New(t)
	s := newState(alice, bob)
	_, err := s.RaiseHand(alice.ID)
	req.NoError(err)
	_, err = s.RaiseHand(bob.ID)
	req.NoError(err)
	before := s.Snapshot()

	// When the speaker or a queued participant raises again
	_, err = s.RaiseHand(alice.ID)
	req.ErrorIs(err, errors.ErrInvalidTurnState)
	_, err = s.RaiseHand(bob.ID)
	req.ErrorIs(err, errors.ErrInvalidTurnState)

	// And a stranger raises
	_, err = s.RaiseHand(carol.ID)
	req.ErrorIs(err, errors.ErrNotMember)

	// Then nothing moved
	req.Equal(before, s.Snapshot())
}

func TestChannelState_LowerHand(t *testing.T) {
	req := require.New(t)
	s := newState(alice, bob, carol)
	_, _ = s.RaiseHand(alice.ID)
	_, _ = s.RaiseHand(bob.ID)
	_, _ = s.RaiseHand(carol.ID)

	// When Bob lowers his hand
	tr, err := s.LowerHand(bob.ID)

	// Then only the queue changed
	req.NoError(err)
	req.True(tr.QueueUpdated())
	req.False(tr.SpeakerUpdated())
	req.Equal([]Participant{carol}, s.Queue())
	req.Equal(alice, *s.Speaker())
	req.NotContains(s.raisedHands, bob.ID)

	// And lowering twice or lowering as the speaker is rejected
	_, err = s.LowerHand(bob.ID)
	req.ErrorIs(err, errors.ErrInvalidTurnState)
	_, err = s.LowerHand(alice.ID)
	req.ErrorIs(err, errors.ErrInvalidTurnState)
	requireConsistent(t, s)
}

func TestChannelState_Release_NotCurrentSpeaker(t *testing.T) {
	req := require.New(t)
	s := newState(alice, bob)
	_, _ = s.RaiseHand(alice.ID)
	_, _ = s.RaiseHand(bob.ID)
	before := s.Snapshot()

	_, err := s.Release(bob.ID)

	req.ErrorIs(err, errors.ErrNotCurrentSpeaker)
	req.Equal(before, s.Snapshot())
}

func TestChannelState_RemoveMember_SpeakerLeaves(t *testing.T) {
	req := require.New(t)
	s := newState(alice, bob)

	// Given Alice auto-promoted and Bob waiting
	_, _ = s.RaiseHand(alice.ID)
	_, _ = s.RaiseHand(bob.ID)

	// When Alice leaves
	tr, removed := s.RemoveMember(alice.ID)

	// Then Bob holds the floor
	req.True(removed)
	req.Equal(bob, *s.Speaker())
	req.Empty(s.Queue())
	req.True(tr.SpeakerUpdated())
	req.True(tr.QueueUpdated())
	requireConsistent(t, s)
}

func TestChannelState_RemoveMember_SpeakerLeaves_NobodyWaiting(t *testing.T) {
	req := require.New(t)
	s := newState(alice, bob)
	_, _ = s.RaiseHand(alice.ID)

	tr, _ := s.RemoveMember(alice.ID)

	req.Nil(s.Speaker())
	req.True(tr.SpeakerUpdated())
	req.False(tr.QueueUpdated())
	req.Equal(PhaseIdle, s.Phase())
}

func TestChannelState_RemoveMember_DisconnectDuringSpeaking(t *testing.T) {
	req := require.New(t)
	s := newState(alice, bob, carol, dave)

	// Given S speaking and queue = [Q1, Q2]
	_, _ = s.RaiseHand(alice.ID)
	_, _ = s.RaiseHand(bob.ID)
	_, _ = s.RaiseHand(carol.ID)

	// When S is removed
	tr, _ := s.RemoveMember(alice.ID)

	// Then one transition describes the whole change
	req.Equal(bob, *s.Speaker())
	req.Equal([]Participant{carol}, s.Queue())
	req.True(tr.SpeakerUpdated())
	req.True(tr.QueueUpdated())
	req.Equal(bob, *tr.Promoted)
	requireConsistent(t, s)
}

func TestChannelState_RemoveMember_Queued(t *testing.T) {
	req := require.New(t)
	s := newState(alice, bob, carol)
	_, _ = s.RaiseHand(alice.ID)
	_, _ = s.RaiseHand(bob.ID)
	_, _ = s.RaiseHand(carol.ID)

	tr, _ := s.RemoveMember(bob.ID)

	req.Equal(alice, *s.Speaker())
	req.Equal([]Participant{carol}, s.Queue())
	req.True(tr.QueueUpdated())
	req.False(tr.SpeakerUpdated())
	requireConsistent(t, s)
}

func TestChannelState_RemoveMember_Idempotent(t *testing.T) {
	req := require.New(t)
	s := newState(alice, bob)

	_, removed := s.RemoveMember(alice.ID)
	req.True(removed)
	tr, removed := s.RemoveMember(alice.ID)

	req.False(removed)
	req.True(tr.IsZero())
	req.Equal([]Participant{bob}, s.Members())
}

func TestChannelState_ResetWhenEmpty(t *testing.T) {
	req := require.New(t)
	s := newState(alice)
	_, _ = s.RaiseHand(alice.ID)

	// When the last member leaves
	_, _ = s.RemoveMember(alice.ID)

	// Then the state refills from scratch
	req.True(s.IsEmpty())
	req.Nil(s.Speaker())
	req.Empty(s.raisedHands)

	s.AddMember(bob)
	req.Equal(PhaseIdle, s.Phase())
}

func TestChannelState_JoinLeaveSequences(t *testing.T) {
	req := require.New(t)
	s := newState()
	steps := []struct {
		join bool
		p    Participant
	}{
		{true, alice}, {true, bob}, {true, alice}, {false, carol},
		{true, carol}, {false, bob}, {false, bob}, {true, dave}, {true, bob},
	}
	for _, step := range steps {
		if step.join {
			s.AddMember(step.p)
		} else {
			s.RemoveMember(step.p.ID)
		}
		requireConsistent(t, s)
	}
	req.Equal([]ParticipantID{"a", "c", "d", "b"}, IDs(s.Members()))
}

func TestChannelState_Snapshot_IsDetached(t *testing.T) {
	req := require.New(t)
	s := newState(alice, bob, carol)
	_, _ = s.RaiseHand(alice.ID)
	_, _ = s.RaiseHand(bob.ID)

	snap := s.Snapshot()
	snap.Queue[0].Name = "mutated"
	snap.Speaker.Name = "mutated"

	req.Equal(PhaseSpeaking, snap.Phase)
	req.Equal([]ParticipantID{bob.ID}, snap.RaisedHands)
	req.Equal(bob, s.Queue()[0])
	req.Equal(alice, *s.Speaker())
}
