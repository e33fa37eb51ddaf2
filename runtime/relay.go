package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"talk-lab/contract"
	"talk-lab/domain"
	"talk-lab/domain/event"
	"talk-lab/errors"
	"talk-lab/observability"
)

// Relay forwards audio fragments of the current speaker to the other members.
// It reads membership and speaker without taking the channel lock; a decision
// may lag one pending mutation behind and corrects itself on the next fragment.
type Relay struct {
	log         *slog.Logger
	registry    contract.IRegistry
	speakers    contract.SpeakerReader
	broadcaster contract.IBroadcaster
	monitoring  *observability.MonitoringManager
	maxSamples  int
}

var _ contract.IRelay = (*Relay)(nil)

func NewRelay(log *slog.Logger, registry contract.IRegistry, speakers contract.SpeakerReader,
	broadcaster contract.IBroadcaster, monitoring *observability.MonitoringManager, maxSamples int) *Relay {
	return &Relay{
		log:         log,
		registry:    registry,
		speakers:    speakers,
		broadcaster: broadcaster,
		monitoring:  monitoring,
		maxSamples:  maxSamples,
	}
}

// SubmitFragment relays samples iff the participant holds the floor of the channel.
// A rejected fragment reaches nobody; the error goes back to the sender only.
func (r *Relay) SubmitFragment(ctx context.Context, channelID domain.ChannelID,
	participantID domain.ParticipantID, samples []float32) error {
	if err := r.authorize(channelID, participantID, samples); err != nil {
		if r.monitoring != nil {
			r.monitoring.IncrFragmentsRejected()
		}
		r.log.Debug(fmt.Sprintf("Fragment from %s rejected", participantID),
			"channel_id", channelID, "error", err)
		return err
	}

	r.broadcaster.PublishExcept(ctx, event.VoiceFragment{
		Channel:   channelID,
		SpeakerID: participantID,
		Samples:   samples,
	}, participantID)

	if r.monitoring != nil {
		r.monitoring.IncrFragmentsRelayed()
	}
	return nil
}

func (r *Relay) authorize(channelID domain.ChannelID, participantID domain.ParticipantID, samples []float32) error {
	if r.maxSamples > 0 && len(samples) > r.maxSamples {
		return fmt.Errorf("%w: %d samples exceed %d", errors.ErrInvalidPayload, len(samples), r.maxSamples)
	}
	_, current, ok := r.registry.Lookup(participantID)
	if !ok || current != channelID {
		return errors.ErrNotMember
	}
	speaker := r.speakers.CurrentSpeaker(channelID)
	if speaker == nil || speaker.ID != participantID {
		return errors.ErrNotAuthorizedToSpeak
	}
	return nil
}
