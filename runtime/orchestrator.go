// Package runtime handles membership, turn taking, event propagation and the chat pipeline.
// It orchestrates the system; the turn rules themselves live in the domain package.
package runtime

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"talk-lab/contract"
	"talk-lab/domain"
	"talk-lab/domain/event"
	"talk-lab/errors"
	"talk-lab/moderation"
	"talk-lab/observability"
	"talk-lab/runtime/workers"
)

//go:embed censored/*
var censoredFolder embed.FS

// Settings are the tunables of the orchestrator pipeline.
type Settings struct {
	BufferSize       int
	SinkTimeout      time.Duration
	MetricInterval   time.Duration
	CharReplacement  rune
	MaxContentLength int
}

// Orchestrator is the façade every client session talks to.
// Turn operations go straight to the coordinator under the channel lock,
// fragments to the relay, chat messages through the asynchronous pipeline:
// commands -> pool worker -> moderation -> fan-out -> telemetry.
type Orchestrator struct {
	mu              sync.Mutex
	log             *slog.Logger
	supervisor      contract.ISupervisor
	registry        contract.IRegistry
	coordinator     contract.ITurnCoordinator
	relay           contract.IRelay
	broadcaster     contract.IBroadcaster
	directory       contract.ChannelDirectory
	monitoring      *observability.MonitoringManager
	permanentSinks  []contract.EventSink
	handlers        []event.Handler
	commands        chan domain.Command
	rawEvents       chan event.DomainEvent
	domainEvents    chan event.DomainEvent
	telemetryEvents chan event.DomainEvent
	settings        Settings
}

var _ contract.IEngine = (*Orchestrator)(nil)

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry contract.IRegistry, coordinator contract.ITurnCoordinator, relay contract.IRelay,
	broadcaster contract.IBroadcaster, directory contract.ChannelDirectory,
	monitoring *observability.MonitoringManager, settings Settings) *Orchestrator {
	return &Orchestrator{
		log:             log,
		supervisor:      supervisor,
		registry:        registry,
		coordinator:     coordinator,
		relay:           relay,
		broadcaster:     broadcaster,
		directory:       directory,
		monitoring:      monitoring,
		commands:        make(chan domain.Command, settings.BufferSize),
		rawEvents:       make(chan event.DomainEvent, settings.BufferSize),
		domainEvents:    make(chan event.DomainEvent, settings.BufferSize),
		telemetryEvents: make(chan event.DomainEvent, settings.BufferSize),
		settings:        settings,
	}
}

// Add registers permanent sinks (history, search index). Call it before Start.
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// AddHandlers registers telemetry handlers. Call it before Start.
func (o *Orchestrator) AddHandlers(handlers ...event.Handler) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.handlers = append(o.handlers, handlers...)
}

// Join authorizes the participant, moves them out of any previous channel,
// then hands over to the coordinator.
func (o *Orchestrator) Join(ctx context.Context, channelID domain.ChannelID,
	participant domain.Participant, password string, sink contract.EventSink) (domain.ChannelSnapshot, error) {
	participant.Name = strings.TrimSpace(participant.Name)
	if channelID == "" || participant.ID == "" || participant.Name == "" || sink == nil {
		return domain.ChannelSnapshot{}, o.reject(fmt.Errorf("%w: channel, participant and sink are required", errors.ErrInvalidPayload))
	}
	if err := o.directory.Authorize(ctx, channelID, password); err != nil {
		return domain.ChannelSnapshot{}, o.reject(err)
	}

	// The previous channel is left before the new one is locked,
	// two channel locks are never held together.
	if _, current, ok := o.registry.Lookup(participant.ID); ok && current != channelID {
		o.log.Debug(fmt.Sprintf("%s switches from %s to %s", participant.ID, current, channelID))
		o.coordinator.Leave(ctx, current, participant.ID)
	}

	snapshot := o.coordinator.Join(ctx, channelID, participant, sink)
	o.log.Info("Participant joined", "channel_id", channelID, "participant_id", participant.ID, "username", participant.Name)
	return snapshot, nil
}

// Leave is idempotent: leaving a channel one is not in does nothing.
func (o *Orchestrator) Leave(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) error {
	if channelID == "" {
		return o.reject(fmt.Errorf("%w: channel is required", errors.ErrInvalidPayload))
	}
	if o.coordinator.Leave(ctx, channelID, participantID) {
		o.log.Info("Participant left", "channel_id", channelID, "participant_id", participantID)
	}
	return nil
}

// Disconnect is the cleanup of a closed connection, equivalent to leaving
// whatever channel the participant was in.
func (o *Orchestrator) Disconnect(ctx context.Context, participantID domain.ParticipantID) {
	_, channelID, ok := o.registry.Lookup(participantID)
	if !ok {
		return
	}
	if o.coordinator.Leave(ctx, channelID, participantID) {
		o.log.Info("Participant disconnected", "channel_id", channelID, "participant_id", participantID)
	}
}

func (o *Orchestrator) RaiseHand(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) error {
	return o.reject(o.coordinator.RaiseHand(ctx, channelID, participantID))
}

func (o *Orchestrator) LowerHand(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) error {
	return o.reject(o.coordinator.LowerHand(ctx, channelID, participantID))
}

func (o *Orchestrator) RequestRelease(ctx context.Context, channelID domain.ChannelID, participantID domain.ParticipantID) error {
	return o.reject(o.coordinator.RequestRelease(ctx, channelID, participantID))
}

// PostMessage enqueues a chat message for moderation. It never blocks:
// a full pipeline rejects the message with ErrBackpressure.
func (o *Orchestrator) PostMessage(_ context.Context, channelID domain.ChannelID,
	participantID domain.ParticipantID, content string) error {
	participant, err := o.member(channelID, participantID)
	if err != nil {
		return o.reject(err)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return o.reject(fmt.Errorf("%w: empty message", errors.ErrInvalidPayload))
	}
	if length := utf8.RuneCountInString(content); o.settings.MaxContentLength > 0 && length > o.settings.MaxContentLength {
		return o.reject(fmt.Errorf("%w: message of %d characters exceeds %d",
			errors.ErrInvalidPayload, length, o.settings.MaxContentLength))
	}

	cmd := domain.PostMessageCommand{
		ChannelID:  channelID,
		SenderID:   participant.ID,
		SenderName: participant.Name,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	select {
	case o.commands <- cmd:
		return nil
	default:
		o.log.Warn(fmt.Sprintf("Command channel full for channel %s, dropping message", channelID))
		return o.reject(errors.ErrBackpressure)
	}
}

// SendReaction reaches every member but the sender, who renders it locally.
func (o *Orchestrator) SendReaction(ctx context.Context, channelID domain.ChannelID,
	participantID domain.ParticipantID, reaction domain.ReactionType) error {
	if !reaction.IsValid() {
		return o.reject(fmt.Errorf("%w: unknown reaction %q", errors.ErrInvalidPayload, reaction))
	}
	participant, err := o.member(channelID, participantID)
	if err != nil {
		return o.reject(err)
	}

	evt := event.ReactionSent{
		Channel:  channelID,
		Type:     reaction,
		AuthorID: participant.ID,
		Author:   participant.Name,
	}
	o.broadcaster.PublishExcept(ctx, evt, participantID)
	select {
	case o.telemetryEvents <- evt:
	default:
	}
	return nil
}

func (o *Orchestrator) SubmitFragment(ctx context.Context, channelID domain.ChannelID,
	participantID domain.ParticipantID, samples []float32) error {
	return o.relay.SubmitFragment(ctx, channelID, participantID, samples)
}

func (o *Orchestrator) Snapshot(channelID domain.ChannelID) (domain.ChannelSnapshot, bool) {
	return o.coordinator.Snapshot(channelID)
}

func (o *Orchestrator) member(channelID domain.ChannelID, participantID domain.ParticipantID) (domain.Participant, error) {
	participant, current, ok := o.registry.Lookup(participantID)
	if !ok || current != channelID {
		return domain.Participant{}, errors.ErrNotMember
	}
	return participant, nil
}

// reject counts a refused request and returns err unchanged.
func (o *Orchestrator) reject(err error) error {
	if err != nil && o.monitoring != nil && errors.IsRejection(err) {
		o.monitoring.IncrRejections()
	}
	return err
}

// Start prepares every worker (moderation, pipeline, telemetry, sampling)
// and then runs the supervisor. It blocks until the supervisor stops.
func (o *Orchestrator) Start(ctx context.Context) error {
	// 1. Preparation phase (No Lock)
	// Loading the word lists and building the automaton is the heavy part.
	moderationWorker, err := o.prepareModeration("censored", o.settings.CharReplacement)
	if err != nil {
		return err
	}

	// 2. Critical Section (Short Lock)
	o.mu.Lock()
	// A single pool worker keeps per channel message order
	o.supervisor.Add(workers.NewPoolUnitWorker(o.commands, o.rawEvents, o.log))
	o.supervisor.Add(moderationWorker)
	o.supervisor.Add(o.preparePipeline())
	o.supervisor.Add(workers.NewTelemetryWorker(o.log, o.telemetryEvents, o.handlers))
	if o.monitoring != nil {
		o.supervisor.Add(o.prepareMetrics()...)
	}
	o.mu.Unlock()

	// 3. Execution phase (No Lock)
	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

// prepareModeration loads censored words and builds the Aho-Corasick automaton.
func (o *Orchestrator) prepareModeration(dir string, charReplacement rune) (contract.Worker, error) {
	loader := NewCensoredLoader(censoredFolder)
	data, err := loader.LoadAll(dir)
	if err != nil {
		return nil, err
	}

	o.log.Info(fmt.Sprintf("%d censored files loaded [%s]",
		len(data.Languages), strings.Join(data.Languages, ",")))
	o.log.Info(fmt.Sprintf("%d unique censored words loaded", len(data.Words)))

	moderator, err := moderation.NewModerator(data.Words, charReplacement, o.log)
	if err != nil {
		return nil, err
	}
	return workers.NewModerationWorker(moderator, o.rawEvents, o.domainEvents, o.monitoring, o.log), nil
}

// preparePipeline builds the fan-out over the registered permanent sinks.
func (o *Orchestrator) preparePipeline() contract.Worker {
	return workers.NewEventFanout(
		o.log,
		append([]contract.EventSink(nil), o.permanentSinks...),
		o.broadcaster,
		o.domainEvents,
		o.telemetryEvents,
		o.settings.SinkTimeout,
	)
}

func (o *Orchestrator) prepareMetrics() []contract.Worker {
	buffers := []workers.NamedChannel{
		{Name: "commands", Channel: o.commands},
		{Name: "raw_events", Channel: o.rawEvents},
		{Name: "domain_events", Channel: o.domainEvents},
		{Name: "telemetry_events", Channel: o.telemetryEvents},
	}
	return []contract.Worker{
		workers.NewChannelCapacityWorker(o.log, buffers, o.monitoring, o.settings.MetricInterval),
		workers.NewProcessWorker(o.log, o.monitoring, o.settings.MetricInterval),
		o.monitoring,
	}
}

// Stop cancels the supervised context, every worker returns on its own.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
