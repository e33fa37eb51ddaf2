package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"talk-lab/contract"
	"talk-lab/domain"
	"talk-lab/errors"
	"talk-lab/observability"
	"talk-lab/sink"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const repliesBufferSize = 16

type Settings struct {
	BufferSize   int
	PingInterval time.Duration
	MessageRate  float64
	MessageBurst int
}

// Session adapts one connection to the engine. The read pump turns frames into
// engine calls, the write pump drains the participant's sink and the replies
// meant for this client only. Whatever ends first closes the connection.
// The participant is disconnected once, after the read pump has returned,
// so no request still in flight can join them back.
type Session struct {
	id         domain.ParticipantID
	log        *slog.Logger
	conn       Connection
	engine     contract.IEngine
	monitoring *observability.MonitoringManager
	sink       *sink.SessionSink
	limiter    *rate.Limiter
	replies    chan []byte
	settings   Settings

	done      chan struct{}
	closeOnce sync.Once
	reason    string
}

func NewSession(log *slog.Logger, conn Connection, engine contract.IEngine,
	monitoring *observability.MonitoringManager, settings Settings) *Session {
	id := domain.ParticipantID(uuid.NewString())
	return &Session{
		id:         id,
		log:        log.With("participant_id", id),
		conn:       conn,
		engine:     engine,
		monitoring: monitoring,
		sink:       sink.NewSessionSink(settings.BufferSize),
		limiter:    rate.NewLimiter(rate.Limit(settings.MessageRate), settings.MessageBurst),
		replies:    make(chan []byte, repliesBufferSize),
		settings:   settings,
		done:       make(chan struct{}),
	}
}

func (s *Session) ID() domain.ParticipantID {
	return s.id
}

// Run blocks until the connection is gone or ctx is cancelled.
func (s *Session) Run(ctx context.Context) {
	if s.monitoring != nil {
		s.monitoring.SessionOpened()
	}
	s.log.Info("Session opened")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.writePump(ctx)
	}()

	s.readPump(ctx)
	s.close("connection closed")
	wg.Wait()

	s.engine.Disconnect(context.Background(), s.id)
	if s.monitoring != nil {
		s.monitoring.SessionClosed()
	}
	s.log.Info("Session closed", "reason", s.reason)
}

func (s *Session) readPump(ctx context.Context) {
	for {
		data, err := s.conn.Read()
		if err != nil {
			s.log.Debug("Read pump stopped", "error", err)
			return
		}
		var envelope Envelope
		if err := json.Unmarshal(data, &envelope); err != nil {
			s.replyError(fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err), "")
			continue
		}
		if err := s.dispatch(ctx, envelope); err != nil {
			s.replyError(err, envelope.Event)
		}
	}
}

// dispatch maps one inbound frame to the engine. The returned error is the
// rejection reported back to this client, never to anybody else.
func (s *Session) dispatch(ctx context.Context, envelope Envelope) error {
	switch envelope.Event {
	case JoinChannel:
		request, err := decode[JoinRequest](envelope.Data)
		if err != nil {
			return err
		}
		participant := domain.Participant{ID: s.id, Name: request.Username}
		_, err = s.engine.Join(ctx, domain.ChannelID(request.ChannelID), participant, request.Password, s.sink)
		return err
	case LeaveChannel:
		return withChannel(envelope.Data, func(channelID domain.ChannelID) error {
			return s.engine.Leave(ctx, channelID, s.id)
		})
	case RaiseHand:
		return withChannel(envelope.Data, func(channelID domain.ChannelID) error {
			return s.engine.RaiseHand(ctx, channelID, s.id)
		})
	case LowerHand:
		return withChannel(envelope.Data, func(channelID domain.ChannelID) error {
			return s.engine.LowerHand(ctx, channelID, s.id)
		})
	case ReleaseFloor:
		return withChannel(envelope.Data, func(channelID domain.ChannelID) error {
			return s.engine.RequestRelease(ctx, channelID, s.id)
		})
	case SendMessage:
		request, err := decode[MessageRequest](envelope.Data)
		if err != nil {
			return err
		}
		if !s.limiter.Allow() {
			return errors.ErrRateLimited
		}
		return s.engine.PostMessage(ctx, domain.ChannelID(request.ChannelID), s.id, request.Message)
	case VoiceData:
		request, err := decode[VoiceRequest](envelope.Data)
		if err != nil {
			return err
		}
		return s.engine.SubmitFragment(ctx, domain.ChannelID(request.ChannelID), s.id, request.AudioChunk)
	case SendReaction:
		request, err := decode[ReactionRequest](envelope.Data)
		if err != nil {
			return err
		}
		if !s.limiter.Allow() {
			return errors.ErrRateLimited
		}
		return s.engine.SendReaction(ctx, domain.ChannelID(request.ChannelID), s.id, domain.ReactionType(request.Type))
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownEvent, envelope.Event)
	}
}

func withChannel(data json.RawMessage, fn func(domain.ChannelID) error) error {
	request, err := decode[ChannelRequest](data)
	if err != nil {
		return err
	}
	return fn(domain.ChannelID(request.ChannelID))
}

func (s *Session) replyError(err error, inbound string) {
	s.log.Debug("Request rejected", "event", inbound, "error", err)
	frame, encodeErr := EncodeError(err, inbound)
	if encodeErr != nil {
		s.log.Error("Error frame not encoded", "error", encodeErr)
		return
	}
	select {
	case s.replies <- frame:
	default:
		s.log.Warn("Replies buffer full, error frame dropped", "event", inbound)
	}
}

func (s *Session) writePump(ctx context.Context) {
	ticker := time.NewTicker(s.settings.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.close("server shutting down")
			return
		case <-s.done:
			return
		case evt := <-s.sink.Events():
			frame, err := Encode(evt)
			if err != nil {
				s.log.Warn("Event not encoded", "kind", evt.Kind(), "error", err)
				continue
			}
			if err := s.conn.Write(frame); err != nil {
				s.log.Warn("Write failed", "error", err)
				s.close("write failed")
				return
			}
		case frame := <-s.replies:
			if err := s.conn.Write(frame); err != nil {
				s.log.Warn("Write failed", "error", err)
				s.close("write failed")
				return
			}
		case <-ticker.C:
			if err := s.conn.Ping(); err != nil {
				s.log.Warn("Ping failed", "error", err)
				s.close("ping failed")
				return
			}
		}
	}
}

// close stops the write pump and the connection, which in turn ends the read pump.
// Only the first reason is kept.
func (s *Session) close(reason string) {
	s.closeOnce.Do(func() {
		s.reason = reason
		close(s.done)
		s.conn.Close(reason)
	})
}
