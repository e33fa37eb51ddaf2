package websocket

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"talk-lab/domain"
	"talk-lab/domain/event"
	"talk-lab/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestEncode_Outbound_Events(t *testing.T) {
	alice := domain.Participant{ID: "a", Name: "Alice"}
	bob := domain.Participant{ID: "b", Name: "Bob"}
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	id := uuid.MustParse("7d444840-9dc0-11d1-b245-5ffdce74fad2")

	tests := []struct {
		name     string
		evt      event.DomainEvent
		expected string
		data     string
	}{
		{"user joined", event.UserJoined{Channel: "g", Users: []domain.Participant{alice, bob}, Joined: bob},
			UserJoined, `{"users":[{"id":"a","username":"Alice"},{"id":"b","username":"Bob"}],"joinedUserId":"b"}`},
		{"user left", event.UserLeft{Channel: "g", Left: bob},
			UserLeft, `{"users":[],"leftUserId":"b"}`},
		{"queue snapshot", event.QueueUpdated{Channel: "g", Queue: []domain.Participant{bob}},
			QueueUpdated, `{"queue":[{"id":"b","username":"Bob"}]}`},
		{"floor free", event.SpeakerUpdated{Channel: "g"},
			CurrentSpeakerUpdated, `{"speaker":null}`},
		{"chat message", event.SanitizedMessage{ID: id, Channel: "g", AuthorID: "a", Author: "Alice", Content: "hi", Language: "en", At: at},
			ReceiveMessage, `{"id":"7d444840-9dc0-11d1-b245-5ffdce74fad2","channelId":"g","sender":"Alice","senderId":"a","content":"hi","timestamp":"2024-05-01T10:00:00Z","language":"en"}`},
		{"voice", event.VoiceFragment{Channel: "g", SpeakerID: "a", Samples: []float32{0.5}},
			ReceiveVoiceData, `{"channelId":"g","userId":"a","audioChunk":[0.5]}`},
		{"reaction", event.ReactionSent{Channel: "g", Type: domain.ReactionFire, AuthorID: "a", Author: "Alice"},
			ReactionReceived, `{"type":"fire","username":"Alice","userId":"a"}`},
		{"hand raised", event.HandRaised{Channel: "g", ParticipantID: "b"},
			HandRaised, `{"userId":"b"}`},
		{"hand lowered", event.HandLowered{Channel: "g", ParticipantID: "b"},
			HandLowered, `{"userId":"b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			frame, err := Encode(tt.evt)
			req.NoError(err)

			var envelope Envelope
			req.NoError(json.Unmarshal(frame, &envelope))
			req.Equal(tt.expected, envelope.Event)
			req.JSONEq(tt.data, string(envelope.Data))
		})
	}
}

func TestEncode_Internal_Event_Is_Unknown(t *testing.T) {
	_, err := Encode(event.MessagePosted{Channel: "g"})
	require.ErrorIs(t, err, errors.ErrUnknownEvent)
}

func TestEncodeError_Carries_Code(t *testing.T) {
	req := require.New(t)

	frame, err := EncodeError(fmt.Errorf("release: %w", errors.ErrNotCurrentSpeaker), ReleaseFloor)
	req.NoError(err)

	var envelope Envelope
	req.NoError(json.Unmarshal(frame, &envelope))
	payload := decodeError(t, envelope)
	req.Equal(errors.CodeNotCurrentSpeaker, payload.Code)
	req.Equal(ReleaseFloor, payload.Event)
	req.Contains(payload.Message, "not the current speaker")
}

func TestDecode_Validates_Requests(t *testing.T) {
	req := require.New(t)

	request, err := decode[JoinRequest](json.RawMessage(`{"channelId":"g","username":"Alice"}`))
	req.NoError(err)
	req.Equal("Alice", request.Username)

	_, err = decode[JoinRequest](json.RawMessage(`{"channelId":"g"}`))
	req.ErrorIs(err, errors.ErrInvalidPayload)

	_, err = decode[VoiceRequest](json.RawMessage(`{"channelId":"g","audioChunk":[]}`))
	req.ErrorIs(err, errors.ErrInvalidPayload)

	_, err = decode[ChannelRequest](nil)
	req.ErrorIs(err, errors.ErrInvalidPayload)

	_, err = decode[ReactionRequest](json.RawMessage(`{"channelId":"g","type":"like"}`))
	req.NoError(err)
}
