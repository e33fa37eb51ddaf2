package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	ws "talk-lab/infrastructure/websocket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type testFloorSuite struct {
	BaseSuite
}

func TestFloorSuite(t *testing.T) {
	suite.Run(t, &testFloorSuite{})
}

func (s *testFloorSuite) TestServerIsServing() {
	s.WithHealth("Check engine health", func(ctx context.Context, client healthpb.HealthClient) {
		response, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: "talk-lab.Engine"})
		s.Require().NoError(err)
		s.Require().Equal(healthpb.HealthCheckResponse_SERVING, response.Status)
	})
}

func (s *testFloorSuite) TestFullFloorCycle() {
	channelID := s.ChannelID()
	channel := ws.ChannelRequest{ChannelID: string(channelID)}
	// Unique names keep runs against a shared server apart
	suffix := uuid.NewString()[:8]
	speaker := s.Connect("speaker-" + suffix)
	listener := s.Connect("listener-" + suffix)

	s.Run("Step 1: both participants join", func() {
		speaker.Join(channelID)
		listener.Join(channelID)
	})

	s.Run("Step 2: the speaker takes the floor", func() {
		speaker.Send(ws.RaiseHand, channel)
		listener.Expect(ws.CurrentSpeakerUpdated, speakerIs(string(speaker.ID)))
	})

	s.Run("Step 3: audio reaches the listener", func() {
		speaker.Send(ws.VoiceData, ws.VoiceRequest{ChannelID: string(channelID), AudioChunk: []float32{0.25, -0.25}})
		data := listener.Expect(ws.ReceiveVoiceData, nil)
		s.JSONEq(fmt.Sprintf(`{"channelId":%q,"userId":%q,"audioChunk":[0.25,-0.25]}`, channelID, speaker.ID), string(data))
	})

	s.Run("Step 4: releasing frees the floor", func() {
		speaker.Send(ws.ReleaseFloor, channel)
		listener.Expect(ws.CurrentSpeakerUpdated, speakerIs(""))
	})
}

// speakerIs matches a speaker update naming id, or an empty floor when id is blank.
func speakerIs(id string) func(json.RawMessage) bool {
	return func(data json.RawMessage) bool {
		var payload struct {
			Speaker *struct {
				ID string `json:"id"`
			} `json:"speaker"`
		}
		_ = json.Unmarshal(data, &payload)
		if id == "" {
			return payload.Speaker == nil
		}
		return payload.Speaker != nil && payload.Speaker.ID == id
	}
}
