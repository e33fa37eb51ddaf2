package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"talk-lab/domain"
	ws "talk-lab/infrastructure/websocket"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const frameTimeout = 5 * time.Second

type BaseSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration and skips when no server is targeted
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.HTTPAddr == "" {
		s.T().Skip("E2E_HTTP_ADDR not set, no running server to test against")
	}
}

func (s *BaseSuite) step(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// GrpcConn initializes a gRPC connection with logging, colors, and JSON debugging
func (s *BaseSuite) GrpcConn(t *testing.T, name string) *grpc.ClientConn {
	s.step(t, name)
	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}

	conn, err := grpc.NewClient(s.Config.GrpcAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, marshaler.Format(req.(proto.Message)))
				if err == nil {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, marshaler.Format(reply.(proto.Message)))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+s.Config.GrpcAddr)
	return conn
}

// WithHealth provides a health client within a contextual test step
func (s *BaseSuite) WithHealth(name string, fn func(ctx context.Context, client healthpb.HealthClient)) {
	if s.Config.GrpcAddr == "" {
		s.T().Skip("E2E_GRPC_ADDR not set")
	}
	conn := s.GrpcConn(s.T(), name)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	fn(ctx, healthpb.NewHealthClient(conn))
}

// ChannelID resolves the configured channel through the directory
func (s *BaseSuite) ChannelID() domain.ChannelID {
	response, err := http.Get(fmt.Sprintf("http://%s/api/channels", s.Config.HTTPAddr))
	s.Require().NoError(err)
	defer response.Body.Close()

	var channels []domain.ChannelSummary
	s.Require().NoError(json.NewDecoder(response.Body).Decode(&channels))
	channel, ok := lo.Find(channels, func(c domain.ChannelSummary) bool { return c.Name == s.Config.Channel })
	s.Require().True(ok, "channel %s missing from the directory", s.Config.Channel)
	return channel.ID
}

// Participant is one websocket connection driven by a scenario.
type Participant struct {
	s    *BaseSuite
	Name string
	ID   domain.ParticipantID
	conn *websocket.Conn
}

func (s *BaseSuite) Connect(name string) *Participant {
	s.step(s.T(), "connect "+name)
	endpoint := url.URL{Scheme: "ws", Host: s.Config.HTTPAddr, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(endpoint.String(), nil)
	s.Require().NoError(err, "Failed to open websocket at "+endpoint.String())
	s.T().Cleanup(func() { _ = conn.Close() })
	return &Participant{s: s, Name: name, conn: conn}
}

func (p *Participant) Send(name string, data any) {
	raw, err := json.Marshal(data)
	p.s.Require().NoError(err)
	p.s.Require().NoError(p.conn.WriteJSON(ws.Envelope{Event: name, Data: raw}))
}

// Expect reads frames until one named event satisfies match.
func (p *Participant) Expect(event string, match func(data json.RawMessage) bool) json.RawMessage {
	deadline := time.Now().Add(frameTimeout)
	for {
		p.s.Require().NoError(p.conn.SetReadDeadline(deadline))
		var envelope ws.Envelope
		err := p.conn.ReadJSON(&envelope)
		p.s.Require().NoError(err, "%s never received %s", p.Name, event)
		if p.s.Config.DebugJSON {
			p.s.T().Logf("%s <- %s %s", p.Name, envelope.Event, string(envelope.Data))
		}
		if envelope.Event == event && (match == nil || match(envelope.Data)) {
			return envelope.Data
		}
	}
}

// Join enters the channel and learns the connection id from the user-joined push.
func (p *Participant) Join(channelID domain.ChannelID) {
	p.Send(ws.JoinChannel, ws.JoinRequest{ChannelID: string(channelID), Username: p.Name})
	p.Expect(ws.UserJoined, func(data json.RawMessage) bool {
		var payload struct {
			Users        []domain.Participant `json:"users"`
			JoinedUserID domain.ParticipantID `json:"joinedUserId"`
		}
		p.s.Require().NoError(json.Unmarshal(data, &payload))
		joined, ok := lo.Find(payload.Users, func(u domain.Participant) bool { return u.ID == payload.JoinedUserID })
		if ok && joined.Name == p.Name {
			p.ID = joined.ID
			return true
		}
		return false
	})
}
