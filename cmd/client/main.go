package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"talk-lab/domain"
	ws "talk-lab/infrastructure/websocket"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/kelseyhightower/envconfig"
	"github.com/samber/lo"
)

type Config struct {
	Addr     string `envconfig:"TALK_ADDR" default:"localhost:5000"`
	Channel  string `envconfig:"TALK_CHANNEL" default:"General"`
	Username string `envconfig:"TALK_USERNAME" required:"true"`
	Password string `envconfig:"TALK_PASSWORD"`
	// TALK_COLOURS enables colorized output
	Colours bool `envconfig:"TALK_COLOURS" default:"true"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Client terminated with error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if !config.Colours {
		color.Disable()
	}

	channelID, err := resolveChannel(config.Addr, config.Channel)
	if err != nil {
		return err
	}

	endpoint := url.URL{Scheme: "ws", Host: config.Addr, Path: "/ws"}
	conn, _, err := websocket.DefaultDialer.Dial(endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", endpoint.String(), err)
	}
	defer conn.Close()

	p := &printer{username: config.Username}
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.readLoop(conn)
	}()

	if err := send(conn, ws.JoinChannel, ws.JoinRequest{
		ChannelID: string(channelID), Username: config.Username, Password: config.Password,
	}); err != nil {
		return err
	}
	color.Cyan.Printf("Joined %s as %s. Commands: /raise /lower /release /leave /react <type>, anything else is chat\n",
		config.Channel, config.Username)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-done:
			return nil
		case <-signals:
			return closeGracefully(conn, done)
		case line, ok := <-lines:
			if !ok {
				return closeGracefully(conn, done)
			}
			if err := handleLine(conn, channelID, strings.TrimSpace(line)); err != nil {
				color.Red.Println(err)
			}
		}
	}
}

func handleLine(conn *websocket.Conn, channelID domain.ChannelID, line string) error {
	channel := ws.ChannelRequest{ChannelID: string(channelID)}
	command, argument, _ := strings.Cut(line, " ")
	switch command {
	case "":
		return nil
	case "/raise":
		return send(conn, ws.RaiseHand, channel)
	case "/lower":
		return send(conn, ws.LowerHand, channel)
	case "/release":
		return send(conn, ws.ReleaseFloor, channel)
	case "/leave":
		return send(conn, ws.LeaveChannel, channel)
	case "/react":
		return send(conn, ws.SendReaction, ws.ReactionRequest{ChannelID: string(channelID), Type: strings.TrimSpace(argument)})
	default:
		return send(conn, ws.SendMessage, ws.MessageRequest{ChannelID: string(channelID), Message: line})
	}
}

func send(conn *websocket.Conn, name string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return conn.WriteJSON(ws.Envelope{Event: name, Data: raw})
}

func closeGracefully(conn *websocket.Conn, done <-chan struct{}) error {
	err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
	if err != nil {
		return err
	}
	select {
	case <-done:
	case <-time.After(time.Second):
	}
	return nil
}

// resolveChannel finds the channel id from its name through the directory.
func resolveChannel(addr, name string) (domain.ChannelID, error) {
	client := http.Client{Timeout: 5 * time.Second}
	response, err := client.Get(fmt.Sprintf("http://%s/api/channels", addr))
	if err != nil {
		return "", fmt.Errorf("directory unreachable: %w", err)
	}
	defer response.Body.Close()

	var channels []domain.ChannelSummary
	if err := json.NewDecoder(response.Body).Decode(&channels); err != nil {
		return "", fmt.Errorf("directory answer unreadable: %w", err)
	}
	channel, ok := lo.Find(channels, func(c domain.ChannelSummary) bool {
		return strings.EqualFold(c.Name, name) || string(c.ID) == name
	})
	if !ok {
		return "", fmt.Errorf("no channel named %q", name)
	}
	return channel.ID, nil
}

type printer struct {
	username string
	users    map[domain.ParticipantID]string
}

func (p *printer) readLoop(conn *websocket.Conn) {
	p.users = make(map[domain.ParticipantID]string)
	for {
		var envelope ws.Envelope
		if err := conn.ReadJSON(&envelope); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				color.Red.Printf("Connection lost: %v\n", err)
			}
			return
		}
		p.print(envelope)
	}
}

func (p *printer) name(id domain.ParticipantID) string {
	if name, ok := p.users[id]; ok {
		return name
	}
	return string(id)
}

func (p *printer) remember(users []domain.Participant) {
	for _, user := range users {
		p.users[user.ID] = user.Name
	}
}

func (p *printer) print(envelope ws.Envelope) {
	var data struct {
		Users        []domain.Participant `json:"users"`
		JoinedUserID domain.ParticipantID `json:"joinedUserId"`
		LeftUserID   domain.ParticipantID `json:"leftUserId"`
		Queue        []domain.Participant `json:"queue"`
		Speaker      *domain.Participant  `json:"speaker"`
		Sender       string               `json:"sender"`
		Content      string               `json:"content"`
		UserID       domain.ParticipantID `json:"userId"`
		Type         string               `json:"type"`
		Username     string               `json:"username"`
		AudioChunk   []float32            `json:"audioChunk"`
		Code         string               `json:"code"`
		Message      string               `json:"message"`
		Event        string               `json:"event"`
	}
	_ = json.Unmarshal(envelope.Data, &data)

	switch envelope.Event {
	case ws.UserJoined:
		p.remember(data.Users)
		color.Green.Printf("+ %s joined (%d online)\n", p.name(data.JoinedUserID), len(data.Users))
	case ws.UserLeft:
		color.Yellow.Printf("- %s left (%d online)\n", p.name(data.LeftUserID), len(data.Users))
		p.remember(data.Users)
	case ws.QueueUpdated:
		names := lo.Map(data.Queue, func(u domain.Participant, _ int) string { return u.Name })
		color.Gray.Printf("queue: [%s]\n", strings.Join(names, ", "))
	case ws.CurrentSpeakerUpdated:
		if data.Speaker == nil {
			color.Magenta.Println("the floor is free")
		} else {
			color.Magenta.Printf("%s has the floor\n", data.Speaker.Name)
		}
	case ws.ReceiveMessage:
		style := lo.Ternary(data.Sender == p.username, color.Cyan, color.White)
		style.Printf("%s> %s\n", data.Sender, data.Content)
	case ws.ReactionReceived:
		color.Yellow.Printf("%s reacted with %s\n", data.Username, data.Type)
	case ws.HandRaised:
		color.Gray.Printf("%s raised a hand\n", p.name(data.UserID))
	case ws.HandLowered:
		color.Gray.Printf("%s lowered a hand\n", p.name(data.UserID))
	case ws.ReceiveVoiceData:
		color.Gray.Printf("~ %d samples from %s\n", len(data.AudioChunk), p.name(data.UserID))
	case ws.Error:
		color.Red.Printf("%s rejected: %s (%s)\n", data.Event, data.Code, data.Message)
	default:
		color.Gray.Printf("%s %s\n", envelope.Event, string(envelope.Data))
	}
}
