package websocket

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	maxFrameSize = 512 << 10
	writeWait    = 10 * time.Second
)

// Connection is the transport a Session pumps. gorilla connections support
// one concurrent reader and one concurrent writer, Session respects that.
type Connection interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Ping() error
	Close(reason string)
}

type websocketConnection struct {
	socket *websocket.Conn
}

// NewWebsocketConnection arms the read deadline: a connection that answers no
// ping for two intervals is considered gone and Read fails.
func NewWebsocketConnection(conn *websocket.Conn, pingInterval time.Duration) Connection {
	deadline := 2 * pingInterval
	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(deadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(deadline))
	})
	return &websocketConnection{socket: conn}
}

func (wc *websocketConnection) Read() ([]byte, error) {
	_, p, err := wc.socket.ReadMessage()
	return p, err
}

func (wc *websocketConnection) Write(data []byte) error {
	_ = wc.socket.SetWriteDeadline(time.Now().Add(writeWait))
	return wc.socket.WriteMessage(websocket.TextMessage, data)
}

func (wc *websocketConnection) Ping() error {
	return wc.socket.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (wc *websocketConnection) Close(reason string) {
	_ = wc.socket.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason),
		time.Now().Add(writeWait))
	_ = wc.socket.Close()
}
