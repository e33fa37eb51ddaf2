package websocket

import (
	"context"
	"log/slog"
	"net/http"

	"talk-lab/contract"
	"talk-lab/observability"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
)

// Handler upgrades HTTP requests to websocket sessions. Sessions live under
// baseCtx rather than the request context so that a server shutdown reaches them.
type Handler struct {
	baseCtx    context.Context
	log        *slog.Logger
	engine     contract.IEngine
	monitoring *observability.MonitoringManager
	settings   Settings
	upgrader   websocket.Upgrader
}

func NewHandler(baseCtx context.Context, log *slog.Logger, engine contract.IEngine,
	monitoring *observability.MonitoringManager, allowedOrigins []string, settings Settings) *Handler {
	return &Handler{
		baseCtx:    baseCtx,
		log:        log,
		engine:     engine,
		monitoring: monitoring,
		settings:   settings,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
	}
}

// checkOrigin accepts everything when no origin is configured or "*" is listed.
func checkOrigin(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 || lo.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || lo.Contains(allowed, origin)
	}
}

func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader already replied with an HTTP error
		h.log.Warn("Websocket upgrade failed", "ip", c.ClientIP(), "error", err)
		return
	}
	session := NewSession(h.log, NewWebsocketConnection(conn, h.settings.PingInterval),
		h.engine, h.monitoring, h.settings)
	session.Run(h.baseCtx)
}
