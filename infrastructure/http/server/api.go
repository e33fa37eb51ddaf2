package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"talk-lab/contract"
	"talk-lab/domain"
	"talk-lab/domain/event"
	"talk-lab/errors"
	"talk-lab/internal"
	"talk-lab/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const (
	nextCursorHeader = "X-Next-Cursor"
	passwordHeader   = "X-Channel-Password"
)

// API serves the channel directory, history, search and channel state over HTTP.
// The websocket upgrade and the debug endpoints hang off the same router.
type API struct {
	log        *slog.Logger
	channels   contract.IChannelService
	history    contract.IHistoryService
	engine     contract.IEngine
	monitoring *observability.MonitoringManager
	inspector  *internal.Inspector
	counters   map[string]*event.Counter
}

func NewAPI(log *slog.Logger, channels contract.IChannelService, history contract.IHistoryService,
	engine contract.IEngine, monitoring *observability.MonitoringManager, inspector *internal.Inspector) *API {
	return &API{
		log:        log,
		channels:   channels,
		history:    history,
		engine:     engine,
		monitoring: monitoring,
		inspector:  inspector,
		counters:   make(map[string]*event.Counter),
	}
}

// Expose publishes a telemetry counter under /debug/counters. Call it before Router.
func (a *API) Expose(name string, counter *event.Counter) {
	a.counters[name] = counter
}

// Router builds the gin engine. A nil inspector leaves /debug/inspect out.
func (a *API) Router(allowedOrigins []string, ws gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), a.requestLogger())
	r.Use(cors.New(corsConfig(allowedOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/channels", a.listChannels)
	api.POST("/channels", a.createChannel)
	api.GET("/channels/:id/messages", a.fetchHistory)
	api.GET("/channels/:id/search", a.search)
	api.GET("/channels/:id/state", a.channelState)

	if ws != nil {
		r.GET("/ws", ws)
	}

	debug := r.Group("/debug")
	if a.monitoring != nil {
		debug.GET("/stats", func(c *gin.Context) {
			c.JSON(http.StatusOK, a.monitoring.GetLatest())
		})
	}
	debug.GET("/counters", func(c *gin.Context) {
		c.JSON(http.StatusOK, lo.MapValues(a.counters, func(counter *event.Counter, _ string) map[string]uint64 {
			return counter.All()
		}))
	})
	if a.inspector != nil {
		debug.GET("/inspect", a.inspect)
	}
	return r
}

func corsConfig(allowedOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", "Origin", passwordHeader},
		ExposeHeaders: []string{nextCursorHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || lo.Contains(allowedOrigins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	return config
}

func (a *API) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		a.log.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

type createChannelRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Topic       string `json:"topic"`
	Password    string `json:"password"`
}

type messageResponse struct {
	ID        string               `json:"id"`
	ChannelID domain.ChannelID     `json:"channelId"`
	Sender    string               `json:"sender"`
	SenderID  domain.ParticipantID `json:"senderId"`
	Content   string               `json:"content"`
	Timestamp time.Time            `json:"timestamp"`
	Language  string               `json:"language,omitempty"`
}

func toMessageResponses(messages []domain.Message) []messageResponse {
	return lo.Map(messages, func(m domain.Message, _ int) messageResponse {
		return messageResponse{
			ID:        m.ID.String(),
			ChannelID: m.ChannelID,
			Sender:    m.SenderName,
			SenderID:  m.SenderID,
			Content:   m.Content,
			Timestamp: m.CreatedAt,
			Language:  m.Language,
		}
	})
}

func (a *API) listChannels(c *gin.Context) {
	channels, err := a.channels.ListChannels(c.Request.Context())
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Ternary(channels == nil, []domain.ChannelSummary{}, channels))
}

func (a *API) createChannel(c *gin.Context) {
	var request createChannelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		a.fail(c, errors.ErrInvalidPayload)
		return
	}
	id, err := a.channels.CreateChannel(c.Request.Context(), domain.CreateChannelCommand{
		Name:        request.Name,
		Description: request.Description,
		Topic:       domain.Topic(request.Topic),
		Password:    request.Password,
	})
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (a *API) fetchHistory(c *gin.Context) {
	cmd := domain.GetMessageCommand{ChannelID: domain.ChannelID(c.Param("id"))}
	if cursor := c.Query("cursor"); cursor != "" {
		cmd.Cursor = &cursor
	}
	messages, next, err := a.history.FetchHistory(c.Request.Context(), cmd)
	if err != nil {
		a.fail(c, err)
		return
	}
	if next != nil {
		c.Header(nextCursorHeader, *next)
	}
	c.JSON(http.StatusOK, toMessageResponses(messages))
}

func (a *API) search(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			a.fail(c, errors.ErrInvalidPayload)
			return
		}
		limit = parsed
	}
	messages, err := a.history.Search(c.Request.Context(), domain.SearchMessageCommand{
		ChannelID: domain.ChannelID(c.Param("id")),
		Query:     c.Query("q"),
		Limit:     limit,
	})
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toMessageResponses(messages))
}

// channelState answers with an idle snapshot for channels nobody joined yet.
// The channel must exist, and a protected one needs its password in X-Channel-Password.
func (a *API) channelState(c *gin.Context) {
	channelID := domain.ChannelID(c.Param("id"))
	if err := a.channels.Authorize(c.Request.Context(), channelID, c.GetHeader(passwordHeader)); err != nil {
		a.fail(c, err)
		return
	}
	snapshot, ok := a.engine.Snapshot(channelID)
	if !ok {
		snapshot = domain.NewChannelState(channelID).Snapshot()
	}
	c.JSON(http.StatusOK, snapshot)
}

func (a *API) inspect(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	rows, err := a.inspector.Scan(c.Query("prefix"), limit)
	if err != nil {
		a.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (a *API) fail(c *gin.Context, err error) {
	code := errors.ToCode(err)
	status := statusOf(code)
	if status >= http.StatusInternalServerError {
		a.log.Error("HTTP request failed", "path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"code": code, "message": err.Error()})
}

func statusOf(code errors.Code) int {
	switch code {
	case errors.CodeInvalidPayload:
		return http.StatusBadRequest
	case errors.CodeChannelNotFound:
		return http.StatusNotFound
	case errors.CodeInvalidPassword, errors.CodeNotMember:
		return http.StatusForbidden
	case errors.CodeInvalidTurnState, errors.CodeNotCurrentSpeaker, errors.CodeNotAuthorizedToSpeak:
		return http.StatusConflict
	case errors.CodeRateLimited:
		return http.StatusTooManyRequests
	case errors.CodeBackpressure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
