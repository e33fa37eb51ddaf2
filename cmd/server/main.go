package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talk-lab/domain/event"
	grpcserver "talk-lab/infrastructure/grpc/server"
	httpserver "talk-lab/infrastructure/http/server"
	"talk-lab/infrastructure/websocket"
	"talk-lab/internal"
	"talk-lab/observability"
	"talk-lab/repositories"
	"talk-lab/runtime"
	"talk-lab/runtime/workers"
	"talk-lab/services"
	"talk-lab/sink"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and owns the lifecycle, so deferred cleanups
// (bluge, badger) always run before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Storage (BadgerDB + Bluge)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	channelRepository := repositories.NewChannelRepository(db, logger)
	messageRepository := repositories.NewMessageRepository(db, logger, config.LimitMessages)
	messageIndex := repositories.NewMessageIndex(blugeWriter, logger)

	// 3. Engine
	monitoring := observability.NewMonitoringManager(logger, config.MetricInterval)
	registry := runtime.NewRegistry()
	broadcaster := runtime.NewBroadcaster(logger, registry, monitoring, config.SinkTimeout)
	coordinator := runtime.NewCoordinator(logger, registry, broadcaster)
	relay := runtime.NewRelay(logger, registry, coordinator, broadcaster, monitoring, config.MaxFragmentSamples)

	channelService := services.NewChannelService(channelRepository, registry, logger)
	historyService := services.NewHistoryService(channelRepository, messageRepository, messageIndex, logger, config.MaxSearchLimit)
	if err := channelService.EnsureChannels(ctx, config.Channels()); err != nil {
		return exitRuntime, fmt.Errorf("default channels creation failed: %w", err)
	}

	activity, censored, restarts := event.NewCounter(), event.NewCounter(), event.NewCounter()
	supervisor := workers.NewSupervisor(logger, config.RestartInterval).WithRestartCounter(restarts)
	orchestrator := runtime.NewOrchestrator(logger, supervisor, registry, coordinator, relay,
		broadcaster, channelService, monitoring, runtime.Settings{
			BufferSize:       config.BufferSize,
			SinkTimeout:      config.SinkTimeout,
			MetricInterval:   config.MetricInterval,
			CharReplacement:  charReplacement,
			MaxContentLength: config.MaxContentLength,
		})
	searchSink := sink.NewSearchSink(messageIndex, logger, config.SearchBatchSize, config.SearchFlushTimeout)
	orchestrator.Add(sink.NewDiskSink(messageRepository, monitoring, logger), searchSink)
	orchestrator.AddHandlers(event.NewActivityHandler(logger, activity), event.NewCensoredHandler(logger, censored))

	// Listening first, nothing is started when the port is taken
	grpcAddress := fmt.Sprintf("%s:%d", config.Host, config.GrpcPort)
	listener, err := net.Listen("tcp", grpcAddress)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", grpcAddress, err)
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 3)
	orchestratorDone := make(chan struct{})
	go func() {
		defer close(orchestratorDone)
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 5. HTTP (REST + websocket)
	var inspector *internal.Inspector
	if config.EnableDebug {
		inspector = internal.NewInspector(db, nil)
		logger.Info("Debug Badger inspector available", "path", "/debug/inspect")
	}
	if !logger.Enabled(ctx, slog.LevelDebug) {
		gin.SetMode(gin.ReleaseMode)
	}
	api := httpserver.NewAPI(logger, channelService, historyService, orchestrator, monitoring, inspector)
	api.Expose("activity", activity)
	api.Expose("censored", censored)
	api.Expose("restarts", restarts)
	wsHandler := websocket.NewHandler(ctx, logger, orchestrator, monitoring, config.Origins(), websocket.Settings{
		BufferSize:   config.ConnectionBufferSize,
		PingInterval: config.PingInterval,
		MessageRate:  config.MessageRate,
		MessageBurst: config.MessageBurst,
	})
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:           api.Router(config.Origins(), wsHandler.Serve),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Starting HTTP server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 6. gRPC health
	healthServer := grpcserver.NewHealthServer(logger)
	go func() {
		if err := healthServer.Serve(listener); err != nil {
			errChan <- err
		}
	}()
	healthServer.SetServing(true)

	// 7. Wait for Stop or Error
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		logger.Error("Component failed, shutting down", "error", runErr)
	}

	// 8. Final Cleanup (Graceful Shutdown)
	// Sessions are bound to ctx, cancelling it disconnects every participant.
	stop()
	healthServer.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	orchestrator.Stop()
	<-orchestratorDone
	if err := searchSink.Flush(); err != nil {
		logger.Warn("Search index flush failed", "error", err)
	}
	logger.Info("Program stopped cleanly")

	if runErr != nil {
		return exitRuntime, runErr
	}
	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}
