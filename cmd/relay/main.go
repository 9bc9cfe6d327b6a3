package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"relay-desk/infrastructure/webhook"
	"relay-desk/internal"
	"relay-desk/observability"
	"relay-desk/repositories"
	"relay-desk/runtime"
	"relay-desk/services"
	"relay-desk/storage"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Relay terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so deferred cleanup always executes before
// the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Registry (single snapshot document, atomic replace per mutation)
	store := storage.NewSnapshotStore(config.StoreFilepath, logger)
	registry := repositories.NewRegistry(store, logger)

	// 3. Transport collaborator & core services
	gateway := webhook.NewGateway(config.GatewayURL, config.DeliveryTimeout, logger)
	session := services.NewReplySession()
	relayService := services.NewRelayService(registry, gateway, config.OperatorID, config.SelectionLimit, logger)
	broadcastService := services.NewBroadcastService(registry, gateway, logger)
	adminService := services.NewAdminService(registry)
	monitor := observability.NewMonitor(logger, config.MetricInterval)

	dispatcher := runtime.NewDispatcher(
		logger, gateway, relayService, broadcastService, adminService,
		session, registry, monitor,
		config.OperatorID, config.ChunkLimit,
	)
	server := webhook.NewServer(logger, dispatcher)

	// 4. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go monitor.Listen(ctx)

	// Use an error channel to capture Start() issues asynchronously.
	errChan := make(chan error, 1)
	address := fmt.Sprintf("0.0.0.0:%d", config.Port)
	go func() {
		logger.Info("Starting webhook server", "address", address, "at", time.Now().UTC())
		if err := server.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("webhook server error: %w", err)
		}
	}()

	color.Greenln("🤖 Relay is starting...")
	color.Infoln(fmt.Sprintf("👤 Operator ID: %d", config.OperatorID))
	color.Greenln("✅ Relay is ready!")

	// 5. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 6. Final Cleanup (Graceful Shutdown)
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return exitRuntime, fmt.Errorf("shutdown failed: %w", err)
	}
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}
