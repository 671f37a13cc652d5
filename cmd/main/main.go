// hellopage is a single-route web application that serves a welcome page,
// built as a demonstration artifact for containerized deployment.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
)

// Build information, injected via -ldflags at release time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

const (
	actionShutdown = "shutdown"
	actionRestart  = "restart"
)

func main() {
	baseLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	baseLogger.Info("Starting hellopage", "version", Version, "commit", Commit, "build_date", BuildDate)

	actionChan := make(chan string, 1)

	go func() {
		osSignalChan := make(chan os.Signal, 1)
		signal.Notify(osSignalChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		for sig := range osSignalChan {
			if sig == syscall.SIGHUP {
				baseLogger.Info("SIGHUP received, restarting to reload configuration.")
				actionChan <- actionRestart
			} else {
				baseLogger.Info("OS signal received, initiating shutdown.")
				actionChan <- actionShutdown
			}
		}
	}()

	for {
		action, err := run(actionChan)
		if err != nil {
			baseLogger.Error("An error occurred during server run, shutting down.", "error", err)
			break
		}

		if action == actionRestart {
			baseLogger.Info("--- Server Restarting ---")
			continue
		} else {
			break
		}
	}

	baseLogger.Info("hellopage has shut down.")
}

// run hosts the HTTP server for one configuration cycle, and returns whenever
// the server is shut down or restarted.
func run(actionChan chan string) (string, error) {

	config, err := LoadConfig("./config.json")
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}

	var logLevel slog.Level
	switch strings.ToLower(config.Server.LogLevel) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	logger.Info("Starting server cycle...")

	server := NewServer(config, logger)

	httpServer := &http.Server{Addr: config.Server.ServerAddr, Handler: server.mux}

	go func() {
		logger.Info("Starting hellopage server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
		}
	}()

	action := <-actionChan // Block here until an OS signal sends an action.

	logger.Info("Stopping server for " + action + "...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = httpServer.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped.")

	return action, nil
}
