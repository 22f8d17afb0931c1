package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// App manages the HTTP server lifecycle.
type App struct {
	httpServer *http.Server
	port       int
	logger     *zap.Logger
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewApp creates and configures a new application server.
func NewApp(port int, logger *zap.Logger, router *Router) (*App, func(), error) {
	mux := http.NewServeMux()
	router.Register(mux)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	ctx, cancel := context.WithCancel(context.Background())

	app := &App{
		httpServer: httpServer,
		port:       port,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}

	// The cleanup function will be called by main to gracefully shut down.
	cleanup := func() {
		app.logger.Info("Cleanup: stopping server...")
		app.cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
			app.logger.Error("HTTP server shutdown failed", zap.Error(err))
		}
		app.logger.Info("Cleanup finished.")
	}

	return app, cleanup, nil
}

// Run starts the application server and blocks until an interrupt signal.
func (a *App) Run() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", a.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", a.port, err)
	}

	go func() {
		a.logger.Info("server started", zap.Int("port", a.port))
		if err := a.httpServer.Serve(lis); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server Serve error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("Shutting down server...")
	a.cancel()

	return nil
}
