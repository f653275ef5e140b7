// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/handlers"
	nuts "github.com/vaudience/go-nuts"

	"github.com/airsentry/hub/api"
	"github.com/airsentry/hub/internal/config"
	"github.com/airsentry/hub/internal/device"
	"github.com/airsentry/hub/internal/hubservice"
	"github.com/airsentry/hub/internal/models"
	"github.com/airsentry/hub/internal/monitoring"
	"github.com/airsentry/hub/internal/poller"
	"github.com/airsentry/hub/internal/store"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	hubservice *hubservice.HubService
	monitoring *monitoring.Service
	stopPoller context.CancelFunc
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
	}
}

// Start begins polling the device and listening for requests
func (s *Server) Start() error {
	// Initialize services
	s.monitoring = monitoring.NewService()
	s.hubservice = initializeHubService(s.config, s.monitoring)

	if err := s.hubservice.Validate(); err != nil {
		return fmt.Errorf("invalid hub service wiring: %w", err)
	}

	// Set up append event handler
	s.setupAppendHandler()

	// Build the handler chain: recovery, then CORS for the dashboard client
	router := api.NewRouter(s.hubservice, s.monitoring.Handler())
	handler := handlers.RecoveryHandler()(
		handlers.CORS(
			handlers.AllowedOrigins([]string{"*"}),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut}),
			handlers.AllowedHeaders([]string{"Content-Type"}),
		)(router),
	)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      handler,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	// Start the acquisition loop; cancelling pollCtx ends the session and
	// releases the recurring ticker.
	pollCtx, cancel := context.WithCancel(context.Background())
	s.stopPoller = cancel
	go s.hubservice.Poller.Run(pollCtx)

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	// Stop the acquisition loop before closing the HTTP surface
	s.stopPoller()

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// setupAppendHandler wires store append events into logs
func (s *Server) setupAppendHandler() {
	s.hubservice.Store.OnAppend("server_append_log", func(r *models.Reading, size int) {
		nuts.L.Infof("[Server] Reading appended (%s, history %d/%d)",
			r.Classify(), size, s.hubservice.Store.Capacity())
	})
}

// initializeHubService creates and wires the hub service
func initializeHubService(cfg *config.Config, mon *monitoring.Service) *hubservice.HubService {
	historyStore := store.New(cfg.History.Capacity)
	deviceClient := device.NewClient(cfg.Device)
	loop := poller.New(deviceClient, historyStore, mon, cfg.Device.PollInterval)

	return hubservice.New(historyStore, deviceClient, loop, mon)
}
