package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rpupo63/content-mock-backend/config"
	"github.com/rpupo63/content-mock-backend/database"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	*http.Server
	startupTime     time.Time
	shutdownTimeout time.Duration
}

func NewServer(database database.Database, settings config.Settings) (Server, error) {
	port, err := strconv.Atoi(settings.Port)
	if err != nil || port < 0 || port > 65535 {
		return Server{}, fmt.Errorf("invalid port %q", settings.Port)
	}
	if settings.FrontendOrigin == "" {
		return Server{}, errors.New("frontend origin must not be empty")
	}

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(database,
		withSettings(settings),
		withStartupTime(startupTime),
		withInstanceID(uuid.NewString()),
	)

	server := &http.Server{
		Addr:         settings.Address(),
		Handler:      router,
		ReadTimeout:  settings.ReadTimeout,  // Timeout for reading the entire request
		WriteTimeout: settings.WriteTimeout, // Timeout for writing the response
		IdleTimeout:  settings.IdleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime, settings.ShutdownTimeout}, nil
}

type router struct {
	settings    config.Settings
	startupTime time.Time
	instanceID  string
	logOutput   io.Writer
}

func withSettings(settings config.Settings) func(*router) {
	return func(r *router) {
		r.settings = settings
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func withInstanceID(instanceID string) func(*router) {
	return func(r *router) {
		r.instanceID = instanceID
	}
}

// withLogOutput redirects the per-request log lines, stderr by default
func withLogOutput(w io.Writer) func(*router) {
	return func(r *router) {
		r.logOutput = w
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	router := router{
		settings:  config.Resolve(nil),
		logOutput: os.Stderr,
	}
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(middleware.RequestID)
	chiRouter.Use(LogInternalServerErrors)

	handlers := initializeHandlers(database, router.startupTime, router.instanceID)

	// Single configured frontend origin
	acceptedOrigins := []string{router.settings.FrontendOrigin}
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(corsMiddleware(acceptedOrigins, router.settings.CORSMaxAge))

	setupRoutes(chiRouter, handlers, router.logOutput)

	return chiRouter
}

// Run listens on the configured address and serves until ctx is done
func (s Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.Addr, err)
	}
	return s.RunListener(ctx, listener)
}

// RunListener serves on listener until ctx is done or serving fails, then
// shuts down gracefully. A clean shutdown returns nil.
func (s Server) RunListener(ctx context.Context, listener net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Msgf("Server started on: %s", listener.Addr())
		if err := s.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.ShutdownGracefully(s.shutdownTimeout)
		return nil
	})

	return g.Wait()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}

// StartupTime is when NewServer built the router
func (s Server) StartupTime() time.Time {
	return s.startupTime
}
