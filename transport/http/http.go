package http

import (
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dost/config"
	"dost/infras/postgres"
	"dost/internal/session"
	"dost/transport/http/middleware"
	"dost/transport/http/response"
	"dost/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config *config.Config
	Router router.Router
	State  ServerState

	db         *postgres.Connection
	middleware middleware.AppMiddleware
	session    *session.Store
	mux        *chi.Mux
}

func New(cfg *config.Config, r router.Router, db *postgres.Connection, appMiddleware middleware.AppMiddleware, sessionStore *session.Store) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		db:         db,
		middleware: appMiddleware,
		session:    sessionStore,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	addr := net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port)

	log.Info().Str("addr", addr).Msg("Starting up HTTP server.")

	if err := http.ListenAndServe(addr, h.mux); err != nil {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// Handler exposes the configured mux, which the tests drive directly.
func (h *HTTP) Handler() http.Handler {
	h.setup()

	return h.mux
}

func (h *HTTP) setup() {
	if h.mux != nil {
		return
	}

	h.setupRoutes()
	h.setupGracefulShutdown()
	h.State = ServerStateReady

	// Startup initialization is done, so the session store stops reporting
	// itself as loading.
	h.session.SetLoading(false)
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(h.middleware.CORS)
	h.mux.Use(h.middleware.Tracing)
	h.mux.Use(h.middleware.RateLimit())
	h.mux.Use(h.serverStateGate)

	h.mux.Get("/health", h.HealthCheck)

	h.Router.SetupRoutes(h.mux)
}

// serverStateGate refuses new work once the shutdown sequence has started.
func (h *HTTP) serverStateGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.State > ServerStateReady {
			response.WithPreparingShutdown(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// HealthCheck pings the backing database when one is configured. In demo
// mode there is nothing external to check, so the server is always healthy.
func (h *HTTP) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.State > ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	if h.db != nil {
		if err := h.db.Read.PingContext(r.Context()); err != nil {
			log.Error().Err(err).Msg("Health check failed to ping database")

			response.WithUnhealthy(w)

			return
		}
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if h.Config.Server.Env == "development" {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
