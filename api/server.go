package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	"github.com/vortexlabs/portfolio-backend/config"
	"github.com/vortexlabs/portfolio-backend/database"
	"github.com/vortexlabs/portfolio-backend/services"
	"github.com/vortexlabs/portfolio-backend/session"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(db database.Database, cfg config.Config) (Server, error) {
	address := fmt.Sprintf("0.0.0.0:%s", cfg.Port)

	startupTime := time.Now()

	sessions := newSessionStore(cfg)
	storage := newObjectStorage(cfg)

	router := newRouter(db, withConfig(cfg), withStartupTime(startupTime),
		withSessionStore(sessions), withObjectStorage(storage))

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return Server{server, startupTime}, nil
}

// newSessionStore picks the session backend: Redis when configured,
// in-process memory otherwise. Memory sessions do not survive
// restarts, which is acceptable for single-instance deployments.
func newSessionStore(cfg config.Config) session.Store {
	if cfg.RedisAddr == "" {
		log.Info().Msg("Using in-memory session store")
		return session.NewMemoryStore()
	}

	store := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).
			Msg("Redis unreachable at startup, continuing anyway")
	} else {
		log.Info().Str("addr", cfg.RedisAddr).Msg("Using redis session store")
	}
	return store
}

func newObjectStorage(cfg config.Config) services.ObjectStorage {
	if cfg.S3.Bucket == "" {
		log.Info().Msg("Object storage not configured, uploads disabled")
		return nil
	}
	return services.NewS3Storage(cfg.S3)
}

type router struct {
	config      config.Config
	startupTime time.Time
	sessions    session.Store
	storage     services.ObjectStorage
}

func withConfig(cfg config.Config) func(*router) {
	return func(r *router) {
		r.config = cfg
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func withSessionStore(store session.Store) func(*router) {
	return func(r *router) {
		r.sessions = store
	}
}

func withObjectStorage(storage services.ObjectStorage) func(*router) {
	return func(r *router) {
		r.storage = storage
	}
}

func newRouter(db database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}
	if router.sessions == nil {
		router.sessions = session.NewMemoryStore()
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	handlers := initializeHandlers(db, router.sessions, router.storage, router.config)

	sessionMW := newSessionMiddleware(router.sessions, []byte(router.config.SessionSecret))

	chiRouter.Use(CORSCheckMiddleware(router.config.AcceptedOrigins))
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   router.config.AcceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	chiRouter.Use(ColoredHTTPLoggingMiddleware)
	chiRouter.Use(sessionMW.resolve)

	setupRoutes(chiRouter, handlers, sessionMW, router.startupTime)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
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
