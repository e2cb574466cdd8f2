package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/dileepkhanna/jobportal/config"
	"github.com/dileepkhanna/jobportal/internal/cache"
	"github.com/dileepkhanna/jobportal/internal/db"
	"github.com/dileepkhanna/jobportal/internal/events"
	"github.com/dileepkhanna/jobportal/internal/handlers"
	"github.com/dileepkhanna/jobportal/internal/mq"
	"github.com/dileepkhanna/jobportal/internal/seed"
	"github.com/dileepkhanna/jobportal/internal/services"
	"github.com/dileepkhanna/jobportal/internal/session"
	"github.com/dileepkhanna/jobportal/internal/store"
	"github.com/dileepkhanna/jobportal/internal/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	defaultPort     = 8002
	shutdownTimeout = 10 * time.Second
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	cache      *cache.Redis
	mq         *mq.MQ
}

// New migrates and seeds the database, connects the optional cache and
// broker, and constructs a Server with the portal routes.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	if err := db.MigrateUp(cfg); err != nil {
		return nil, err
	}

	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if _, err := seed.Seed(ctx, dbConn); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	sessions, err := session.NewManager(cfg.Session.SecretKey, cfg.Session.TTL)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	broker, err := mq.Connect(ctx, cfg.MQ)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}
	var publisher events.Publisher
	if broker != nil {
		publisher = broker
	}

	skillCache := cache.NewRedis(ctx, cfg.Redis, logger)

	userRepo := store.NewUserRepository(dbConn)
	catalogRepo := store.NewCatalogRepository(dbConn)

	userService := services.NewUserService(userRepo, events.NewUsers(publisher, logger))
	skillService := services.NewSkillService(catalogRepo, skillCache)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
		sessions.Middleware,
	)
	router.Get("/health", handlers.Healthz)
	router.Handle("/static/*", web.StaticHandler())
	router.Group(func(r chi.Router) {
		handlers.AuthRouter(r, userService, sessions)
		handlers.JobRouter(r, skillService)
	})
	router.Route("/api", func(r chi.Router) {
		handlers.APIRouter(r, skillService)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = defaultPort
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		cache:      skillCache,
		mq:         broker,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server. It returns http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Run serves until ctx is done, then drains in-flight requests and releases
// the database, cache and broker.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	select {
	case err := <-errCh:
		_ = s.Shutdown(context.Background())
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections, waits for active requests until ctx
// expires, then closes the broker, cache and database.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if s.mq != nil {
		_ = s.mq.Close()
	}
	_ = s.cache.Close()
	if s.db != nil {
		_ = s.db.Close()
	}
	return err
}
