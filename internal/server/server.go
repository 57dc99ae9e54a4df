package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kirubhashini2006-coder/internship-portal/internal/auth"
	"github.com/kirubhashini2006-coder/internship-portal/internal/config"
	"github.com/kirubhashini2006-coder/internship-portal/internal/controller"
	"github.com/kirubhashini2006-coder/internship-portal/internal/storage"
	"github.com/kirubhashini2006-coder/internship-portal/internal/store"
	"github.com/kirubhashini2006-coder/internship-portal/internal/workflow"
)

// Server wires the configured storage backend, the record store, the
// workflow manager and the HTTP handlers together.
type Server struct {
	cfg  config.Config
	log  *zap.Logger
	auth *auth.LocalAuthHandler

	portal  *controller.PortalController
	backend storage.Persistence
}

// New builds the server from the configuration. The storage backend is
// opened and the persisted record set loaded before any route is served.
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	backend, err := openBackend(cfg)
	if err != nil {
		return nil, fmt.Errorf("open storage backend: %w", err)
	}

	st, err := store.New(ctx, backend, log)
	if err != nil {
		return nil, fmt.Errorf("load record store: %w", err)
	}

	authHandler, err := auth.NewLocalAuthHandler(cfg.AdminEmail, cfg.AdminPassword, cfg.AccessKey, log)
	if err != nil {
		return nil, err
	}

	wf := workflow.NewManager(st, log)
	return &Server{
		cfg:     cfg,
		log:     log,
		auth:    authHandler,
		portal:  controller.NewPortalController(st, wf, log),
		backend: backend,
	}, nil
}

// HTTPServer returns the configured http.Server ready to listen.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Close releases the storage backend.
func (s *Server) Close() error {
	if closer, ok := s.backend.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func openBackend(cfg config.Config) (storage.Persistence, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return storage.NewMemory(), nil
	case config.BackendRedis:
		return storage.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.StorageKey)
	case config.BackendPostgres:
		return storage.OpenPostgres(cfg.PostgresDSN, cfg.StorageKey)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
