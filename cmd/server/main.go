package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kirubhashini2006-coder/internship-portal/internal/config"
	"github.com/kirubhashini2006-coder/internship-portal/internal/server"
	"github.com/kirubhashini2006-coder/internship-portal/pkg/logger"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatal("failed to build logger: ", err)
	}
	defer func() { _ = zlog.Sync() }()

	srv, err := server.New(context.Background(), cfg, zlog)
	if err != nil {
		zlog.Fatal("server failed to initialize", zap.Error(err))
	}
	defer func() { _ = srv.Close() }()

	httpSrv := srv.HTTPServer()
	go func() {
		zlog.Info("portal listening",
			zap.Int("port", cfg.Port),
			zap.String("backend", cfg.StorageBackend))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("http server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		zlog.Error("shutdown error", zap.Error(err))
	}
	zlog.Info("portal stopped")
}
