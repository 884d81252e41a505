package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/uzushio/tinysearch"
	"github.com/uzushio/tinysearch/internal/config"
	"github.com/uzushio/tinysearch/internal/logger"
	"github.com/uzushio/tinysearch/internal/server"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to the YAML config file")
		env        = flag.String("env", "local", "environment: local, dev, prod")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(*env, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	var storage tinysearch.Storage
	if cfg.PersistenceEnabled() {
		db, err := tinysearch.NewDBClient(tinysearch.NewDBConfig(
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Addr,
			cfg.Database.Port,
			cfg.Database.DB,
		))
		if err != nil {
			log.Fatal("failed to open database", zap.Error(err))
		}
		defer db.Close()
		storage = tinysearch.NewStorageRdbImpl(db)
	}

	srv := server.New(tinysearch.NewEngine(), storage, cfg.Snapshot.Name, log)
	if err := srv.RestoreSnapshot(); err != nil {
		log.Fatal("failed to restore snapshot", zap.Error(err))
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      srv.Router(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	go func() {
		log.Info("tinysearchd listening",
			zap.Int("port", cfg.HTTP.Port),
			zap.Bool("persistence", storage != nil),
			zap.String("snapshot", cfg.Snapshot.Name),
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
