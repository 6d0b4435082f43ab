package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"carpets-api/internal/configs"
	httpdelivery "carpets-api/internal/delivery/http"
	"carpets-api/internal/repository"
	mongostore "carpets-api/internal/repository/mongo"
	"carpets-api/internal/service"
)

// @title Persian Carpets API
// @version 1.0
// @description Catalog, order and review API for a Persian carpet marketplace backed by MongoDB.

// @host localhost:8000
// @basePath /

func main() {
	_ = godotenv.Load()
	cfg, err := configs.LoadConfig()
	if err != nil {
		logrus.Fatalf("config load: %s", err)
	}
	logrus.Print("config parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The store being down must not keep the process from starting; the
	// diagnostics endpoint reports the state and store-backed handlers
	// fail per request.
	store, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.MongoURI(),
		Database: cfg.MongoDB,
	})
	if err != nil {
		logrus.Warnf("mongo connect: %s (continuing without store)", err)
		store = nil
	} else {
		logrus.Print("connected to mongo")
		defer func() {
			if derr := store.Close(context.Background()); derr != nil {
				logrus.Errorf("store close: %v", derr)
			}
		}()
	}

	repo := repository.NewRepository(store)
	svc := service.NewService(repo,
		service.WithQueryLimit(cfg.CatalogQueryLimit),
		service.WithDatabaseURL(cfg.DatabaseURL),
	)

	h := httpdelivery.NewHandler(svc)
	srv := new(httpdelivery.Server)

	go func() {
		if err := srv.Run(cfg.Addr(), h.InitRoutes()); err != nil {
			logrus.Errorf("http run: %v", err)
			cancel()
		}
	}()
	logrus.Printf("http server started on %s", cfg.Addr())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		logrus.Print("shutdown signal received")
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("http shutdown: %v", err)
	}
	logrus.Print("server stopped")
}
