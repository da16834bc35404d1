package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/jaehyun-dev/stockfolio-be/internal/config"
	"github.com/jaehyun-dev/stockfolio-be/internal/server"
	"github.com/jaehyun-dev/stockfolio-be/internal/storage/postgres"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	loadLocalEnv(log)

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	ctx := context.Background()
	store, err := postgres.New(ctx, cfg.DatabaseURL, postgres.Options{
		Timeout:           cfg.StoreTimeout,
		SeedReferenceData: cfg.SeedReference,
	})
	if err != nil {
		log.WithError(err).Fatal("init database")
	}
	defer store.Close()

	srv := server.New(cfg, server.Stores{
		Users:        store,
		Portfolios:   store,
		Calculations: store,
		Boards:       store,
		Menus:        store,
		Roles:        store,
	}, log)

	go func() {
		log.WithField("addr", cfg.HTTPAddress()).Info("stockfolio backend listening")
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("http server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Warn("graceful shutdown error")
	}
}

func loadLocalEnv(log *logrus.Logger) {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found; relying on existing environment")
	}
}
