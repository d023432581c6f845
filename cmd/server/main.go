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

	"github.com/archemics/salessnap/internal/auth"
	"github.com/archemics/salessnap/internal/config"
	"github.com/archemics/salessnap/internal/kv"
	"github.com/archemics/salessnap/internal/pdf"
	"github.com/archemics/salessnap/internal/server"
	"github.com/archemics/salessnap/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	db, err := kv.Open(cfg.DatabaseDSN)
	if err != nil {
		log.WithError(err).Fatal("opening storage")
	}

	st := store.New(db, cfg.Seed)
	users := auth.NewStore(db)
	renderer := pdf.NewRenderer(cfg.VATRate(), log)

	handler := server.New(server.Deps{
		Store:    st,
		Users:    users,
		Renderer: renderer,
		Log:      log,
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: handler}

	go func() {
		log.WithFields(logrus.Fields{"env": cfg.Env, "addr": srv.Addr}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
	log.Info("server gracefully stopped")
}
