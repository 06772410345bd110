package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hackerNews/cmd/app"
	"hackerNews/internal/config"
	handlers "hackerNews/internal/handler"
	"hackerNews/internal/logger"
	"hackerNews/internal/metrics"
	"hackerNews/internal/router"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()
	logger.Init(cfg.LogLevel)

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}
	if cfg.Session.SecretKey == "" {
		log.Fatal("SESSION_SECRET_KEY не установлен в .env файле")
	}

	db, services, sessions := app.App(cfg)
	defer func() {
		if err := db.CloseDB(); err != nil {
			log.WithError(err).Error("ошибка при закрытии БД")
		}
	}()

	// metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB.DB, cfg.DB.DbNAME),
	)
	m := metrics.NewMetrics(registry)

	handler := handlers.NewHandlers(services, sessions, db, cfg)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router.NewHandler(handler, m, registry),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Starting the server
	go func() {
		log.WithFields(log.Fields{
			"addr":     server.Addr,
			"database": cfg.DB.DbNAME,
		}).Info("Сервер запущен")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка запуска сервера: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("ошибка при остановке сервера")
	}
	log.Info("Сервер остановлен")
}
