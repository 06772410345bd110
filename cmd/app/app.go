package app

import (
	"hackerNews/internal/config"
	"hackerNews/internal/database"
	"hackerNews/internal/repository"
	"hackerNews/internal/service"
	"hackerNews/internal/session"

	log "github.com/sirupsen/logrus"
)

func App(cfg *config.Config) (*database.DB, *service.Service, *session.Manager) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg)

	sessions := session.NewManager(cfg.Session)

	return db, services, sessions
}
