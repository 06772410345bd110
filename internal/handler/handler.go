package handlers

import (
	"context"

	"hackerNews/internal/config"
	"hackerNews/internal/serializer"
	"hackerNews/internal/service"
	"hackerNews/internal/session"

	"github.com/go-playground/validator/v10"
)

// HealthChecker is satisfied by *database.DB.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Handlers struct {
	AuthService    service.AuthService
	PostService    service.PostService
	CommentService service.CommentService
	LikeService    service.LikeService
	TablesService  service.TablesService
	Sessions       *session.Manager
	DB             HealthChecker
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(service *service.Service, sessions *session.Manager, db HealthChecker, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		PostService:    service.Post,
		CommentService: service.Comment,
		LikeService:    service.Like,
		TablesService:  service.Tables,
		Sessions:       sessions,
		DB:             db,
		Cfg:            config,
		Validate:       serializer.NewValidator(),
	}
}
