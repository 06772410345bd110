package service

import (
	"hackerNews/internal/config"
	"hackerNews/internal/repository"
)

type Service struct {
	Auth    AuthService
	Post    PostService
	Comment CommentService
	Like    LikeService
	Tables  TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config) *Service {
	return &Service{
		Auth:    NewAuthService(rep, cfg),
		Post:    NewPostService(rep),
		Comment: NewCommentService(rep),
		Like:    NewLikeService(rep),
		Tables:  NewTablesService(rep),
	}
}
