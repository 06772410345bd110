package service

import (
	"context"
	"errors"

	"hackerNews/internal/models"
	"hackerNews/internal/repository"
	"hackerNews/internal/serializer"
)

const likeTakenMessage = "Этот пользователь уже лайкнул этот пост."

type LikeService interface {
	ListLikes(ctx context.Context) ([]serializer.Like, error)
	RetrieveLike(ctx context.Context, likeID int64) (*serializer.Like, error)
	CreateLike(ctx context.Context, req serializer.LikeInput) (*serializer.Like, bool, error)
	UpdateLike(ctx context.Context, likeID int64, partial bool, fill func(req *serializer.LikeInput) error) (*serializer.Like, error)
	DeleteLike(ctx context.Context, likeID int64) error
}

type likeService struct {
	tx Transactor
}

func NewLikeService(tx Transactor) LikeService {
	return &likeService{tx: tx}
}

func (l *likeService) ListLikes(ctx context.Context) ([]serializer.Like, error) {
	var result []serializer.Like

	err := l.tx.RunInTx(ctx, true, func(rep *repository.Repository) error {
		likes, err := rep.Like.GetAll(ctx)
		if err != nil {
			return err
		}
		result = serializer.NewLikes(likes)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (l *likeService) RetrieveLike(ctx context.Context, likeID int64) (*serializer.Like, error) {
	var result serializer.Like

	err := l.tx.RunInTx(ctx, true, func(rep *repository.Repository) error {
		like, err := rep.Like.GetByID(ctx, likeID)
		if err != nil {
			return err
		}
		result = serializer.NewLike(like)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func validateLike(ctx context.Context, refs references, req serializer.LikeInput) error {
	vErr := &models.ValidationError{}
	if err := refs.checkUser(ctx, vErr, "user", req.User); err != nil {
		return err
	}
	if err := refs.checkPost(ctx, vErr, "post", req.Post); err != nil {
		return err
	}
	if !vErr.Empty() {
		return vErr
	}
	return nil
}

// CreateLike reports false when the user already liked the post; the existing like is returned.
func (l *likeService) CreateLike(ctx context.Context, req serializer.LikeInput) (*serializer.Like, bool, error) {
	var (
		result  serializer.Like
		created bool
	)

	err := l.tx.RunInTx(ctx, false, func(rep *repository.Repository) error {
		if err := validateLike(ctx, newReferences(rep), req); err != nil {
			return err
		}

		like := &models.Like{UserID: req.User, PostID: req.Post}

		var err error
		created, err = rep.Like.Create(ctx, like)
		if err != nil {
			return err
		}

		result = serializer.NewLike(like)
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return &result, created, nil
}

func (l *likeService) UpdateLike(ctx context.Context, likeID int64, partial bool, fill func(req *serializer.LikeInput) error) (*serializer.Like, error) {
	var result serializer.Like

	err := l.tx.RunInTx(ctx, false, func(rep *repository.Repository) error {
		like, err := rep.Like.GetByID(ctx, likeID)
		if err != nil {
			return err
		}

		var req serializer.LikeInput
		if partial {
			req = serializer.LikeInputFrom(serializer.NewLike(like))
		}
		if err := fill(&req); err != nil {
			return err
		}

		if err := validateLike(ctx, newReferences(rep), req); err != nil {
			return err
		}

		like.UserID = req.User
		like.PostID = req.Post

		if err := rep.Like.Update(ctx, like); err != nil {
			if errors.Is(err, models.ErrDuplicate) {
				return models.NewValidationError("non_field_errors", likeTakenMessage)
			}
			return err
		}

		result = serializer.NewLike(like)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (l *likeService) DeleteLike(ctx context.Context, likeID int64) error {
	return l.tx.RunInTx(ctx, false, func(rep *repository.Repository) error {
		return rep.Like.Delete(ctx, likeID)
	})
}
