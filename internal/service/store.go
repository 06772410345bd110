package service

import (
	"context"
	"errors"

	"hackerNews/internal/models"
	"hackerNews/internal/repository"
	"hackerNews/internal/serializer"
)

// Transactor runs fn with repositories bound to one database transaction.
// It is implemented by *repository.Repository.
type Transactor interface {
	RunInTx(ctx context.Context, readOnly bool, fn func(rep *repository.Repository) error) error
}

var _ Transactor = (*repository.Repository)(nil)

// store feeds the serializer's computed fields from the repositories.
type store struct {
	users    repository.UserRepository
	comments repository.CommentRepository
	likes    repository.LikeRepository
}

func (s store) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetUserByID(ctx, userID)
}

func (s store) GetCommentsByPostID(ctx context.Context, postID int64) ([]*models.Comment, error) {
	return s.comments.GetByPostID(ctx, postID)
}

func (s store) CountCommentsByPostID(ctx context.Context, postID int64) (int, error) {
	return s.comments.CountByPostID(ctx, postID)
}

func (s store) GetLikedBy(ctx context.Context, postID int64) ([]int64, error) {
	return s.likes.GetUserIDsByPostID(ctx, postID)
}

var _ serializer.Store = store{}

func newStore(rep *repository.Repository) store {
	return store{users: rep.User, comments: rep.Comment, likes: rep.Like}
}

// references checks that ids sent by the client point at existing rows.
// Missing rows are collected into one validation error.
type references struct {
	users repository.UserRepository
	posts repository.PostRepository
}

func newReferences(rep *repository.Repository) references {
	return references{users: rep.User, posts: rep.Post}
}

func (r references) checkUser(ctx context.Context, vErr *models.ValidationError, field string, userID int64) error {
	if _, err := r.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			vErr.Add(field, serializer.InvalidPKMessage(userID))
			return nil
		}
		return err
	}
	return nil
}

func (r references) checkPost(ctx context.Context, vErr *models.ValidationError, field string, postID int64) error {
	if _, err := r.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			vErr.Add(field, serializer.InvalidPKMessage(postID))
			return nil
		}
		return err
	}
	return nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
