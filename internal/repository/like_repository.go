package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hackerNews/internal/models"
)

type LikeRepositoryImpl struct {
	db Querier
}

func NewLikeRepository(db Querier) *LikeRepositoryImpl {
	return &LikeRepositoryImpl{db: db}
}

const likeCreateAttempts = 2

// Create stores the like unless the user already likes the post. In that case
// like is filled from the existing row and false is returned. When the existing
// row disappears between the insert and the lookup the insert is tried again.
func (r *LikeRepositoryImpl) Create(ctx context.Context, like *models.Like) (bool, error) {
	query := `
		INSERT INTO likes (user_id, post_id) VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING
		RETURNING id
	`

	for attempt := 0; attempt < likeCreateAttempts; attempt++ {
		err := r.db.QueryRowxContext(ctx, query, like.UserID, like.PostID).Scan(&like.ID)
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("ошибка при создании лайка: %w", classifyError(err))
		}

		err = r.db.GetContext(ctx, like,
			`SELECT id, user_id, post_id FROM likes WHERE user_id = $1 AND post_id = $2`, like.UserID, like.PostID)
		if err == nil {
			return false, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return false, fmt.Errorf("ошибка при получении лайка: %w", err)
		}
	}

	return false, fmt.Errorf("лайк пользователя %d для поста %d: %w", like.UserID, like.PostID, models.ErrNotFound)
}

func (r *LikeRepositoryImpl) GetByID(ctx context.Context, likeID int64) (*models.Like, error) {
	var like models.Like

	err := r.db.GetContext(ctx, &like, `SELECT id, user_id, post_id FROM likes WHERE id = $1`, likeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("лайк с ID %d: %w", likeID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении лайка: %w", err)
	}

	return &like, nil
}

func (r *LikeRepositoryImpl) GetAll(ctx context.Context) ([]*models.Like, error) {
	likes := []*models.Like{}

	if err := r.db.SelectContext(ctx, &likes, `SELECT id, user_id, post_id FROM likes ORDER BY id`); err != nil {
		return nil, fmt.Errorf("ошибка при получении лайков: %w", err)
	}

	return likes, nil
}

func (r *LikeRepositoryImpl) GetUserIDsByPostID(ctx context.Context, postID int64) ([]int64, error) {
	userIDs := []int64{}

	err := r.db.SelectContext(ctx, &userIDs, `SELECT user_id FROM likes WHERE post_id = $1 ORDER BY id`, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении лайкнувших пользователей: %w", err)
	}

	return userIDs, nil
}

func (r *LikeRepositoryImpl) Update(ctx context.Context, like *models.Like) error {
	query := `UPDATE likes SET user_id = :user_id, post_id = :post_id WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, like)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении лайка: %w", classifyError(err))
	}

	return checkAffected(result, "лайк", like.ID)
}

func (r *LikeRepositoryImpl) Delete(ctx context.Context, likeID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE id = $1`, likeID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении лайка: %w", err)
	}

	return checkAffected(result, "лайк", likeID)
}

// DeleteByUserAndPost is a no-op when the user does not like the post.
func (r *LikeRepositoryImpl) DeleteByUserAndPost(ctx context.Context, userID, postID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`, userID, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении лайка: %w", err)
	}

	return nil
}
