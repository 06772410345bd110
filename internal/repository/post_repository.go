package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hackerNews/internal/models"
)

type PostRepositoryImpl struct {
	db Querier
}

func NewPostRepository(db Querier) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts (title, link, author_id, creation_date)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `

	post.CreationDate = models.Today()

	err := r.db.QueryRowxContext(ctx, query, post.Title, post.Link, post.AuthorID, post.CreationDate).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", classifyError(err))
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `
        SELECT id, title, link, author_id, creation_date FROM posts
        WHERE id = $1
    `

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %d: %w", postID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context) ([]*models.Post, error) {
	query := `
        SELECT id, title, link, author_id, creation_date FROM posts
        ORDER BY id
    `

	posts := []*models.Post{}
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}

// Update saves title and link and adds likedBy to the existing likes of the post.
// Users that already like the post are left untouched. Callers run it inside RunInTx.
func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post, likedBy []int64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE posts SET title = $1, link = $2 WHERE id = $3`,
		post.Title, post.Link, post.ID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	if err := checkAffected(result, "пост", post.ID); err != nil {
		return err
	}

	for _, userID := range likedBy {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO likes (user_id, post_id) VALUES ($1, $2)
			ON CONFLICT (user_id, post_id) DO NOTHING
		`, userID, post.ID)
		if err != nil {
			return fmt.Errorf("ошибка при добавлении лайка: %w", classifyError(err))
		}
	}

	return nil
}

// Delete removes the post together with its comments and likes.
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	return checkAffected(result, "пост", postID)
}
