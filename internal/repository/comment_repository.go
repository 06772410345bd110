package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hackerNews/internal/models"
)

type CommentRepositoryImpl struct {
	db Querier
}

func NewCommentRepository(db Querier) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{db: db}
}

const commentColumns = `id, author_id, content, creation_date, post_id`

func (r *CommentRepositoryImpl) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (author_id, content, creation_date, post_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	comment.CreationDate = models.Today()

	err := r.db.QueryRowxContext(ctx, query,
		comment.AuthorID, comment.Content, comment.CreationDate, comment.PostID).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", classifyError(err))
	}

	return nil
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	var comment models.Comment

	err := r.db.GetContext(ctx, &comment, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("комментарий с ID %d: %w", commentID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении комментария: %w", err)
	}

	return &comment, nil
}

func (r *CommentRepositoryImpl) GetAll(ctx context.Context) ([]*models.Comment, error) {
	comments := []*models.Comment{}

	err := r.db.SelectContext(ctx, &comments, `SELECT `+commentColumns+` FROM comments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

func (r *CommentRepositoryImpl) GetByPostID(ctx context.Context, postID int64) ([]*models.Comment, error) {
	comments := []*models.Comment{}

	err := r.db.SelectContext(ctx, &comments,
		`SELECT `+commentColumns+` FROM comments WHERE post_id = $1 ORDER BY id`, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев поста: %w", err)
	}

	return comments, nil
}

func (r *CommentRepositoryImpl) CountByPostID(ctx context.Context, postID int64) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте комментариев: %w", err)
	}

	return count, nil
}

func (r *CommentRepositoryImpl) Update(ctx context.Context, comment *models.Comment) error {
	query := `
		UPDATE comments SET
			author_id = :author_id,
			content = :content,
			post_id = :post_id
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении комментария: %w", classifyError(err))
	}

	return checkAffected(result, "комментарий", comment.ID)
}

func (r *CommentRepositoryImpl) Delete(ctx context.Context, commentID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментария: %w", err)
	}

	return checkAffected(result, "комментарий", commentID)
}
