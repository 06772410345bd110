package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hackerNews/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Querier is the part of sqlx shared by *sqlx.DB and *sqlx.Tx.
type Querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

var (
	_ Querier = (*sqlx.DB)(nil)
	_ Querier = (*sqlx.Tx)(nil)
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	GetAll(ctx context.Context) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post, likedBy []int64) error
	Delete(ctx context.Context, postID int64) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID int64) (*models.Comment, error)
	GetAll(ctx context.Context) ([]*models.Comment, error)
	GetByPostID(ctx context.Context, postID int64) ([]*models.Comment, error)
	CountByPostID(ctx context.Context, postID int64) (int, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentID int64) error
}

type LikeRepository interface {
	Create(ctx context.Context, like *models.Like) (bool, error)
	GetByID(ctx context.Context, likeID int64) (*models.Like, error)
	GetAll(ctx context.Context) ([]*models.Like, error)
	GetUserIDsByPostID(ctx context.Context, postID int64) ([]int64, error)
	Update(ctx context.Context, like *models.Like) error
	Delete(ctx context.Context, likeID int64) error
	DeleteByUserAndPost(ctx context.Context, userID, postID int64) error
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (*models.TablesStats, error)
}

type Repository struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
	Like    LikeRepository
	Tables  TablesRepository

	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	rep := newRepository(db)
	rep.db = db
	return rep
}

func newRepository(q Querier) *Repository {
	return &Repository{
		User:    NewUserRepository(q),
		Post:    NewPostRepository(q),
		Comment: NewCommentRepository(q),
		Like:    NewLikeRepository(q),
		Tables:  NewTablesRepository(q),
	}
}

// RunInTx calls fn with repositories bound to one transaction and commits when fn succeeds.
// Read-only transactions use REPEATABLE READ so every query sees the same snapshot.
func (r *Repository) RunInTx(ctx context.Context, readOnly bool, fn func(rep *Repository) error) error {
	opts := &sql.TxOptions{}
	if readOnly {
		opts = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}

	tx, err := r.db.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	if err := fn(newRepository(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// classifyError maps constraint violations reported by Postgres onto model errors.
func classifyError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqUniqueViolation:
		return fmt.Errorf("%w: %s", models.ErrDuplicate, pqErr.Constraint)
	case pqForeignKeyViolation:
		return fmt.Errorf("%w: нарушена ссылка %s", models.ErrValidation, pqErr.Constraint)
	}
	return err
}

func checkAffected(result interface{ RowsAffected() (int64, error) }, what string, id int64) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке измененных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s с ID %d: %w", what, id, models.ErrNotFound)
	}

	return nil
}
