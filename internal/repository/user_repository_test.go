package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"hackerNews/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return sqlxDB, mock
}

func TestUserRepository_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)

		user := &models.User{Username: "me"}

		mock.ExpectQuery(`INSERT INTO users \(username, password_hash\)`).
			WithArgs("me", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.CreateUser(ctx, user, "my_password")

		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.NotEqual(t, "my_password", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("my_password")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка при дублировании имени", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("me", sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: pqUniqueViolation, Constraint: "users_username_key"})

		err := repo.CreateUser(ctx, &models.User{Username: "me"}, "my_password")

		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrDuplicate)
		assert.Contains(t, err.Error(), "ошибка при создании пользователя")
	})
}

func TestUserRepository_GetUserByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешное получение пользователя по ID", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT id, username, password_hash FROM users WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}).
				AddRow(1, "some_user", "hash"))

		user, err := repo.GetUserByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "some_user", user.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пользователь не найден", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT id, username, password_hash FROM users WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByID(ctx, 42)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT id, username, password_hash FROM users`).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.GetUserByID(ctx, 1)

		require.Error(t, err)
		assert.NotErrorIs(t, err, models.ErrNotFound)
		assert.Contains(t, err.Error(), "ошибка при получении пользователя")
	})
}

func TestUserRepository_VerifyPassword(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("my_password"), bcrypt.MinCost)
	require.NoError(t, err)

	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "username", "password_hash"}).AddRow(3, "me", string(hash))
	}

	t.Run("Верный пароль", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`WHERE username = \$1`).WithArgs("me").WillReturnRows(rows())

		user, err := repo.VerifyPassword(ctx, "me", "my_password")

		require.NoError(t, err)
		assert.Equal(t, int64(3), user.ID)
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`WHERE username = \$1`).WithArgs("me").WillReturnRows(rows())

		user, err := repo.VerifyPassword(ctx, "me", "wrong")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, models.ErrUnauthorized)
	})

	t.Run("Пользователь не существует", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`WHERE username = \$1`).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

		_, err := repo.VerifyPassword(ctx, "ghost", "whatever")

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestClassifyError(t *testing.T) {
	assert.ErrorIs(t, classifyError(&pq.Error{Code: pqUniqueViolation}), models.ErrDuplicate)
	assert.ErrorIs(t, classifyError(&pq.Error{Code: pqForeignKeyViolation}), models.ErrValidation)

	plain := errors.New("boom")
	assert.Equal(t, plain, classifyError(plain))
}
