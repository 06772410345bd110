package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"hackerNews/internal/config"
	"hackerNews/internal/models"
	"hackerNews/internal/repository"
	"hackerNews/internal/serializer"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AuthService interface {
	Register(ctx context.Context, req serializer.UserInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	ValidateToken(tokenString string) (int64, error)
}

type authService struct {
	tx  Transactor
	cfg *config.Config
}

type accessClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func NewAuthService(tx Transactor, cfg *config.Config) AuthService {
	return &authService{
		tx:  tx,
		cfg: cfg,
	}
}

const usernameTakenMessage = "Пользователь с таким именем уже существует."

func (s *authService) Register(ctx context.Context, req serializer.UserInput) (*models.User, error) {
	user := &models.User{Username: req.Username}

	err := s.tx.RunInTx(ctx, false, func(rep *repository.Repository) error {
		existingUser, err := rep.User.GetUserByUsername(ctx, req.Username)
		if err == nil && existingUser != nil {
			return models.NewValidationError("username", usernameTakenMessage)
		}
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return err
		}

		err = rep.User.CreateUser(ctx, user, req.Password)
		if errors.Is(err, models.ErrDuplicate) {
			return models.NewValidationError("username", usernameTakenMessage)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	var user *models.User
	err := s.tx.RunInTx(ctx, true, func(rep *repository.Repository) error {
		var err error
		user, err = rep.User.VerifyPassword(ctx, username, password)
		return err
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrUnauthorized) {
			return nil, "", fmt.Errorf("неверное имя пользователя или пароль: %w", models.ErrUnauthorized)
		}
		return nil, "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, accessToken, nil
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := accessClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// ValidateToken returns the id of the user the access token was issued to.
func (s *authService) ValidateToken(tokenString string) (int64, error) {
	var claims accessClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTSecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("ошибка парсинга токена: %v: %w", err, models.ErrUnauthorized)
	}

	if !token.Valid || claims.UserID == 0 {
		return 0, fmt.Errorf("недействительный токен: %w", models.ErrUnauthorized)
	}

	return claims.UserID, nil
}
