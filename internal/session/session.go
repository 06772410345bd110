package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"hackerNews/internal/config"

	"github.com/gorilla/sessions"
)

const userIDKey = "user_id"

var ErrNoSession = errors.New("сессия не найдена")

// Manager keeps the logged in user id in a signed cookie.
type Manager struct {
	store sessions.Store
	name  string
}

func NewManager(cfg config.Session) *Manager {
	store := sessions.NewCookieStore([]byte(cfg.SecretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, name: cfg.CookieName}
}

func (m *Manager) Login(w http.ResponseWriter, r *http.Request, userID int64) error {
	sess, err := m.store.Get(r, m.name)
	if err != nil && sess == nil {
		return fmt.Errorf("ошибка при чтении сессии: %w", err)
	}

	sess.Values[userIDKey] = userID
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("ошибка при сохранении сессии: %w", err)
	}
	return nil
}

func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	sess, err := m.store.Get(r, m.name)
	if err != nil && sess == nil {
		return fmt.Errorf("ошибка при чтении сессии: %w", err)
	}

	delete(sess.Values, userIDKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("ошибка при удалении сессии: %w", err)
	}
	return nil
}

// UserID returns the user stored in the request cookie. A tampered or expired cookie counts as no session.
func (m *Manager) UserID(r *http.Request) (int64, error) {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		return 0, ErrNoSession
	}

	userID, ok := sess.Values[userIDKey].(int64)
	if !ok || userID <= 0 {
		return 0, ErrNoSession
	}
	return userID, nil
}

type contextKey struct{}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(contextKey{}).(int64)
	return userID, ok && userID > 0
}
