package middleware

import (
	"net/http"
	"strings"
	"time"

	handlers "hackerNews/internal/handler"
	"hackerNews/internal/metrics"
	"hackerNews/internal/service"
	"hackerNews/internal/session"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Middleware func(http.Handler) http.Handler

const (
	requestIDHeader = "X-Request-ID"
	slowRequest     = 2 * time.Second
)

// AuthMiddleware resolves the caller from a Bearer token or the session cookie.
// Requests with neither continue anonymously.
func AuthMiddleware(sessions *session.Manager, authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// token first
			if authHeader := r.Header.Get("Authorization"); authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) != 2 || parts[0] != "Bearer" {
					handlers.WriteError(w, "Неверный формат токена", http.StatusForbidden)
					return
				}

				userID, err := authService.ValidateToken(parts[1])
				if err != nil {
					handlers.WriteError(w, "Недействительный токен", http.StatusForbidden)
					return
				}

				next.ServeHTTP(w, r.WithContext(session.WithUserID(r.Context(), userID)))
				return
			}

			// then cookie
			if userID, err := sessions.UserID(r); err == nil {
				next.ServeHTTP(w, r.WithContext(session.WithUserID(r.Context(), userID)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

// ReadOnlyUnlessAuthenticated lets anyone read and only known users write.
func ReadOnlyUnlessAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isSafeMethod(r.Method) {
			if _, ok := session.UserIDFromContext(r.Context()); !ok {
				handlers.WriteError(w, "Учетные данные не были предоставлены.", http.StatusForbidden)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, requestID)

		m := httpsnoop.CaptureMetrics(next, w, r)

		entry := log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     m.Code,
			"duration":   m.Duration.String(),
			"bytes":      m.Written,
			"remote":     r.RemoteAddr,
		})

		switch {
		case m.Code >= http.StatusInternalServerError:
			entry.Error("запрос завершился ошибкой")
		case m.Duration > slowRequest:
			entry.Warn("медленный запрос")
		default:
			entry.Info("запрос обработан")
		}
	})
}

// MetricsMiddleware is meant for router.Use, where the matched route template is known.
func MetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tpl, err := route.GetPathTemplate(); err == nil {
					path = tpl
				}
			}

			snoop := httpsnoop.CaptureMetrics(next, w, r)
			m.Observe(r.Method, path, snoop.Code, snoop.Duration)
		})
	}
}

// Chain applies middlewares so that the first one is the innermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
