package router

import (
	"net/http"

	handlers "hackerNews/internal/handler"
	"hackerNews/internal/metrics"
	"hackerNews/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const idPattern = "/{id:[0-9]+}/"

// NewRouter registers every route. Writes on resources require an authenticated caller.
func NewRouter(h *handlers.Handlers, m *metrics.Metrics, gatherer prometheus.Gatherer) *mux.Router {
	r := mux.NewRouter().StrictSlash(true)
	r.Use(middleware.MetricsMiddleware(m))

	// service
	r.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/tables", h.TablesHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// auth
	r.HandleFunc("/register/", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login/", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout/", h.Logout).Methods(http.MethodPost)

	// posts
	posts := r.PathPrefix("/homepage").Subrouter()
	posts.Use(middleware.ReadOnlyUnlessAuthenticated)
	posts.HandleFunc("/", h.ListPosts).Methods(http.MethodGet)
	posts.HandleFunc("/", h.CreatePost).Methods(http.MethodPost)
	posts.HandleFunc(idPattern, h.RetrievePost).Methods(http.MethodGet)
	posts.HandleFunc(idPattern, h.UpdatePost).Methods(http.MethodPut)
	posts.HandleFunc(idPattern, h.PartialUpdatePost).Methods(http.MethodPatch)
	posts.HandleFunc(idPattern, h.DeletePost).Methods(http.MethodDelete)
	posts.HandleFunc("/{id:[0-9]+}/unlike/", h.UnlikePost).Methods(http.MethodPost)

	// comments
	comments := r.PathPrefix("/comments").Subrouter()
	comments.Use(middleware.ReadOnlyUnlessAuthenticated)
	comments.HandleFunc("/", h.ListComments).Methods(http.MethodGet)
	comments.HandleFunc("/", h.CreateComment).Methods(http.MethodPost)
	comments.HandleFunc(idPattern, h.RetrieveComment).Methods(http.MethodGet)
	comments.HandleFunc(idPattern, h.UpdateComment).Methods(http.MethodPut)
	comments.HandleFunc(idPattern, h.PartialUpdateComment).Methods(http.MethodPatch)
	comments.HandleFunc(idPattern, h.DeleteComment).Methods(http.MethodDelete)

	// likes
	likes := r.PathPrefix("/likes").Subrouter()
	likes.Use(middleware.ReadOnlyUnlessAuthenticated)
	likes.HandleFunc("/", h.ListLikes).Methods(http.MethodGet)
	likes.HandleFunc("/", h.CreateLike).Methods(http.MethodPost)
	likes.HandleFunc(idPattern, h.RetrieveLike).Methods(http.MethodGet)
	likes.HandleFunc(idPattern, h.UpdateLike).Methods(http.MethodPut)
	likes.HandleFunc(idPattern, h.PartialUpdateLike).Methods(http.MethodPatch)
	likes.HandleFunc(idPattern, h.DeleteLike).Methods(http.MethodDelete)

	return r
}

// NewHandler wraps the router with auth, CORS and request logging.
func NewHandler(h *handlers.Handlers, m *metrics.Metrics, gatherer prometheus.Gatherer) http.Handler {
	return middleware.Chain(
		NewRouter(h, m, gatherer),
		middleware.AuthMiddleware(h.Sessions, h.AuthService),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)
}
