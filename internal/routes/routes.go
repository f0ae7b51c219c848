package routes

import (
	"net/http"

	"blogapi/internal/handlers"
	"blogapi/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	authorH *handlers.AuthorHandler,
	postH *handlers.BlogPostHandler,
	healthH *handlers.HealthHandler,
) {
	router.Use(middleware.RequestID, middleware.Recoverer, middleware.Logging)

	router.HandleFunc("/healthz", healthH.Health).Methods(http.MethodGet)

	// --- Авторы ---
	router.HandleFunc("/authors", authorH.List).Methods(http.MethodGet)
	router.HandleFunc("/authors", authorH.Create).Methods(http.MethodPost)
	router.HandleFunc("/authors/{id}", authorH.Update).Methods(http.MethodPut)
	router.HandleFunc("/authors/{id}", authorH.Delete).Methods(http.MethodDelete)

	// --- Посты ---
	router.HandleFunc("/blogposts", postH.List).Methods(http.MethodGet)
	router.HandleFunc("/blogposts", postH.Create).Methods(http.MethodPost)
	router.HandleFunc("/blogposts/{id}", postH.Get).Methods(http.MethodGet)
	router.HandleFunc("/blogposts/{id}", postH.Update).Methods(http.MethodPut)
	router.HandleFunc("/blogposts/{id}", postH.Delete).Methods(http.MethodDelete)
}
