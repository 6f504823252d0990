package api

import (
	"encoding/json"
	"net/http"

	"github.com/avieira/taskdeck-be/internal/api/handlers"
	"github.com/avieira/taskdeck-be/internal/auth"
	"github.com/avieira/taskdeck-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(codec *auth.Codec, authService services.AuthServiceProvider, userService services.UserServiceProvider, todoService services.TodoServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsAndLog)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	todoHandler := handlers.NewTodoHandler(todoService)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("taskdeck API is up"))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Post("/auth/login", authHandler.Login)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.Create)
		// Listing every account is admin-only.
		r.With(auth.RequireRoles(codec, "admin")).Get("/", userHandler.GetAll)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", userHandler.Get)
			r.Put("/", userHandler.Update)
			r.Delete("/", userHandler.Delete)
		})
	})

	r.Route("/todos", func(r chi.Router) {
		r.Post("/", todoHandler.Create)
		r.Get("/", todoHandler.GetAll)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", todoHandler.Get)
			r.Put("/", todoHandler.Update)
			r.Delete("/", todoHandler.Delete)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "route not found",
			"path":    r.URL.Path,
		})
	})

	return r
}
