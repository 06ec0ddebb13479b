package api

import (
	"net/http"

	"github.com/abank-demo/abank-be/internal/api/handlers"
	"github.com/abank-demo/abank-be/internal/bank"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(registry bank.RegistryProvider, transfers bank.TransferProvider, staticDir string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Demo-grade CORS: the front end may be opened from anywhere.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(registry)
	accountHandler := handlers.NewAccountHandler(registry, transfers)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Get("/stats", accountHandler.Stats)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/account", func(r chi.Router) {
			r.Get("/{username}", accountHandler.Get)
			r.Post("/transfer", accountHandler.Transfer)
		})
	})

	// Static front end
	if staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}

	return r
}
