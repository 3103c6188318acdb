package handlers

import (
	"net/http"
	"time"

	"github.com/Lixing-Zhang/storefront-api/internal/auth"
	"github.com/Lixing-Zhang/storefront-api/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// AvailableRoutes is listed in 404 and 405 responses
var AvailableRoutes = []string{
	"GET /health",
	"GET /api/products",
	"GET /api/products/:id",
	"GET /api/categories",
	"POST /api/orders",
	"GET /api/stats",
	"POST /api/auth/login",
	"GET /api/auth/me",
}

type routeErrorResponse struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	AvailableRoutes []string `json:"availableRoutes"`
}

// RouterConfig holds everything the HTTP surface is assembled from
type RouterConfig struct {
	Products       *ProductHandler
	Orders         *OrderHandler
	Stats          *StatsHandler
	Auth           *AuthHandler
	Health         *HealthHandler
	Tokens         *auth.TokenManager
	Responder      Responder
	AllowedOrigins []string
	RequestTimeout time.Duration
	// ShowStack includes panic stack traces in 500 responses
	ShowStack bool
}

// NewRouter wires middleware and routes
func NewRouter(cfg RouterConfig) http.Handler {
	rs := cfg.Responder

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(rs.Log))
	r.Use(middleware.Recoverer(rs.Log, cfg.ShowStack))
	if cfg.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(cfg.RequestTimeout))
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rs.JSON(w, http.StatusNotFound, routeErrorResponse{
			Message:         "Route " + r.URL.Path + " not found",
			AvailableRoutes: AvailableRoutes,
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		rs.JSON(w, http.StatusMethodNotAllowed, routeErrorResponse{
			Message:         "Method " + r.Method + " not allowed on " + r.URL.Path,
			AvailableRoutes: AvailableRoutes,
		})
	})

	r.Get("/health", cfg.Health.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", cfg.Products.ListProducts)
		r.Get("/products/{id}", cfg.Products.GetProduct)
		r.Get("/categories", cfg.Products.ListCategories)

		r.Post("/orders", cfg.Orders.CreateOrder)

		r.Get("/stats", cfg.Stats.GetStats)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", cfg.Auth.Login)
			r.With(middleware.RequireAdmin(cfg.Tokens, rs.Log)).Get("/me", cfg.Auth.Me)
		})
	})

	return r
}
