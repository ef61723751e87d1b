package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/grubdash-api/internal/handlers"
	"github.com/Lixing-Zhang/grubdash-api/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Options configures the router
type Options struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter wires the order API routes and middleware
func NewRouter(orders *handlers.OrderHandler, health *handlers.HealthHandler, log *slog.Logger, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(opts.RequestTimeout))
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.NotFound(orders.NotFound)
	r.MethodNotAllowed(orders.MethodNotAllowed)

	r.Get("/health", health.ServeHTTP)

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", orders.ListOrders)
		r.Post("/", orders.CreateOrder)

		r.Route("/{"+handlers.OrderParam+"}", func(r chi.Router) {
			r.Get("/", orders.GetOrder)
			r.Put("/", orders.UpdateOrder)
			r.Delete("/", orders.DeleteOrder)
		})
	})

	return r
}
