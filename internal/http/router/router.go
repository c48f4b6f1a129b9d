package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rogerio-castellano/inventory-form/internal/http/handlers"
	mw "github.com/rogerio-castellano/inventory-form/internal/http/middleware"
	rl "github.com/rogerio-castellano/inventory-form/internal/http/rate_limiter"
	"go.uber.org/zap"
)

type Options struct {
	Logger *zap.Logger
	// Limiter guards product submissions. Nil disables rate limiting.
	Limiter        rl.Limiter
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func NewRouter(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(mw.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(opts.RequestTimeout))
	}

	// An empty origin list would make cors allow everything.
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", handlers.HealthHandler)
	r.Get("/", handlers.ProductsPageHandler)

	r.Group(func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(mw.RateLimit(opts.Limiter, logger))
		}
		r.Post("/", handlers.CreateProductHandler)
	})

	return r
}
