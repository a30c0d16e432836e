package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter wires the offer endpoints behind the shared middleware stack.
// Computation endpoints are rate limited per client IP; health and catalog
// reads are not.
func NewRouter(offers *OfferHandler, limiter *RateLimiter, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(loggingMiddleware(log.With().Str("component", "http").Logger()))
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/health", handleHealth)

	r.Route("/mortgage", func(r chi.Router) {
		r.Get("/lenders", offers.ListLenders)

		r.Group(func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler {
				return RateLimitMiddleware(limiter, next)
			})
			r.Post("/offers", offers.CompareOffers)
			r.Post("/assess", offers.AssessOffer)
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func loggingMiddleware(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration_ms", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("HTTP request")
		})
	}
}
