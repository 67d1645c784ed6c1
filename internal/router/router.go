package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/qaboard/internal/middleware"
	"github.com/itchan-dev/qaboard/internal/middleware/metrics"
	"github.com/itchan-dev/qaboard/internal/middleware/ratelimiter"
	"github.com/itchan-dev/qaboard/internal/setup"
)

const limiterExpiration = time.Hour

// New creates the router serving the JSON API under /v1 and the HTML board
// under /. POST routes share one per-IP limiter when post_rps > 0.
func New(deps *setup.Dependencies, stop <-chan struct{}) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	h := deps.Handler
	fe := deps.Frontend
	public := deps.Config.Public

	limitPosts := func(next http.Handler) http.Handler { return next }
	if public.PostRPS > 0 {
		rl := ratelimiter.New(public.PostRPS, public.PostBurst, limiterExpiration)
		rl.StartCleanup(limiterExpiration/4, stop)
		limitPosts = middleware.RateLimit(rl, middleware.GetIP)
	}

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		v1.Use(cors.Handler(cors.Options{
			AllowedOrigins: public.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         300,
		}))

		v1.Get("/threads", h.GetBoard)
		v1.Get("/threads/{thread}", h.GetThread)
		v1.With(limitPosts).Post("/threads", h.CreateThread)
		v1.With(limitPosts).Post("/threads/{thread}/replies", h.CreateReply)
	})

	r.Group(func(web chi.Router) {
		web.Use(middleware.CSRF(public.SecureCookies))

		web.Get("/", fe.BoardGetHandler)
		web.With(limitPosts).Post("/threads", fe.ThreadPostHandler)
		web.With(limitPosts).Post("/threads/{thread}/replies", fe.ReplyPostHandler)
	})

	return r
}
