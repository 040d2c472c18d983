package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tinashecee/lab-center-request/internal/http/handlers"
	mw "github.com/tinashecee/lab-center-request/internal/http/middleware"
	"github.com/tinashecee/lab-center-request/internal/http/middleware/ratelimit"
	"github.com/tinashecee/lab-center-request/internal/logx"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Base      *handlers.Handlers
	Requests  *handlers.RequestHandlers
	Centers   *handlers.CenterHandlers
	Stats     *handlers.StatsHandlers
	RateLimit *ratelimit.Middleware
	Logger    logx.Logger
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.Observability(d.Logger))
	if d.RateLimit != nil {
		r.Use(d.RateLimit.Handler())
	}
	r.Use(chimw.Timeout(10 * time.Second))

	r.Route("/requests", func(r chi.Router) {
		r.Post("/", d.Requests.Create)
		r.Get("/", d.Requests.List)
		r.Get("/{id}", d.Requests.Get)
		r.Patch("/{id}/status", d.Requests.UpdateStatus)
	})

	r.Route("/centers", func(r chi.Router) {
		r.Get("/", d.Centers.List)
		r.Get("/{id}", d.Centers.Get)
	})

	r.Get("/stats", d.Stats.Summary)

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())
	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	return r
}
