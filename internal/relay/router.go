package relay

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tinashecee/lab-center-request/internal/http/middleware/ratelimit"
	"github.com/tinashecee/lab-center-request/internal/logx"
	"github.com/tinashecee/lab-center-request/internal/metrics"
)

// NewRouter constructs the relay http.Handler.
func NewRouter(h *Handlers, cfg Config, logger logx.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	limiter := ratelimit.NewTokenBucketPerWindow(
		ratelimit.RealClock{}, cfg.RateLimit, time.Second, 10*time.Minute, 10000)
	rl := ratelimit.New(logger, metrics.NewRateLimitExceededTotal(), limiter)
	r.Use(rl.Handler())

	r.Get("/health", h.Health)
	r.Post("/send-notification", h.SendNotification)

	return r
}
