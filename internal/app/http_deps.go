package app

import (
	"github.com/tinashecee/lab-center-request/internal/config"
	"github.com/tinashecee/lab-center-request/internal/http/handlers"
	"github.com/tinashecee/lab-center-request/internal/http/middleware/ratelimit"
	"github.com/tinashecee/lab-center-request/internal/http/router"
	"github.com/tinashecee/lab-center-request/internal/logx"
)

func newRouterDeps(
	cfg *config.Config,
	base *handlers.Handlers,
	requests *handlers.RequestHandlers,
	centers *handlers.CenterHandlers,
	stats *handlers.StatsHandlers,
	rl *ratelimit.Middleware,
	logger logx.Logger,
) router.Deps {
	deps := router.Deps{
		Base:     base,
		Requests: requests,
		Centers:  centers,
		Stats:    stats,
		Logger:   logger,
	}
	if cfg.RateLimit.Enabled {
		deps.RateLimit = rl
	}
	return deps
}
