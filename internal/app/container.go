package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"github.com/tinashecee/lab-center-request/internal/config"
	"github.com/tinashecee/lab-center-request/internal/gateway/relay"
	"github.com/tinashecee/lab-center-request/internal/http/handlers"
	"github.com/tinashecee/lab-center-request/internal/http/router"
	"github.com/tinashecee/lab-center-request/internal/logx"
	"github.com/tinashecee/lab-center-request/internal/repository"
	"github.com/tinashecee/lab-center-request/internal/service/intake"
	"github.com/tinashecee/lab-center-request/internal/service/notify"
	"github.com/tinashecee/lab-center-request/internal/service/registry"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() *log.Logger { return log.Default() },
		NewLogger,
		config.Load,
		newMetrics,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewRequestRepo,
		repository.NewDriverRepo,
		repository.NewCenterRepo,
		repository.NewStatsRepo,
		func() time.Duration { return 3 * time.Second },
		func(cfg *config.Config) *relay.Client {
			return relay.NewClient(cfg.Relay.BaseURL, cfg.Relay.Timeout)
		},
		func(cfg *config.Config, repo *repository.DriverRepo, logger logx.Logger) (notify.Resolver, error) {
			return notify.NewResolver(cfg.Notify.Strategy, repo, logger)
		},
		func(client *relay.Client, logger logx.Logger, m *appMetrics) *notify.Dispatcher {
			return notify.NewDispatcher(client, logger, m.dispatchAttempts, m.dispatchFailures)
		},
		func(
			centers *repository.CenterRepo,
			resolver notify.Resolver,
			dispatcher *notify.Dispatcher,
			logger logx.Logger,
		) *notify.Pipeline {
			return notify.NewPipeline(centers, resolver, dispatcher, logger)
		},
		newHook,
		func(
			repo *repository.RequestRepo,
			hook intake.Hook,
			timeout time.Duration,
			logger logx.Logger,
			m *appMetrics,
		) *intake.Service {
			return intake.NewService(repo, hook, timeout, logger, m.requestsCreated)
		},
		func(
			centers *repository.CenterRepo,
			stats *repository.StatsRepo,
			timeout time.Duration,
		) *registry.Service {
			return registry.NewService(centers, stats, timeout)
		},
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		func(svc *intake.Service, logger logx.Logger) *handlers.RequestHandlers {
			return handlers.NewRequestHandlers(svc, logger)
		},
		func(svc *registry.Service, logger logx.Logger) *handlers.CenterHandlers {
			return handlers.NewCenterHandlers(svc, logger)
		},
		func(svc *registry.Service, logger logx.Logger) *handlers.StatsHandlers {
			return handlers.NewStatsHandlers(svc, logger)
		},
		newRouterDeps,
		router.New,
		serverProvider,
	)
}
