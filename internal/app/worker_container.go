package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"github.com/tinashecee/lab-center-request/internal/config"
	"github.com/tinashecee/lab-center-request/internal/gateway/relay"
	"github.com/tinashecee/lab-center-request/internal/logx"
	"github.com/tinashecee/lab-center-request/internal/repository"
	"github.com/tinashecee/lab-center-request/internal/service/notify"
	"github.com/tinashecee/lab-center-request/internal/transport/kafka"
)

// WorkerContainerBuilder is a dig container builder for the notify worker.
type WorkerContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewWorkerContainerBuilder returns a new worker container builder
func NewWorkerContainerBuilder() *WorkerContainerBuilder {
	return &WorkerContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *WorkerContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *WorkerContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *WorkerContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *WorkerContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *WorkerContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *WorkerContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildWorkerContainer builds and returns a new worker dig container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewWorkerContainerBuilder().MustBuild(ctx)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		repository.NewDriverRepo,
		repository.NewCenterRepo,
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
		makeRequestsKafka,
		func(cfg *config.Config, h kafka.HandleFunc, logger logx.Logger) (*kafka.Consumer, error) {
			return kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, h, logger)
		},
	)
}
