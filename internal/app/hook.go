package app

import (
	"context"
	"time"

	"github.com/tinashecee/lab-center-request/internal/config"
	"github.com/tinashecee/lab-center-request/internal/logx"
	"github.com/tinashecee/lab-center-request/internal/service/intake"
	"github.com/tinashecee/lab-center-request/internal/service/notify"
	"github.com/tinashecee/lab-center-request/internal/transport/kafka"
)

// newHook selects the post-commit notification channel: the Kafka producer
// when the bus is configured, otherwise an in-process async hook that runs
// the pipeline directly.
func newHook(cfg *config.Config, pipeline *notify.Pipeline, logger logx.Logger) (intake.Hook, error) {
	if cfg.Kafka.Brokers != nil && cfg.Kafka.Topic != "" {
		producer, err := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		if err != nil {
			return nil, err
		}
		if producer != nil {
			return producer, nil
		}
	}
	return newInlineHook(pipeline, logger), nil
}

// inlineHook runs the notification pipeline in-process. Dispatch happens on
// its own goroutine with a detached context: the request that triggered it
// is already committed and answered.
type inlineHook struct {
	pipeline *notify.Pipeline
	logger   logx.Logger
	timeout  time.Duration
}

func newInlineHook(pipeline *notify.Pipeline, logger logx.Logger) *inlineHook {
	return &inlineHook{
		pipeline: pipeline,
		logger:   logger,
		timeout:  30 * time.Second,
	}
}

// RequestCreated hands the event to the pipeline asynchronously and always
// returns nil.
func (h *inlineHook) RequestCreated(_ context.Context, ev notify.RequestEvent) error {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		defer cancel()
		if err := h.pipeline.Handle(ctx, ev); err != nil {
			h.logger.Error("inline dispatch failed",
				logx.String("request_id", ev.RequestID),
				logx.Err(err),
			)
		}
	}()
	return nil
}
