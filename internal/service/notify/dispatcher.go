package notify

import (
	"context"
	"sync"

	"github.com/tinashecee/lab-center-request/internal/domain"
	"github.com/tinashecee/lab-center-request/internal/logx"
)

type counter interface {
	Inc()
}

// Dispatcher fans one notification payload out to a set of driver targets.
// Each target gets exactly one relay attempt; failures are isolated per
// target and never abort the batch.
type Dispatcher struct {
	relay    RelaySender
	logger   logx.Logger
	attempts counter
	failures counter
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(relay RelaySender, logger logx.Logger, attempts, failures counter) *Dispatcher {
	return &Dispatcher{
		relay:    relay,
		logger:   logger,
		attempts: attempts,
		failures: failures,
	}
}

// Dispatch submits the payload to every target concurrently and joins on the
// full set. It returns one outcome per target and never an error: the batch
// result is diagnostic only.
func (d *Dispatcher) Dispatch(ctx context.Context, targets []domain.DispatchTarget, payload domain.NotificationPayload) []domain.DispatchOutcome {
	outcomes := make([]domain.DispatchOutcome, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target domain.DispatchTarget) {
			defer wg.Done()
			outcomes[i] = d.send(ctx, target, payload)
		}(i, target)
	}
	wg.Wait()

	return outcomes
}

func (d *Dispatcher) send(ctx context.Context, target domain.DispatchTarget, payload domain.NotificationPayload) domain.DispatchOutcome {
	if d.attempts != nil {
		d.attempts.Inc()
	}

	msgID, err := d.relay.Send(ctx, target, payload)
	if err != nil {
		if d.failures != nil {
			d.failures.Inc()
		}
		d.logger.Error("notification dispatch failed",
			logx.String("driver_id", target.DriverID),
			logx.String("driver_name", target.DriverName),
			logx.Err(err),
		)
		return domain.DispatchOutcome{
			DriverID:   target.DriverID,
			DriverName: target.DriverName,
			OK:         false,
			Error:      err.Error(),
		}
	}

	d.logger.Info("notification dispatched",
		logx.String("driver_id", target.DriverID),
		logx.String("driver_name", target.DriverName),
		logx.String("message_id", msgID),
	)
	return domain.DispatchOutcome{
		DriverID:   target.DriverID,
		DriverName: target.DriverName,
		OK:         true,
		MessageID:  msgID,
	}
}
