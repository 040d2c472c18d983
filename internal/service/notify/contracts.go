package notify

import (
	"context"

	"github.com/tinashecee/lab-center-request/internal/domain"
)

// DriverDirectory abstracts the read-only driver lookups used by the
// resolution strategies.
type DriverDirectory interface {
	ListByRoute(ctx context.Context, route string) ([]domain.Driver, error)
	ListActive(ctx context.Context) ([]domain.Driver, error)
}

// CenterDirectory abstracts the center lookup used as the routing-key
// fallback.
type CenterDirectory interface {
	Get(ctx context.Context, id string) (*domain.Center, error)
}

// Resolver turns a routing key into the set of notifiable driver targets.
// An empty result is a valid, non-error outcome.
type Resolver interface {
	Resolve(ctx context.Context, route string) ([]domain.DispatchTarget, error)
}

// RelaySender submits one addressed notification through the relay and
// returns the gateway-assigned message ID.
type RelaySender interface {
	Send(ctx context.Context, target domain.DispatchTarget, payload domain.NotificationPayload) (string, error)
}
