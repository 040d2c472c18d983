package notify

import (
	"context"
	"fmt"

	"github.com/tinashecee/lab-center-request/internal/domain"
	"github.com/tinashecee/lab-center-request/internal/logx"
)

// Named resolution strategies.
const (
	StrategyRouteMatched   = "route_matched"
	StrategyActiveRegistry = "active_registry"
)

// NewResolver returns the resolver for a named strategy.
func NewResolver(strategy string, dir DriverDirectory, logger logx.Logger) (Resolver, error) {
	switch strategy {
	case StrategyRouteMatched, "":
		return &RouteMatchedResolver{dir: dir, logger: logger}, nil
	case StrategyActiveRegistry:
		return &ActiveRegistryResolver{dir: dir, logger: logger}, nil
	default:
		return nil, fmt.Errorf("unknown resolution strategy: %q", strategy)
	}
}

// RouteMatchedResolver targets drivers whose routing key equals the request's
// route, with no status filter. This is the default strategy.
type RouteMatchedResolver struct {
	dir    DriverDirectory
	logger logx.Logger
}

// Resolve returns the notifiable drivers on the given route. A missing route
// resolves to an empty target set with a logged warning, not an error.
func (r *RouteMatchedResolver) Resolve(ctx context.Context, route string) ([]domain.DispatchTarget, error) {
	if route == "" {
		r.logger.Warn("no route resolved, skipping notification",
			logx.String("strategy", StrategyRouteMatched),
		)
		return nil, nil
	}
	drivers, err := r.dir.ListByRoute(ctx, route)
	if err != nil {
		return nil, fmt.Errorf("resolve drivers by route %q: %w", route, err)
	}
	return notifiableTargets(r.logger, drivers), nil
}

// ActiveRegistryResolver broadcasts to every driver registered as active,
// ignoring routing keys entirely. Explicit alternate to route matching.
type ActiveRegistryResolver struct {
	dir    DriverDirectory
	logger logx.Logger
}

// Resolve returns the notifiable drivers from the active registry.
func (r *ActiveRegistryResolver) Resolve(ctx context.Context, _ string) ([]domain.DispatchTarget, error) {
	drivers, err := r.dir.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve active drivers: %w", err)
	}
	return notifiableTargets(r.logger, drivers), nil
}

// notifiableTargets filters out drivers without a push address. Exclusion is
// logged per driver and never treated as an error.
func notifiableTargets(logger logx.Logger, drivers []domain.Driver) []domain.DispatchTarget {
	targets := make([]domain.DispatchTarget, 0, len(drivers))
	for _, d := range drivers {
		if !d.Notifiable() {
			logger.Info("driver has no push token, excluded from dispatch",
				logx.String("driver_id", d.ID),
				logx.String("driver_name", d.Name),
			)
			continue
		}
		targets = append(targets, domain.DispatchTarget{
			DriverID:   d.ID,
			DriverName: d.Name,
			PushToken:  d.PushToken,
		})
	}
	return targets
}
