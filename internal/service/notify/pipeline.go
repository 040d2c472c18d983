package notify

import (
	"context"
	"strconv"

	"github.com/tinashecee/lab-center-request/internal/domain"
	"github.com/tinashecee/lab-center-request/internal/logx"
)

// NotificationType tags the machine-readable data block of every request
// notification.
const NotificationType = "collection_request"

// Pipeline runs the full post-commit notification flow: resolve the routing
// key, resolve driver targets, fan out through the dispatcher. Every failure
// inside the pipeline is contained; the creation of the request has already
// succeeded and is never affected.
type Pipeline struct {
	centers    CenterDirectory
	resolver   Resolver
	dispatcher *Dispatcher
	logger     logx.Logger
}

// NewPipeline creates a Pipeline.
func NewPipeline(centers CenterDirectory, resolver Resolver, dispatcher *Dispatcher, logger logx.Logger) *Pipeline {
	return &Pipeline{
		centers:    centers,
		resolver:   resolver,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle processes one request-created event. It always returns nil:
// notification is best effort with at most one attempt per driver, so there
// is nothing meaningful to retry at this level.
func (p *Pipeline) Handle(ctx context.Context, ev RequestEvent) error {
	log := p.logger.With(logx.String("request_id", ev.RequestID))

	route := p.resolveRoute(ctx, log, ev)

	targets, err := p.resolver.Resolve(ctx, route)
	if err != nil {
		log.Error("driver resolution failed", logx.Err(err))
		return nil
	}
	if len(targets) == 0 {
		log.Info("no notifiable drivers resolved", logx.String("route", route))
		return nil
	}

	outcomes := p.dispatcher.Dispatch(ctx, targets, BuildPayload(ev))

	sent := 0
	for _, o := range outcomes {
		if o.OK {
			sent++
		}
	}
	log.Info("dispatch completed",
		logx.String("route", route),
		logx.Int("targets", len(targets)),
		logx.Int("sent", sent),
		logx.Int("failed", len(targets)-sent),
	)
	return nil
}

// resolveRoute uses the event's route verbatim when present, otherwise falls
// back to the originating center's stored routing key. Absence after both
// attempts is not an error.
func (p *Pipeline) resolveRoute(ctx context.Context, log logx.Logger, ev RequestEvent) string {
	if ev.Route != "" {
		return ev.Route
	}
	if ev.CenterID == "" {
		return ""
	}
	center, err := p.centers.Get(ctx, ev.CenterID)
	if err != nil {
		log.Warn("center lookup for route fallback failed",
			logx.String("center_id", ev.CenterID),
			logx.Err(err),
		)
		return ""
	}
	if center == nil {
		log.Warn("center not found for route fallback",
			logx.String("center_id", ev.CenterID),
		)
		return ""
	}
	return center.Route
}

// BuildPayload maps a request event into the notification payload. Every data
// value is its string form; absent values become empty strings so the
// receiving side can rely on field presence.
func BuildPayload(ev RequestEvent) domain.NotificationPayload {
	body := ev.CenterName
	if ev.Priority != "" {
		body += " - " + ev.Priority + " priority"
	}
	return domain.NotificationPayload{
		Title: "New Collection Request",
		Body:  body,
		Data: map[string]string{
			"sample_id":         ev.RequestID,
			"requestedAt":       ev.RequestedAt,
			"caller_name":       ev.CallerName,
			"caller_number":     ev.CallerNumber,
			"lat":               formatCoord(ev.Lat),
			"lng":               formatCoord(ev.Lng),
			"message":           ev.Notes,
			"notification_type": NotificationType,
		},
	}
}

func formatCoord(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
