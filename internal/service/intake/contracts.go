//go:generate mockgen -source=contracts.go -destination=intake_mocks_test.go -package=intake_test

package intake

import (
	"context"

	"github.com/tinashecee/lab-center-request/internal/domain"
	"github.com/tinashecee/lab-center-request/internal/service/notify"
)

// RequestStore describes the persistence operations required by the intake
// service.
type RequestStore interface {
	Create(ctx context.Context, req *domain.CollectionRequest) (string, error)
	SetSampleID(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.CollectionRequest, error)
	ListByCenterName(ctx context.Context, centerName string) ([]domain.CollectionRequest, error)
	ListByCenterID(ctx context.Context, centerID string) ([]domain.CollectionRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (bool, error)
}

// Hook receives the post-commit event once a request has been persisted.
// Implementations deliver it to the notification pipeline (in process or via
// the event bus); a hook failure never affects the created request.
type Hook interface {
	RequestCreated(ctx context.Context, ev notify.RequestEvent) error
}
