package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tinashecee/lab-center-request/internal/domain"
)

// DriverRepo represents the read-only driver directory.
type DriverRepo struct{ db *pgxpool.Pool }

// NewDriverRepo creates a new DriverRepo.
func NewDriverRepo(db *pgxpool.Pool) *DriverRepo { return &DriverRepo{db: db} }

// ListByRoute returns every driver whose routing key equals route, regardless
// of status.
func (r *DriverRepo) ListByRoute(ctx context.Context, route string) ([]domain.Driver, error) {
	return r.list(ctx, `
        SELECT id, name, route, push_token, status
        FROM drivers
        WHERE route = $1
        ORDER BY id
    `, route)
}

// ListActive returns every driver registered as active, ignoring routes.
func (r *DriverRepo) ListActive(ctx context.Context) ([]domain.Driver, error) {
	return r.list(ctx, `
        SELECT id, name, route, push_token, status
        FROM drivers
        WHERE status = $1
        ORDER BY id
    `, string(domain.DriverActive))
}

func (r *DriverRepo) list(ctx context.Context, q string, args ...any) ([]domain.Driver, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Driver, 0)
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Route, &d.PushToken, &d.Status); err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
