package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tinashecee/lab-center-request/internal/domain"
)

// CenterRepo represents the lab-partner center directory.
type CenterRepo struct{ db *pgxpool.Pool }

// NewCenterRepo creates a new CenterRepo.
func NewCenterRepo(db *pgxpool.Pool) *CenterRepo { return &CenterRepo{db: db} }

// Get returns a center by its ID, or nil when it does not exist.
func (r *CenterRepo) Get(ctx context.Context, id string) (*domain.Center, error) {
	var c domain.Center
	err := r.db.QueryRow(ctx, `
        SELECT id, name, address, phone, contact_person, lat, lng, status, route
        FROM centers
        WHERE id = $1
    `, id).Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.ContactPerson,
		&c.Coordinates.Lat, &c.Coordinates.Lng, &c.Status, &c.Route)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get center %q: %w", id, err)
	}
	return &c, nil
}

// List returns active centers ordered by name.
func (r *CenterRepo) List(ctx context.Context) ([]domain.Center, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, name, address, phone, contact_person, lat, lng, status, route
        FROM centers
        WHERE status = 'active'
        ORDER BY name
    `)
	if err != nil {
		return nil, fmt.Errorf("list centers: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Center, 0)
	for rows.Next() {
		var c domain.Center
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Phone, &c.ContactPerson,
			&c.Coordinates.Lat, &c.Coordinates.Lng, &c.Status, &c.Route); err != nil {
			return nil, fmt.Errorf("scan center: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
