package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tinashecee/lab-center-request/internal/domain"
)

const requestColumns = `id, sample_id, status, priority, center_name, center_id,
    center_address, lat, lng, caller_name, caller_number, notes, route,
    sample_type, test_ids, test_names, created_at, updated_at, requested_at`

// RequestRepo represents collection request repository.
type RequestRepo struct {
	db *pgxpool.Pool
}

// NewRequestRepo creates a new RequestRepo.
func NewRequestRepo(db *pgxpool.Pool) *RequestRepo {
	return &RequestRepo{db: db}
}

// Create persists a new collection request and returns its generated ID.
// The stored sample_id is left empty; the caller issues SetSampleID right
// after as the second phase of the write.
func (r *RequestRepo) Create(ctx context.Context, req *domain.CollectionRequest) (string, error) {
	id := uuid.NewString()
	err := r.db.QueryRow(ctx, `
        INSERT INTO requests (
            id, sample_id, status, priority, center_name, center_id,
            center_address, lat, lng, caller_name, caller_number, notes, route,
            sample_type, test_ids, test_names, created_at, updated_at, requested_at
        )
        VALUES ($1, '', $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now(), $16)
        RETURNING created_at, updated_at
    `, id, req.Status, req.Priority, req.CenterName, req.CenterID,
		req.CenterAddress, req.Coordinates.Lat, req.Coordinates.Lng,
		req.CallerName, req.CallerNumber, req.Notes, req.Route,
		req.SampleType, req.TestIDs, req.TestNames, req.RequestedAt,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.ID = id
	return id, nil
}

// SetSampleID mirrors the storage key into the record's own sample_id field.
// This is the mandatory second write after Create.
func (r *RequestRepo) SetSampleID(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `
        UPDATE requests
        SET sample_id = id, updated_at = now()
        WHERE id = $1
    `, id)
	if err != nil {
		return fmt.Errorf("set sample id %q: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("request %q not found", id)
	}
	return nil
}

// Get returns a request by its ID, or nil when it does not exist.
func (r *RequestRepo) Get(ctx context.Context, id string) (*domain.CollectionRequest, error) {
	row := r.db.QueryRow(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = $1`, id)
	req, err := scanRequest(row)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request %q: %w", id, err)
	}
	return req, nil
}

// ListByCenterName returns center-requested records for a center, newest first.
func (r *RequestRepo) ListByCenterName(ctx context.Context, centerName string) ([]domain.CollectionRequest, error) {
	return r.list(ctx, `
        SELECT `+requestColumns+`
        FROM requests
        WHERE center_name = $1 AND sample_type = 'center_requested'
        ORDER BY created_at DESC
    `, centerName)
}

// ListByCenterID returns center-requested records for a center ID, newest first.
func (r *RequestRepo) ListByCenterID(ctx context.Context, centerID string) ([]domain.CollectionRequest, error) {
	return r.list(ctx, `
        SELECT `+requestColumns+`
        FROM requests
        WHERE center_id = $1 AND sample_type = 'center_requested'
        ORDER BY created_at DESC
    `, centerID)
}

func (r *RequestRepo) list(ctx context.Context, q string, args ...any) ([]domain.CollectionRequest, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	out := make([]domain.CollectionRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		out = append(out, *req)
	}
	return out, rows.Err()
}

// UpdateStatus moves a request through its lifecycle. Returns true if a row
// was affected.
func (r *RequestRepo) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE requests
        SET status = $2, updated_at = now()
        WHERE id = $1
    `, id, string(status))
	if err != nil {
		return false, fmt.Errorf("update request status %q: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

func scanRequest(row pgx.Row) (*domain.CollectionRequest, error) {
	var req domain.CollectionRequest
	err := row.Scan(
		&req.ID, &req.SampleID, &req.Status, &req.Priority, &req.CenterName,
		&req.CenterID, &req.CenterAddress, &req.Coordinates.Lat,
		&req.Coordinates.Lng, &req.CallerName, &req.CallerNumber, &req.Notes,
		&req.Route, &req.SampleType, &req.TestIDs, &req.TestNames,
		&req.CreatedAt, &req.UpdatedAt, &req.RequestedAt,
	)
	if err != nil {
		return nil, err
	}
	// A crash between the two creation writes leaves sample_id unset; readers
	// treat that as equal to the storage key.
	if req.SampleID == "" {
		req.SampleID = req.ID
	}
	return &req, nil
}
