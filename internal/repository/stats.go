package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tinashecee/lab-center-request/internal/domain"
)

// StatsRepo computes read-only aggregates over collection requests.
type StatsRepo struct{ db *pgxpool.Pool }

// NewStatsRepo creates a new StatsRepo.
func NewStatsRepo(db *pgxpool.Pool) *StatsRepo { return &StatsRepo{db: db} }

// Summary returns request counts grouped by lifecycle status.
func (r *StatsRepo) Summary(ctx context.Context) (domain.RequestStats, error) {
	rows, err := r.db.Query(ctx, `
        SELECT status, COUNT(*)
        FROM requests
        GROUP BY status
    `)
	if err != nil {
		return domain.RequestStats{}, fmt.Errorf("request stats: %w", err)
	}
	defer rows.Close()

	stats := domain.RequestStats{ByStatus: make(map[domain.RequestStatus]int64)}
	for rows.Next() {
		var status domain.RequestStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return domain.RequestStats{}, fmt.Errorf("scan stats row: %w", err)
		}
		stats.ByStatus[status] = n
		stats.Total += n
	}
	return stats, rows.Err()
}
