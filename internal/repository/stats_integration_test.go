//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/tinashecee/lab-center-request/internal/domain"
	"github.com/tinashecee/lab-center-request/internal/repository"
)

type StatsRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.StatsRepo
}

func (s *StatsRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewStatsRepo(tcPool)
}

func (s *StatsRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE requests`)
	s.Require().NoError(err)
}

func (s *StatsRepositorySuite) seed(id string, status domain.RequestStatus) {
	_, err := s.pool.Exec(context.Background(), `
		INSERT INTO requests (id, status, priority, center_name)
		VALUES ($1, $2, 'normal', 'Clinic-7')
	`, id, string(status))
	s.Require().NoError(err)
}

func (s *StatsRepositorySuite) TestSummary() {
	s.seed("r1", domain.StatusPending)
	s.seed("r2", domain.StatusPending)
	s.seed("r3", domain.StatusCompleted)

	got, err := s.repo.Summary(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(3), got.Total)
	s.Equal(int64(2), got.ByStatus[domain.StatusPending])
	s.Equal(int64(1), got.ByStatus[domain.StatusCompleted])
}

func (s *StatsRepositorySuite) TestSummary_Empty() {
	got, err := s.repo.Summary(context.Background())
	s.Require().NoError(err)
	s.Equal(int64(0), got.Total)
	s.Empty(got.ByStatus)
}

func TestStatsRepositorySuite(t *testing.T) {
	suite.Run(t, new(StatsRepositorySuite))
}
