package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tinashecee/lab-center-request/internal/domain"
	"github.com/tinashecee/lab-center-request/internal/http/handlers"
)

type stubStatsUsecase struct {
	statsFn func(ctx context.Context) (domain.RequestStats, error)
}

func (s *stubStatsUsecase) Stats(ctx context.Context) (domain.RequestStats, error) {
	return s.statsFn(ctx)
}

func TestStatsSummary_OK(t *testing.T) {
	t.Parallel()

	uc := &stubStatsUsecase{
		statsFn: func(context.Context) (domain.RequestStats, error) {
			return domain.RequestStats{
				Total: 3,
				ByStatus: map[domain.RequestStatus]int64{
					domain.StatusPending:   2,
					domain.StatusCompleted: 1,
				},
			}, nil
		},
	}
	h := handlers.NewStatsHandlers(uc, testLogger())

	rr := httptest.NewRecorder()
	h.Summary(rr, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Total    int64            `json:"total"`
		ByStatus map[string]int64 `json:"by_status"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, int64(3), resp.Total)
	require.Equal(t, int64(2), resp.ByStatus["pending"])
	require.Equal(t, int64(1), resp.ByStatus["completed"])
}

func TestStatsSummary_InternalError(t *testing.T) {
	t.Parallel()

	uc := &stubStatsUsecase{
		statsFn: func(context.Context) (domain.RequestStats, error) {
			return domain.RequestStats{}, errors.New("store down")
		},
	}
	h := handlers.NewStatsHandlers(uc, testLogger())

	rr := httptest.NewRecorder()
	h.Summary(rr, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}
