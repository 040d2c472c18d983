package intake_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/tinashecee/lab-center-request/internal/apperr"
	"github.com/tinashecee/lab-center-request/internal/domain"
	"github.com/tinashecee/lab-center-request/internal/logx"
	"github.com/tinashecee/lab-center-request/internal/service/intake"
	"github.com/tinashecee/lab-center-request/internal/service/notify"
	testlog "github.com/tinashecee/lab-center-request/internal/testutil"
)

func validInput() domain.NewRequestData {
	return domain.NewRequestData{
		CenterName:  "Clinic-7",
		CenterID:    "c1",
		Priority:    domain.PriorityHigh,
		Coordinates: &domain.Coordinates{Lat: -17.8, Lng: 31.0},
		Route:       "route-A",
		CallerName:  "Nurse Moyo",
	}
}

func TestCreateRequest_HappyPath(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRequestStore(ctrl)
	hook := NewMockHook(ctrl)
	svc := intake.NewService(repo, hook, time.Second, logx.Nop(), nil)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.CollectionRequest) (string, error) {
			require.Equal(t, domain.StatusPending, req.Status)
			require.Equal(t, "Clinic-7", req.CenterName)
			require.NotEmpty(t, req.RequestedAt)
			return "req-1", nil
		})
	repo.EXPECT().SetSampleID(gomock.Any(), "req-1").Return(nil)
	hook.EXPECT().
		RequestCreated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev notify.RequestEvent) error {
			require.Equal(t, "req-1", ev.RequestID)
			require.Equal(t, "route-A", ev.Route)
			require.Equal(t, "high", ev.Priority)
			require.InDelta(t, -17.8, ev.Lat, 1e-9)
			return nil
		})

	id, err := svc.CreateRequest(context.Background(), validInput())
	require.NoError(t, err)
	require.Equal(t, "req-1", id)
}

func TestCreateRequest_Validation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No store or hook calls on validation failures.
	repo := NewMockRequestStore(ctrl)
	hook := NewMockHook(ctrl)
	svc := intake.NewService(repo, hook, time.Second, logx.Nop(), nil)

	cases := []struct {
		name   string
		mutate func(*domain.NewRequestData)
	}{
		{"missing center name", func(d *domain.NewRequestData) { d.CenterName = "  " }},
		{"missing coordinates", func(d *domain.NewRequestData) { d.Coordinates = nil }},
		{"bad priority", func(d *domain.NewRequestData) { d.Priority = "asap" }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.CreateRequest(context.Background(), in)
			require.ErrorIs(t, err, apperr.ErrInvalid)
		})
	}
}

func TestCreateRequest_DefaultsPriorityAndSampleType(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRequestStore(ctrl)
	hook := NewMockHook(ctrl)
	svc := intake.NewService(repo, hook, time.Second, logx.Nop(), nil)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.CollectionRequest) (string, error) {
			require.Equal(t, domain.PriorityNormal, req.Priority)
			require.Equal(t, "general", req.SampleType)
			return "req-1", nil
		})
	repo.EXPECT().SetSampleID(gomock.Any(), "req-1").Return(nil)
	hook.EXPECT().RequestCreated(gomock.Any(), gomock.Any()).Return(nil)

	in := validInput()
	in.Priority = ""
	in.SampleType = ""
	_, err := svc.CreateRequest(context.Background(), in)
	require.NoError(t, err)
}

func TestCreateRequest_PersistenceErrorAbortsBeforeHook(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRequestStore(ctrl)
	hook := NewMockHook(ctrl)
	svc := intake.NewService(repo, hook, time.Second, logx.Nop(), nil)

	wantErr := errors.New("store down")
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", wantErr)

	_, err := svc.CreateRequest(context.Background(), validInput())
	require.ErrorIs(t, err, wantErr)
}

func TestCreateRequest_SetSampleIDFailureFailsTheCall(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRequestStore(ctrl)
	hook := NewMockHook(ctrl)
	svc := intake.NewService(repo, hook, time.Second, logx.Nop(), nil)

	wantErr := errors.New("write lost")
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return("req-1", nil)
	repo.EXPECT().SetSampleID(gomock.Any(), "req-1").Return(wantErr)

	_, err := svc.CreateRequest(context.Background(), validInput())
	require.ErrorIs(t, err, wantErr)
}

func TestCreateRequest_HookFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRequestStore(ctrl)
	hook := NewMockHook(ctrl)
	rec := testlog.New()
	svc := intake.NewService(repo, hook, time.Second, rec.Logger(), nil)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return("req-1", nil)
	repo.EXPECT().SetSampleID(gomock.Any(), "req-1").Return(nil)
	hook.EXPECT().RequestCreated(gomock.Any(), gomock.Any()).Return(errors.New("bus down"))

	id, err := svc.CreateRequest(context.Background(), validInput())
	require.NoError(t, err, "hook outcome never reaches the caller")
	require.Equal(t, "req-1", id)

	var warned bool
	for _, e := range rec.Entries() {
		if e.Msg == "post-commit notification hook failed" {
			warned = true
		}
	}
	require.True(t, warned)
}

func TestGet(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRequestStore(ctrl)
	hook := NewMockHook(ctrl)
	svc := intake.NewService(repo, hook, time.Second, logx.Nop(), nil)

	want := &domain.CollectionRequest{ID: "req-1", SampleID: "req-1"}
	repo.EXPECT().Get(gomock.Any(), "req-1").Return(want, nil)

	got, err := svc.Get(context.Background(), "req-1")
	require.NoError(t, err)
	require.Equal(t, want, got)

	repo.EXPECT().Get(gomock.Any(), "req-2").Return(nil, nil)
	_, err = svc.Get(context.Background(), "req-2")
	require.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Get(context.Background(), " ")
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestListByCenter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRequestStore(ctrl)
	hook := NewMockHook(ctrl)
	svc := intake.NewService(repo, hook, time.Second, logx.Nop(), nil)

	reqs := []domain.CollectionRequest{{ID: "req-1"}}
	repo.EXPECT().ListByCenterName(gomock.Any(), "Clinic-7").Return(reqs, nil)
	got, err := svc.ListByCenterName(context.Background(), "Clinic-7")
	require.NoError(t, err)
	require.Equal(t, reqs, got)

	repo.EXPECT().ListByCenterID(gomock.Any(), "c1").Return(reqs, nil)
	got, err = svc.ListByCenterID(context.Background(), "c1")
	require.NoError(t, err)
	require.Equal(t, reqs, got)

	_, err = svc.ListByCenterName(context.Background(), "")
	require.ErrorIs(t, err, apperr.ErrInvalid)
	_, err = svc.ListByCenterID(context.Background(), "")
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRequestStore(ctrl)
	hook := NewMockHook(ctrl)
	svc := intake.NewService(repo, hook, time.Second, logx.Nop(), nil)

	repo.EXPECT().UpdateStatus(gomock.Any(), "req-1", domain.StatusCollected).Return(true, nil)
	require.NoError(t, svc.UpdateStatus(context.Background(), "req-1", domain.StatusCollected))

	repo.EXPECT().UpdateStatus(gomock.Any(), "req-2", domain.StatusCollected).Return(false, nil)
	require.ErrorIs(t, svc.UpdateStatus(context.Background(), "req-2", domain.StatusCollected), apperr.ErrNotFound)

	require.ErrorIs(t, svc.UpdateStatus(context.Background(), "req-1", "gone"), apperr.ErrInvalid)
	require.ErrorIs(t, svc.UpdateStatus(context.Background(), "", domain.StatusCollected), apperr.ErrInvalid)
}
