package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"safelink/backend/internal/model"
	"safelink/backend/internal/repository"
	"safelink/backend/internal/repository/testutil"
	"safelink/backend/internal/service"
	"safelink/backend/internal/service/mock"
)

func newSavedMessageService(t *testing.T, broadcaster service.BroadcastService) service.SavedMessageService {
	t.Helper()
	db := testutil.NewTestDB(t)
	glossarySvc := service.NewGlossaryService(repository.NewGlossaryRepository(db))
	return service.NewSavedMessageService(repository.NewSavedMessageRepository(db), glossarySvc, broadcaster)
}

func TestSavedMessageService_EnsurePresets(t *testing.T) {
	svc := newSavedMessageService(t, nil)
	ctx := context.Background()

	require.NoError(t, svc.EnsurePresets(ctx))
	require.NoError(t, svc.EnsurePresets(ctx))

	all, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, all, 4)

	safety, err := svc.List(ctx, model.CategorySafety, "")
	require.NoError(t, err)
	require.Len(t, safety, 2)

	hits, err := svc.List(ctx, "", "공구리")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	require.Equal(t, "콘크리트 콘크리트부음 작업 준비하세요", hits[0].StandardText)
}

func TestSavedMessageService_CRUD(t *testing.T) {
	svc := newSavedMessageService(t, nil)
	ctx := context.Background()

	msg, err := svc.Create(ctx, "", "아시바 점검하세요")
	require.NoError(t, err)
	require.Equal(t, model.CategoryGeneral, msg.Category)
	require.Equal(t, "비계 점검하세요", msg.StandardText)

	got, err := svc.Get(ctx, msg.ID)
	require.NoError(t, err)
	require.Equal(t, msg.OriginalText, got.OriginalText)

	updated, err := svc.Update(ctx, msg.ID, model.CategoryWork, "작업 시작")
	require.NoError(t, err)
	require.Equal(t, model.CategoryWork, updated.Category)
	require.Equal(t, "작업 시작", updated.StandardText)

	require.NoError(t, svc.Delete(ctx, msg.ID))
	_, err = svc.Get(ctx, msg.ID)
	require.ErrorIs(t, err, service.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, msg.ID), service.ErrNotFound)

	_, err = svc.Update(ctx, msg.ID, model.CategoryWork, "작업")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestSavedMessageService_Validation(t *testing.T) {
	svc := newSavedMessageService(t, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "party", "작업")
	require.ErrorIs(t, err, service.ErrInvalid)
	_, err = svc.Create(ctx, model.CategoryWork, "   ")
	require.ErrorIs(t, err, service.ErrInvalid)
	_, err = svc.List(ctx, "party", "")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestSavedMessageService_Broadcast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broadcaster := mock.NewMockBroadcastService(ctrl)
	svc := newSavedMessageService(t, broadcaster)
	ctx := context.Background()

	msg, err := svc.Create(ctx, model.CategoryEmergency, "작업 중지! 긴급 대피하세요")
	require.NoError(t, err)

	broadcaster.EXPECT().Announce(gomock.Any(), "작업 중지! 긴급 대피하세요").
		Return(&service.Announcement{ID: "a1", Delivered: 3}, nil).Times(2)

	for i := 0; i < 2; i++ {
		a, err := svc.Broadcast(ctx, msg.ID)
		require.NoError(t, err)
		require.Equal(t, 3, a.Delivered)
	}

	got, err := svc.Get(ctx, msg.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.UsageCount)

	_, err = svc.Broadcast(ctx, msg.ID+1)
	require.ErrorIs(t, err, service.ErrNotFound)
}
