package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"safelink/backend/internal/handler"
	"safelink/backend/internal/model"
	"safelink/backend/internal/service"
	"safelink/backend/internal/service/mock"
)

func TestBulletinHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockBulletinService(ctrl)
	h := handler.NewBulletinHandler(mockService)
	e := newTestEcho()

	link := "https://www.kosha.or.kr/notice/1"
	published := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mockService.EXPECT().List(gomock.Any(), 20).Return([]model.Bulletin{
		{ID: 1, SourceID: 2, Title: "폭염 대비 작업중지 권고", URL: &link, PublishedAt: &published},
	}, nil)

	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/bulletins?limit=20", nil))
	require.NoError(t, h.List(c))

	var resp []handler.BulletinResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 1)
	require.Equal(t, "2", resp[0].SourceID)
	require.Equal(t, "2024-06-01T00:00:00Z", *resp[0].PublishedAt)

	c, rec = newTestContext(e, newJSONRequest(http.MethodGet, "/bulletins?limit=-1", nil))
	require.NoError(t, h.List(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBulletinHandler_AddSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockBulletinService(ctrl)
	h := handler.NewBulletinHandler(mockService)
	e := newTestEcho()

	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/bulletins/sources", map[string]string{
		"title": "KOSHA", "url": "https://www.kosha.or.kr/rss",
	}))
	mockService.EXPECT().AddSource(gomock.Any(), "KOSHA", "https://www.kosha.or.kr/rss").
		Return(&model.BulletinSource{ID: 3, Title: "KOSHA", URL: "https://www.kosha.or.kr/rss"}, nil)
	require.NoError(t, h.AddSource(c))

	var resp handler.BulletinSourceResponse
	assertJSONResponse(t, rec, http.StatusCreated, &resp)
	require.Equal(t, "3", resp.ID)

	c, rec = newTestContext(e, newJSONRequest(http.MethodPost, "/bulletins/sources", map[string]string{"url": "ftp://x"}))
	mockService.EXPECT().AddSource(gomock.Any(), "", "ftp://x").Return(nil, service.ErrInvalid)
	require.NoError(t, h.AddSource(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBulletinHandler_RefreshAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockBulletinService(ctrl)
	h := handler.NewBulletinHandler(mockService)
	e := newTestEcho()

	done := make(chan struct{})
	mockService.EXPECT().GetRefreshStatus().Return(service.RefreshStatus{})
	mockService.EXPECT().RefreshAll(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(done)
		return nil
	})

	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/bulletins/refresh", nil))
	require.NoError(t, h.RefreshAll(c))
	require.Equal(t, http.StatusAccepted, rec.Code)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh was not started")
	}
}

func TestBulletinHandler_RefreshAll_AlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockBulletinService(ctrl)
	h := handler.NewBulletinHandler(mockService)

	e := newTestEcho()
	mockService.EXPECT().GetRefreshStatus().Return(service.RefreshStatus{IsRefreshing: true})

	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/bulletins/refresh", nil))
	require.NoError(t, h.RefreshAll(c))
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestBulletinHandler_RefreshStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockBulletinService(ctrl)
	h := handler.NewBulletinHandler(mockService)

	at := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	mockService.EXPECT().GetRefreshStatus().Return(service.RefreshStatus{LastRefreshedAt: &at})

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/bulletins/refresh/status", nil))
	require.NoError(t, h.RefreshStatus(c))

	var resp handler.RefreshStatusResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.False(t, resp.IsRefreshing)
	require.Equal(t, "2024-06-01T08:00:00Z", *resp.LastRefreshedAt)
}

func TestBulletinHandler_DeleteSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockBulletinService(ctrl)
	h := handler.NewBulletinHandler(mockService)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodDelete, "/bulletins/sources/3", nil))
	setIDParam(c, "3")
	mockService.EXPECT().DeleteSource(gomock.Any(), int64(3)).Return(nil)

	require.NoError(t, h.DeleteSource(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
}
