package handler_test

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"safelink/backend/internal/broadcast"
	"safelink/backend/internal/handler"
	"safelink/backend/internal/service"
	"safelink/backend/internal/service/mock"
)

type fakeLive struct {
	mu    sync.Mutex
	calls []liveCall
}

type liveCall struct {
	role broadcast.Role
	lang string
	name string
}

func (f *fakeLive) ServeWS(w http.ResponseWriter, _ *http.Request, role broadcast.Role, lang, name string) error {
	f.mu.Lock()
	f.calls = append(f.calls, liveCall{role: role, lang: lang, name: name})
	f.mu.Unlock()
	w.WriteHeader(http.StatusSwitchingProtocols)
	return nil
}

func (f *fakeLive) ClientCount(role broadcast.Role) int {
	if role == broadcast.RoleWorker {
		return 12
	}
	return 1
}

func TestBroadcastHandler_Announce(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockBroadcastService(ctrl)
	h := handler.NewBroadcastHandler(mockService, nil, &fakeLive{})

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodPost, "/broadcast", map[string]string{"text": "작업 중지! 긴급 대피하세요"}))

	mockService.EXPECT().Announce(gomock.Any(), "작업 중지! 긴급 대피하세요").Return(&service.Announcement{
		ID: "x", StandardText: "작업 중지! 긴급 대피하세요", DetectedTerms: []string{}, Delivered: 12,
	}, nil)

	require.NoError(t, h.Announce(c))

	var resp handler.AnnouncementResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, 12, resp.Delivered)
}

func TestBroadcastHandler_Status(t *testing.T) {
	h := handler.NewBroadcastHandler(nil, nil, &fakeLive{})

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/broadcast/status", nil))
	require.NoError(t, h.Status(c))

	var resp handler.LiveStatusResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, 12, resp.Workers)
	require.Equal(t, 1, resp.Managers)
}

func TestBroadcastHandler_Connect_Worker(t *testing.T) {
	live := &fakeLive{}
	h := handler.NewBroadcastHandler(nil, nil, live)

	e := newTestEcho()
	c, _ := newTestContext(e, newJSONRequest(http.MethodGet, "/broadcast/ws?lang=vi-VN&name=Nguyen", nil))
	require.NoError(t, h.Connect(c))

	require.Len(t, live.calls, 1)
	require.Equal(t, liveCall{role: broadcast.RoleWorker, lang: "vi", name: "Nguyen"}, live.calls[0])
}

func TestBroadcastHandler_Connect_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
	}{
		{name: "worker without lang", target: "/broadcast/ws", status: http.StatusBadRequest},
		{name: "unknown lang", target: "/broadcast/ws?lang=klingon", status: http.StatusBadRequest},
		{name: "unknown role", target: "/broadcast/ws?role=admin&lang=vi", status: http.StatusBadRequest},
		{name: "manager without token", target: "/broadcast/ws?role=manager", status: http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			live := &fakeLive{}
			h := handler.NewBroadcastHandler(nil, nil, live)

			e := newTestEcho()
			c, rec := newTestContext(e, newJSONRequest(http.MethodGet, tc.target, nil))
			require.NoError(t, h.Connect(c))
			require.Equal(t, tc.status, rec.Code)
			require.Empty(t, live.calls)
		})
	}
}

func TestBroadcastHandler_Connect_Manager(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAuth := mock.NewMockAuthService(ctrl)
	live := &fakeLive{}
	h := handler.NewBroadcastHandler(nil, mockAuth, live)
	e := newTestEcho()

	mockAuth.EXPECT().ValidateToken("bad").Return(false, nil)
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/broadcast/ws?role=manager&token=bad", nil))
	require.NoError(t, h.Connect(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	mockAuth.EXPECT().ValidateToken("good").Return(true, nil)
	req := newJSONRequest(http.MethodGet, "/broadcast/ws?role=manager", nil)
	req.AddCookie(&http.Cookie{Name: handler.AuthCookieName, Value: "good"})
	c, _ = newTestContext(e, req)
	require.NoError(t, h.Connect(c))

	require.Len(t, live.calls, 1)
	require.Equal(t, broadcast.RoleManager, live.calls[0].role)
}

func TestBroadcastHandler_Connect_NoLiveChannel(t *testing.T) {
	h := handler.NewBroadcastHandler(nil, nil, nil)

	e := newTestEcho()
	c, rec := newTestContext(e, newJSONRequest(http.MethodGet, "/broadcast/ws?lang=vi", nil))
	require.NoError(t, h.Connect(c))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
