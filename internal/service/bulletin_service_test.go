package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/require"

	"safelink/backend/internal/repository"
	"safelink/backend/internal/repository/testutil"
	"safelink/backend/internal/service"
	"safelink/backend/pkg/network"
)

const bulletinRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>산업안전 공지</title>
  <item>
    <guid>notice-1</guid>
    <title>폭염 대비 작업중지 권고</title>
    <link>https://example.com/notice/1</link>
    <description>&lt;p&gt;오후 2시부터 5시까지 옥외작업을 중지하세요.&lt;/p&gt;</description>
    <pubDate>Mon, 06 Jul 2026 09:00:00 +0900</pubDate>
  </item>
  <item>
    <title>추락사고 예방 점검</title>
    <link>https://example.com/notice/2</link>
  </item>
  <item>
    <description>제목과 링크가 없는 항목</description>
  </item>
</channel>
</rss>`

func newBulletinService(t *testing.T, client *http.Client) (service.BulletinService, repository.BulletinRepository) {
	t.Helper()
	repo := repository.NewBulletinRepository(testutil.NewTestDB(t))
	return service.NewBulletinService(repo, network.NewClientFactoryForTest(client)), repo
}

func TestBulletinService_AddSource(t *testing.T) {
	svc, _ := newBulletinService(t, http.DefaultClient)
	ctx := context.Background()

	src, err := svc.AddSource(ctx, "", " https://example.com/rss ")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/rss", src.URL)
	require.Equal(t, "https://example.com/rss", src.Title)

	_, err = svc.AddSource(ctx, "dup", "https://example.com/rss")
	require.ErrorIs(t, err, service.ErrConflict)

	_, err = svc.AddSource(ctx, "bad", "ftp://example.com/rss")
	require.ErrorIs(t, err, service.ErrInvalid)

	sources, err := svc.ListSources(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 1)

	require.NoError(t, svc.DeleteSource(ctx, src.ID))
	require.ErrorIs(t, svc.DeleteSource(ctx, src.ID), service.ErrNotFound)
}

func TestBulletinService_RefreshSourceWithETag(t *testing.T) {
	var hits, conditional atomic.Int32
	var userAgent atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		userAgent.Store(r.Header.Get("User-Agent"))
		if r.Header.Get("If-None-Match") == `"v1"` {
			conditional.Add(1)
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"v1"`)
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(bulletinRSS))
	}))
	defer srv.Close()

	svc, repo := newBulletinService(t, srv.Client())
	ctx := context.Background()

	src, err := svc.AddSource(ctx, "KOSHA", srv.URL+"/rss")
	require.NoError(t, err)

	require.NoError(t, svc.RefreshSource(ctx, src.ID))
	require.Equal(t, "SafeLink/1.0 (+bulletin reader)", userAgent.Load())

	items, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)

	stored, err := repo.GetSource(ctx, src.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ETag)
	require.Equal(t, `"v1"`, *stored.ETag)

	require.NoError(t, svc.RefreshSource(ctx, src.ID))
	require.EqualValues(t, 2, hits.Load())
	require.EqualValues(t, 1, conditional.Load())

	items, err = svc.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.ErrorIs(t, svc.RefreshSource(ctx, src.ID+1), service.ErrNotFound)
}

func TestBulletinService_RefreshAllRecordsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(bulletinRSS))
	}))
	defer srv.Close()

	svc, repo := newBulletinService(t, srv.Client())
	ctx := context.Background()

	good, err := svc.AddSource(ctx, "good", srv.URL+"/rss")
	require.NoError(t, err)
	bad, err := svc.AddSource(ctx, "bad", srv.URL+"/broken")
	require.NoError(t, err)

	require.NoError(t, svc.RefreshAll(ctx))

	status := svc.GetRefreshStatus()
	require.False(t, status.IsRefreshing)
	require.NotNil(t, status.LastRefreshedAt)

	stored, err := repo.GetSource(ctx, bad.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ErrorMessage)
	require.Equal(t, "HTTP 500", *stored.ErrorMessage)

	stored, err = repo.GetSource(ctx, good.ID)
	require.NoError(t, err)
	require.Nil(t, stored.ErrorMessage)

	items, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestBulletinService_RefreshAllRejectsConcurrentRun(t *testing.T) {
	svc, _ := newBulletinService(t, http.DefaultClient)

	service.SetBulletinRefreshing(svc, true)
	require.ErrorIs(t, svc.RefreshAll(context.Background()), service.ErrAlreadyRefreshing)
	require.True(t, svc.GetRefreshStatus().IsRefreshing)
}

func TestItemToBulletin(t *testing.T) {
	_, ok := service.ItemToBulletin(1, nil)
	require.False(t, ok)

	_, ok = service.ItemToBulletin(1, &gofeed.Item{Description: "only body"})
	require.False(t, ok)

	withGUID, ok := service.ItemToBulletin(1, &gofeed.Item{GUID: "g", Title: "a", Link: "https://x/1"})
	require.True(t, ok)
	sameGUID, _ := service.ItemToBulletin(1, &gofeed.Item{GUID: "g", Title: "b", Link: "https://x/2"})
	require.Equal(t, withGUID.Hash, sameGUID.Hash)

	linkOnly, ok := service.ItemToBulletin(1, &gofeed.Item{Link: "https://x/3"})
	require.True(t, ok)
	require.Equal(t, "https://x/3", linkOnly.Title)
	require.NotEqual(t, withGUID.Hash, linkOnly.Hash)

	b, _ := service.ItemToBulletin(1, &gofeed.Item{Title: "t", Description: "<p>hello <b>world</b></p>"})
	require.NotNil(t, b.Summary)
	require.Equal(t, "hello world", *b.Summary)
	require.Nil(t, b.URL)
}
