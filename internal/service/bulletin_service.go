//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/semaphore"

	"safelink/backend/internal/hashutil"
	"safelink/backend/internal/model"
	"safelink/backend/internal/repository"
	"safelink/backend/internal/urlutil"
	"safelink/backend/pkg/logger"
	"safelink/backend/pkg/network"
	"safelink/backend/pkg/sanitizer"
)

const (
	bulletinTimeout      = 30 * time.Second
	bulletinUserAgent    = "SafeLink/1.0 (+bulletin reader)"
	maxConcurrentRefresh = 4
	maxConcurrentPerHost = 1
	bulletinListLimit    = 100
	maxBulletinTitle     = 200
	maxBulletinSummary   = 300
)

var ErrAlreadyRefreshing = errors.New("refresh already in progress")

type RefreshStatus struct {
	IsRefreshing    bool
	LastRefreshedAt *time.Time
}

type BulletinService interface {
	AddSource(ctx context.Context, title, rawURL string) (*model.BulletinSource, error)
	ListSources(ctx context.Context) ([]model.BulletinSource, error)
	DeleteSource(ctx context.Context, id int64) error
	List(ctx context.Context, limit int) ([]model.Bulletin, error)
	RefreshAll(ctx context.Context) error
	RefreshSource(ctx context.Context, id int64) error
	GetRefreshStatus() RefreshStatus
}

type bulletinService struct {
	repo    repository.BulletinRepository
	clients *network.ClientFactory

	mu              sync.Mutex
	isRefreshing    bool
	lastRefreshedAt *time.Time
}

func NewBulletinService(repo repository.BulletinRepository, clients *network.ClientFactory) BulletinService {
	return &bulletinService{repo: repo, clients: clients}
}

func (s *bulletinService) AddSource(ctx context.Context, title, rawURL string) (*model.BulletinSource, error) {
	if !urlutil.IsHTTP(rawURL) {
		return nil, fmt.Errorf("%w: url must be http or https", ErrInvalid)
	}
	rawURL = urlutil.Canonical(rawURL)
	title = sanitizer.CleanText(title, maxBulletinTitle)
	if title == "" {
		title = rawURL
	}

	existing, err := s.repo.FindSourceByURL(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("find source: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: source already exists", ErrConflict)
	}

	src, err := s.repo.CreateSource(ctx, title, rawURL)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: source already exists", ErrConflict)
		}
		return nil, fmt.Errorf("create source: %w", err)
	}
	logger.Info("bulletin source added", "module", "service", "action", "create", "resource", "bulletin", "result", "ok", "host", network.ExtractHost(rawURL))
	return src, nil
}

func (s *bulletinService) ListSources(ctx context.Context) ([]model.BulletinSource, error) {
	sources, err := s.repo.ListSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	if sources == nil {
		sources = []model.BulletinSource{}
	}
	return sources, nil
}

func (s *bulletinService) DeleteSource(ctx context.Context, id int64) error {
	if err := s.repo.DeleteSource(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete source: %w", err)
	}
	return nil
}

func (s *bulletinService) List(ctx context.Context, limit int) ([]model.Bulletin, error) {
	if limit <= 0 || limit > bulletinListLimit {
		limit = bulletinListLimit
	}
	items, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list bulletins: %w", err)
	}
	if items == nil {
		items = []model.Bulletin{}
	}
	return items, nil
}

func (s *bulletinService) RefreshAll(ctx context.Context) error {
	s.mu.Lock()
	if s.isRefreshing {
		s.mu.Unlock()
		return ErrAlreadyRefreshing
	}
	s.isRefreshing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isRefreshing = false
		s.mu.Unlock()
	}()

	sources, err := s.repo.ListSources(ctx)
	if err != nil {
		logger.Error("refresh list sources", "module", "service", "action", "list", "resource", "bulletin", "result", "failed", "error", err)
		return err
	}

	logger.Info("refresh started", "module", "service", "action", "refresh", "resource", "bulletin", "result", "ok", "count", len(sources))
	s.refreshConcurrently(ctx, sources)
	logger.Info("refresh completed", "module", "service", "action", "refresh", "resource", "bulletin", "result", "ok", "count", len(sources))

	now := time.Now()
	s.mu.Lock()
	s.lastRefreshedAt = &now
	s.mu.Unlock()
	return nil
}

func (s *bulletinService) RefreshSource(ctx context.Context, id int64) error {
	src, err := s.repo.GetSource(ctx, id)
	if err != nil {
		return fmt.Errorf("get source: %w", err)
	}
	if src == nil {
		return ErrNotFound
	}
	return s.refresh(ctx, *src)
}

func (s *bulletinService) GetRefreshStatus() RefreshStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RefreshStatus{IsRefreshing: s.isRefreshing, LastRefreshedAt: s.lastRefreshedAt}
}

// refreshConcurrently fetches sources in parallel, one request at a time
// per host.
func (s *bulletinService) refreshConcurrently(ctx context.Context, sources []model.BulletinSource) {
	global := semaphore.NewWeighted(maxConcurrentRefresh)
	hosts := newHostLimiter()

	var wg sync.WaitGroup
	for _, src := range sources {
		wg.Add(1)
		go func() {
			defer wg.Done()

			host := network.ExtractHost(src.URL)
			if host != "" {
				if err := hosts.acquire(ctx, host); err != nil {
					logger.Debug("refresh host acquire cancelled", "module", "service", "action", "refresh", "resource", "bulletin", "result", "cancelled", "host", host)
					return
				}
				defer hosts.release(host)
			}
			if err := global.Acquire(ctx, 1); err != nil {
				return
			}
			defer global.Release(1)

			if err := s.refresh(ctx, src); err != nil {
				logger.Warn("refresh source failed", "module", "service", "action", "refresh", "resource", "bulletin", "result", "failed", "source_id", src.ID, "host", host, "error", err)
			}
		}()
	}
	wg.Wait()
}

type hostLimiter struct {
	mu   sync.Mutex
	sems map[string]*semaphore.Weighted
}

func newHostLimiter() *hostLimiter {
	return &hostLimiter{sems: make(map[string]*semaphore.Weighted)}
}

func (h *hostLimiter) acquire(ctx context.Context, host string) error {
	h.mu.Lock()
	sem, ok := h.sems[host]
	if !ok {
		sem = semaphore.NewWeighted(maxConcurrentPerHost)
		h.sems[host] = sem
	}
	h.mu.Unlock()
	return sem.Acquire(ctx, 1)
}

func (h *hostLimiter) release(host string) {
	h.mu.Lock()
	if sem, ok := h.sems[host]; ok {
		sem.Release(1)
	}
	h.mu.Unlock()
}

func (s *bulletinService) refresh(ctx context.Context, src model.BulletinSource) error {
	fail := func(err error) error {
		msg := err.Error()
		if uerr := s.repo.UpdateFetchState(ctx, src.ID, src.ETag, src.LastModified, &msg); uerr != nil {
			logger.Warn("update fetch state failed", "module", "service", "action", "update", "resource", "bulletin", "result", "failed", "source_id", src.ID, "error", uerr)
		}
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return fail(err)
	}
	req.Header.Set("User-Agent", bulletinUserAgent)
	if src.ETag != nil && *src.ETag != "" {
		req.Header.Set("If-None-Match", *src.ETag)
	}
	if src.LastModified != nil && *src.LastModified != "" {
		req.Header.Set("If-Modified-Since", *src.LastModified)
	}

	resp, err := s.clients.NewHTTPClient(ctx, bulletinTimeout).Do(req)
	if err != nil {
		return fail(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		logger.Debug("source not modified", "module", "service", "action", "refresh", "resource", "bulletin", "result", "skipped", "source_id", src.ID)
		return s.repo.UpdateFetchState(ctx, src.ID, src.ETag, src.LastModified, nil)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fail(fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return fail(fmt.Errorf("parse feed: %w", err))
	}

	etag, lastModified := src.ETag, src.LastModified
	if v := strings.TrimSpace(resp.Header.Get("ETag")); v != "" {
		etag = &v
	}
	if v := strings.TrimSpace(resp.Header.Get("Last-Modified")); v != "" {
		lastModified = &v
	}
	if err := s.repo.UpdateFetchState(ctx, src.ID, etag, lastModified, nil); err != nil {
		logger.Warn("update fetch state failed", "module", "service", "action", "update", "resource", "bulletin", "result", "failed", "source_id", src.ID, "error", err)
	}

	added := s.saveItems(ctx, src.ID, parsed.Items)
	if added > 0 {
		logger.Info("source refreshed", "module", "service", "action", "refresh", "resource", "bulletin", "result", "ok", "source_id", src.ID, "new", added)
	}
	return nil
}

func (s *bulletinService) saveItems(ctx context.Context, sourceID int64, items []*gofeed.Item) int {
	added := 0
	for _, item := range items {
		b, ok := itemToBulletin(sourceID, item)
		if !ok {
			continue
		}
		exists, err := s.repo.Exists(ctx, sourceID, b.Hash)
		if err != nil {
			logger.Warn("check bulletin exists failed", "module", "service", "action", "list", "resource", "bulletin", "result", "failed", "error", err)
			continue
		}
		if exists {
			continue
		}
		if _, err := s.repo.Create(ctx, b); err != nil {
			if !errors.Is(err, repository.ErrDuplicate) {
				logger.Warn("save bulletin failed", "module", "service", "action", "create", "resource", "bulletin", "result", "failed", "error", err)
			}
			continue
		}
		added++
	}
	return added
}

// itemToBulletin keys an item by its guid, falling back to link then title.
func itemToBulletin(sourceID int64, item *gofeed.Item) (model.Bulletin, bool) {
	if item == nil {
		return model.Bulletin{}, false
	}
	title := sanitizer.CleanText(item.Title, maxBulletinTitle)
	link := urlutil.Canonical(item.Link)
	if title == "" && link == "" {
		return model.Bulletin{}, false
	}
	if title == "" {
		title = link
	}

	identity := strings.TrimSpace(item.GUID)
	if identity == "" {
		identity = link
	}
	if identity == "" {
		identity = title
	}

	b := model.Bulletin{
		SourceID: sourceID,
		Hash:     hashutil.SHA256Hex(identity),
		Title:    title,
	}
	if link != "" {
		b.URL = &link
	}
	body := item.Description
	if body == "" {
		body = item.Content
	}
	if summary := sanitizer.Summary(body, maxBulletinSummary); summary != "" {
		b.Summary = &summary
	}
	switch {
	case item.PublishedParsed != nil:
		t := item.PublishedParsed.UTC()
		b.PublishedAt = &t
	case item.UpdatedParsed != nil:
		t := item.UpdatedParsed.UTC()
		b.PublishedAt = &t
	}
	return b, true
}
