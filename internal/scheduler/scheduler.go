package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"safelink/backend/internal/service"
	"safelink/backend/pkg/logger"
)

// Refresher is the periodic job. service.BulletinService satisfies it.
type Refresher interface {
	RefreshAll(ctx context.Context) error
}

type Scheduler struct {
	refresher  Refresher
	interval   time.Duration
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the running refresh
	mu         sync.Mutex         // protects cancelFunc
}

func New(refresher Refresher, interval time.Duration) *Scheduler {
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "start", "resource", "bulletin", "result", "ok", "interval", s.interval.String())
}

// Stop cancels a running refresh and waits for the loop to exit. Safe to
// call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.cancelFunc != nil {
			s.cancelFunc()
		}
		s.mu.Unlock()

		close(s.stopCh)
		s.wg.Wait()
		logger.Info("scheduler stopped", "module", "scheduler", "action", "stop", "resource", "bulletin", "result", "ok")
	})
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.refresh()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.refresh()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) refresh() {
	select {
	case <-s.stopCh:
		return
	default:
	}

	// a refresh never outlives one interval
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	started := time.Now()
	if err := s.refresher.RefreshAll(ctx); err != nil {
		switch {
		case ctx.Err() != nil:
			logger.Info("scheduled refresh cancelled", "module", "scheduler", "action", "refresh", "resource", "bulletin", "result", "cancelled")
		case errors.Is(err, service.ErrAlreadyRefreshing):
			logger.Debug("scheduled refresh skipped", "module", "scheduler", "action", "refresh", "resource", "bulletin", "result", "skipped")
		default:
			logger.Error("scheduled refresh failed", "module", "scheduler", "action", "refresh", "resource", "bulletin", "result", "failed", "error", err)
		}
		return
	}
	logger.Debug("scheduled refresh completed", "module", "scheduler", "action", "refresh", "resource", "bulletin", "result", "ok", "duration", time.Since(started).String())
}
