package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"safelink/backend/internal/model"
)

// settingsRepoStub is an in-memory settings table. Tests read and seed data
// directly; the auth and settings services only see the repository methods.
type settingsRepoStub struct {
	mu      sync.Mutex
	data    map[string]string
	updated time.Time
}

func newSettingsRepoStub() *settingsRepoStub {
	return &settingsRepoStub{
		data:    make(map[string]string),
		updated: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *settingsRepoStub) row(key string) model.Setting {
	return model.Setting{Key: key, Value: s.data[key], UpdatedAt: s.updated}
}

func (s *settingsRepoStub) Get(ctx context.Context, key string) (*model.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil, nil
	}
	row := s.row(key)
	return &row, nil
}

func (s *settingsRepoStub) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *settingsRepoStub) GetByPrefix(ctx context.Context, prefix string) ([]model.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := s.keysWithPrefix(prefix)
	out := make([]model.Setting, 0, len(keys))
	for _, key := range keys {
		out = append(out, s.row(key))
	}
	return out, nil
}

func (s *settingsRepoStub) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *settingsRepoStub) DeleteByPrefix(ctx context.Context, prefix string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := s.keysWithPrefix(prefix)
	for _, key := range keys {
		delete(s.data, key)
	}
	return int64(len(keys)), nil
}

func (s *settingsRepoStub) keysWithPrefix(prefix string) []string {
	keys := make([]string, 0, len(s.data))
	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
