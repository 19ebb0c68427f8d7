//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"safelink/backend/internal/glossary"
	"safelink/backend/internal/model"
	"safelink/backend/internal/repository"
	"safelink/backend/pkg/logger"
	"safelink/backend/pkg/sanitizer"
)

const (
	maxSlangRunes       = 50
	maxStandardRunes    = 100
	maxTranslationRunes = 200
	defaultSuggestLimit = 5
)

// GlossaryTerm is an entry of the merged glossary.
type GlossaryTerm struct {
	glossary.Entry
	Builtin bool
}

type GlossaryService interface {
	// Snapshot returns the merged glossary: built-ins that are neither
	// suppressed nor overridden, then custom terms in creation order.
	Snapshot(ctx context.Context) (*glossary.Snapshot, error)
	List(ctx context.Context, query string) ([]GlossaryTerm, error)
	Suggest(ctx context.Context, query string) ([]string, error)
	Add(ctx context.Context, entry glossary.Entry) (*GlossaryTerm, error)
	// Remove is idempotent. Removing a built-in suppresses it.
	Remove(ctx context.Context, slang string) error
	Standardize(ctx context.Context, text string) (glossary.Result, error)
}

type glossaryService struct {
	repo repository.GlossaryRepository

	mu     sync.RWMutex
	cached *glossaryView
}

// glossaryView is the merged snapshot plus the slangs that came from the
// custom table.
type glossaryView struct {
	snap   *glossary.Snapshot
	custom map[string]struct{}
}

func NewGlossaryService(repo repository.GlossaryRepository) GlossaryService {
	return &glossaryService{repo: repo}
}

func (s *glossaryService) Snapshot(ctx context.Context) (*glossary.Snapshot, error) {
	v, err := s.view(ctx)
	if err != nil {
		return nil, err
	}
	return v.snap, nil
}

func (s *glossaryService) view(ctx context.Context) (*glossaryView, error) {
	s.mu.RLock()
	v := s.cached
	s.mu.RUnlock()
	if v != nil {
		return v, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		return s.cached, nil
	}

	custom, err := s.repo.ListCustom(ctx)
	if err != nil {
		return nil, fmt.Errorf("list custom terms: %w", err)
	}
	suppressed, err := s.repo.ListSuppressed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppressed terms: %w", err)
	}

	v = &glossaryView{
		snap:   glossary.NewSnapshot(mergeEntries(glossary.Builtins(), custom, suppressed)),
		custom: make(map[string]struct{}, len(custom)),
	}
	for _, c := range custom {
		v.custom[c.Slang] = struct{}{}
	}
	s.cached = v
	return v, nil
}

func mergeEntries(builtins []glossary.Entry, custom []model.CustomTerm, suppressed []string) []glossary.Entry {
	hidden := make(map[string]struct{}, len(suppressed)+len(custom))
	for _, slang := range suppressed {
		hidden[slang] = struct{}{}
	}
	for _, c := range custom {
		hidden[c.Slang] = struct{}{}
	}

	out := make([]glossary.Entry, 0, len(builtins)+len(custom))
	for _, e := range builtins {
		if _, ok := hidden[e.Slang]; ok {
			continue
		}
		out = append(out, e)
	}
	for _, c := range custom {
		out = append(out, glossary.Entry{Slang: c.Slang, Standard: c.Standard, Translations: c.Translations})
	}
	return out
}

func (s *glossaryService) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *glossaryService) List(ctx context.Context, query string) ([]GlossaryTerm, error) {
	v, err := s.view(ctx)
	if err != nil {
		return nil, err
	}
	entries := v.snap.Search(strings.TrimSpace(query))
	out := make([]GlossaryTerm, 0, len(entries))
	for _, e := range entries {
		out = append(out, v.term(e))
	}
	return out, nil
}

// term marks an entry built-in only while no custom entry overrides it.
func (v *glossaryView) term(e glossary.Entry) GlossaryTerm {
	_, custom := v.custom[e.Slang]
	return GlossaryTerm{Entry: e, Builtin: !custom && glossary.IsBuiltin(e.Slang)}
}

func (s *glossaryService) Suggest(ctx context.Context, query string) ([]string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Suggest(strings.TrimSpace(query), defaultSuggestLimit), nil
}

func (s *glossaryService) Add(ctx context.Context, entry glossary.Entry) (*GlossaryTerm, error) {
	entry = cleanEntry(entry)
	if entry.Slang == "" || entry.Standard == "" {
		return nil, ErrInvalid
	}

	v, err := s.view(ctx)
	if err != nil {
		return nil, err
	}
	if existing, ok := v.snap.Lookup(entry.Slang); ok {
		return nil, &TermConflictError{Existing: existing, Builtin: v.term(existing).Builtin}
	}

	created, err := s.repo.CreateCustom(ctx, entry.Slang, entry.Standard, entry.Translations)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &TermConflictError{Existing: entry}
		}
		return nil, fmt.Errorf("create term: %w", err)
	}
	s.invalidate()

	logger.Info("glossary term added", "module", "service", "action", "create", "resource", "glossary", "result", "ok", "slang", created.Slang)
	return &GlossaryTerm{Entry: glossary.Entry{
		Slang:        created.Slang,
		Standard:     created.Standard,
		Translations: created.Translations,
	}}, nil
}

func cleanEntry(entry glossary.Entry) glossary.Entry {
	tr := make(map[string]string, len(entry.Translations))
	for k, v := range entry.Translations {
		key := glossary.LanguageKey(k)
		if key == "" {
			continue
		}
		tr[key] = sanitizer.CleanText(v, maxTranslationRunes)
	}
	return glossary.Entry{
		Slang:        sanitizer.CleanText(entry.Slang, maxSlangRunes),
		Standard:     sanitizer.CleanText(entry.Standard, maxStandardRunes),
		Translations: tr,
	}.Normalize()
}

func (s *glossaryService) Remove(ctx context.Context, slang string) error {
	slang = strings.TrimSpace(slang)
	if slang == "" {
		return ErrInvalid
	}

	if err := s.repo.DeleteCustom(ctx, slang); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("delete term: %w", err)
	}
	if glossary.IsBuiltin(slang) {
		if err := s.repo.Suppress(ctx, slang); err != nil {
			return fmt.Errorf("suppress term: %w", err)
		}
	}
	s.invalidate()

	logger.Info("glossary term removed", "module", "service", "action", "delete", "resource", "glossary", "result", "ok", "slang", slang)
	return nil
}

func (s *glossaryService) Standardize(ctx context.Context, text string) (glossary.Result, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return glossary.Result{}, err
	}
	return glossary.Standardize(text, snap), nil
}
