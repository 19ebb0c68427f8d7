//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"safelink/backend/internal/model"
	"safelink/backend/internal/repository"
	"safelink/backend/pkg/logger"
	"safelink/backend/pkg/sanitizer"
)

type savedPreset struct {
	category string
	text     string
}

var savedPresets = []savedPreset{
	{model.CategorySafety, "안전모 착용하고 작업 시작하세요"},
	{model.CategorySafety, "아시바 해체작업 전 안전 확인하세요"},
	{model.CategoryWork, "공구리 타설 작업 준비하세요"},
	{model.CategoryEmergency, "작업 중지! 긴급 대피하세요"},
}

type SavedMessageService interface {
	// EnsurePresets seeds the default messages into an empty table.
	EnsurePresets(ctx context.Context) error
	List(ctx context.Context, category, query string) ([]model.SavedMessage, error)
	Get(ctx context.Context, id int64) (*model.SavedMessage, error)
	Create(ctx context.Context, category, originalText string) (*model.SavedMessage, error)
	Update(ctx context.Context, id int64, category, originalText string) (*model.SavedMessage, error)
	Delete(ctx context.Context, id int64) error
	Broadcast(ctx context.Context, id int64) (*Announcement, error)
}

type savedMessageService struct {
	repo        repository.SavedMessageRepository
	glossary    GlossaryService
	broadcaster BroadcastService
}

func NewSavedMessageService(repo repository.SavedMessageRepository, glossarySvc GlossaryService, broadcaster BroadcastService) SavedMessageService {
	return &savedMessageService{repo: repo, glossary: glossarySvc, broadcaster: broadcaster}
}

func (s *savedMessageService) EnsurePresets(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count saved messages: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, p := range savedPresets {
		if _, err := s.Create(ctx, p.category, p.text); err != nil {
			return fmt.Errorf("seed preset: %w", err)
		}
	}
	logger.Info("saved message presets seeded", "module", "service", "action", "create", "resource", "saved_message", "result", "ok", "count", len(savedPresets))
	return nil
}

func (s *savedMessageService) List(ctx context.Context, category, query string) ([]model.SavedMessage, error) {
	category = strings.TrimSpace(category)
	if category != "" && !model.IsValidCategory(category) {
		return nil, fmt.Errorf("%w: category %q", ErrInvalid, category)
	}
	messages, err := s.repo.List(ctx, category, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("list saved messages: %w", err)
	}
	if messages == nil {
		messages = []model.SavedMessage{}
	}
	return messages, nil
}

func (s *savedMessageService) Get(ctx context.Context, id int64) (*model.SavedMessage, error) {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get saved message: %w", err)
	}
	if msg == nil {
		return nil, ErrNotFound
	}
	return msg, nil
}

func (s *savedMessageService) Create(ctx context.Context, category, originalText string) (*model.SavedMessage, error) {
	category, text, standard, err := s.prepare(ctx, category, originalText)
	if err != nil {
		return nil, err
	}
	msg, err := s.repo.Create(ctx, category, text, standard)
	if err != nil {
		return nil, fmt.Errorf("create saved message: %w", err)
	}
	return msg, nil
}

func (s *savedMessageService) Update(ctx context.Context, id int64, category, originalText string) (*model.SavedMessage, error) {
	category, text, standard, err := s.prepare(ctx, category, originalText)
	if err != nil {
		return nil, err
	}
	msg, err := s.repo.Update(ctx, id, category, text, standard)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update saved message: %w", err)
	}
	return msg, nil
}

// prepare cleans input and standardizes the text against the current glossary.
func (s *savedMessageService) prepare(ctx context.Context, category, originalText string) (string, string, string, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = model.CategoryGeneral
	}
	if !model.IsValidCategory(category) {
		return "", "", "", fmt.Errorf("%w: category %q", ErrInvalid, category)
	}
	text := sanitizer.CleanText(originalText, maxInstructionRunes)
	if text == "" {
		return "", "", "", fmt.Errorf("%w: text is required", ErrInvalid)
	}
	res, err := s.glossary.Standardize(ctx, text)
	if err != nil {
		return "", "", "", err
	}
	return category, text, res.StandardText, nil
}

func (s *savedMessageService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete saved message: %w", err)
	}
	return nil
}

func (s *savedMessageService) Broadcast(ctx context.Context, id int64) (*Announcement, error) {
	msg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	a, err := s.broadcaster.Announce(ctx, msg.OriginalText)
	if err != nil {
		return nil, err
	}
	if err := s.repo.IncrementUsage(ctx, id); err != nil {
		logger.Warn("increment usage failed", "module", "service", "action", "update", "resource", "saved_message", "result", "failed", "id", id, "error", err)
	}
	return a, nil
}
