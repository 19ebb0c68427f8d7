//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"safelink/backend/internal/broadcast"
	"safelink/backend/internal/model"
	"safelink/backend/internal/repository"
	"safelink/backend/pkg/logger"
	"safelink/backend/pkg/sanitizer"
)

const (
	unknownValue          = "Unknown"
	workerMessageListSize = 50
	maxWorkerNameRunes    = 50
	maxWorkerMessageRunes = 500
)

type WorkerMessageInput struct {
	WorkerName     string
	WorkerCountry  string
	WorkerLanguage string
	Message        string
	IsUrgent       bool
}

type WorkerMessageList struct {
	Messages    []model.WorkerMessage
	UnreadCount int
}

// workerMessagePayload is what managers receive for a new message.
type workerMessagePayload struct {
	ID             string `json:"id"`
	WorkerName     string `json:"workerName"`
	WorkerCountry  string `json:"workerCountry,omitempty"`
	WorkerLanguage string `json:"workerLanguage"`
	Message        string `json:"message"`
	Translated     string `json:"translated"`
	IsUrgent       bool   `json:"isUrgent"`
}

type WorkerMessageService interface {
	Submit(ctx context.Context, in WorkerMessageInput) (*model.WorkerMessage, error)
	List(ctx context.Context, unreadOnly bool) (*WorkerMessageList, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) (int64, error)
}

type workerMessageService struct {
	repo       repository.WorkerMessageRepository
	translator TranslationService
	publisher  Publisher
}

func NewWorkerMessageService(repo repository.WorkerMessageRepository, translator TranslationService, publisher Publisher) WorkerMessageService {
	return &workerMessageService{repo: repo, translator: translator, publisher: publisherOrNoop(publisher)}
}

func (s *workerMessageService) Submit(ctx context.Context, in WorkerMessageInput) (*model.WorkerMessage, error) {
	name := sanitizer.CleanText(in.WorkerName, maxWorkerNameRunes)
	message := sanitizer.CleanText(in.Message, maxWorkerMessageRunes)
	if name == "" || message == "" {
		return nil, fmt.Errorf("%w: workerName and message are required", ErrInvalid)
	}
	language := sanitizer.CleanText(in.WorkerLanguage, maxWorkerNameRunes)
	if language == "" {
		language = unknownValue
	}
	country := sanitizer.CleanText(in.WorkerCountry, maxWorkerNameRunes)
	if country == "" {
		country = unknownValue
	}

	translated := message
	res, err := s.translator.Translate(ctx, TranslationRequest{Text: message, Lang: language})
	if err != nil {
		logger.Warn("worker message translation failed", "module", "service", "action", "translate", "resource", "worker_message", "result", "fallback", "error", err)
	} else if res.Translation != "" {
		translated = res.Translation
	}

	created, err := s.repo.Create(ctx, model.WorkerMessage{
		WorkerName:     name,
		WorkerCountry:  &country,
		WorkerLanguage: language,
		Message:        message,
		Translated:     translated,
		IsUrgent:       in.IsUrgent,
	})
	if err != nil {
		return nil, fmt.Errorf("create worker message: %w", err)
	}

	eventType := broadcast.EventWorkerMsg
	if created.IsUrgent {
		eventType = broadcast.EventUrgent
	}
	publish(ctx, s.publisher, broadcast.Event{
		Type:         eventType,
		ID:           strconv.FormatInt(created.ID, 10),
		Target:       broadcast.RoleManager,
		StandardText: created.Translated,
	}, workerMessagePayload{
		ID:             strconv.FormatInt(created.ID, 10),
		WorkerName:     created.WorkerName,
		WorkerCountry:  country,
		WorkerLanguage: created.WorkerLanguage,
		Message:        created.Message,
		Translated:     created.Translated,
		IsUrgent:       created.IsUrgent,
	})

	logger.Info("worker message received", "module", "service", "action", "create", "resource", "worker_message", "result", "ok", "urgent", created.IsUrgent, "lang", language)
	return created, nil
}

func (s *workerMessageService) List(ctx context.Context, unreadOnly bool) (*WorkerMessageList, error) {
	messages, err := s.repo.ListRecent(ctx, workerMessageListSize, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("list worker messages: %w", err)
	}
	unread, err := s.repo.CountUnread(ctx)
	if err != nil {
		return nil, fmt.Errorf("count unread: %w", err)
	}
	if messages == nil {
		messages = []model.WorkerMessage{}
	}
	return &WorkerMessageList{Messages: messages, UnreadCount: unread}, nil
}

func (s *workerMessageService) MarkRead(ctx context.Context, id int64) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

func (s *workerMessageService) MarkAllRead(ctx context.Context) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}
	return n, nil
}
