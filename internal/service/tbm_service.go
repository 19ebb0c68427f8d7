//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"safelink/backend/internal/broadcast"
	"safelink/backend/internal/model"
	"safelink/backend/internal/repository"
	"safelink/backend/pkg/logger"
	"safelink/backend/pkg/sanitizer"
)

const maxInstructionRunes = 500

// TBMStart is a freshly opened session with the text pushed to workers.
type TBMStart struct {
	Session      *model.TBMSession
	Translations map[string]string
	Approximate  map[string]bool
}

type TBMStatus struct {
	Active      *model.TBMSession
	SignedCount int
	Signatures  []model.TBMSignature
}

type tbmSignedPayload struct {
	SessionID      string `json:"sessionId"`
	WorkerName     string `json:"workerName"`
	WorkerLanguage string `json:"workerLanguage"`
	SignedCount    int    `json:"signedCount"`
}

type TBMService interface {
	// Start closes any active session and opens a new one.
	Start(ctx context.Context, instruction string) (*TBMStart, error)
	Status(ctx context.Context) (*TBMStatus, error)
	Sign(ctx context.Context, sessionID int64, workerName, workerLanguage string) (*model.TBMSignature, error)
	Close(ctx context.Context, sessionID int64) error
}

type tbmService struct {
	repo       repository.TBMRepository
	translator TranslationService
	publisher  Publisher
}

func NewTBMService(repo repository.TBMRepository, translator TranslationService, publisher Publisher) TBMService {
	return &tbmService{repo: repo, translator: translator, publisher: publisherOrNoop(publisher)}
}

func (s *tbmService) Start(ctx context.Context, instruction string) (*TBMStart, error) {
	instruction = sanitizer.CleanText(instruction, maxInstructionRunes)
	if instruction == "" {
		return nil, fmt.Errorf("%w: instruction is required", ErrInvalid)
	}

	batch, err := s.translator.TranslateBatch(ctx, instruction, nil)
	if err != nil {
		return nil, err
	}

	session, closed, err := s.repo.StartSession(ctx, instruction, batch.StandardText, batch.DetectedTerms)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: another session started concurrently", ErrConflict)
		}
		return nil, fmt.Errorf("start session: %w", err)
	}

	publish(ctx, s.publisher, broadcast.Event{
		Type:         broadcast.EventTBMStarted,
		ID:           strconv.FormatInt(session.ID, 10),
		StandardText: session.StandardText,
		Translations: batch.Translations,
		Approximate:  batch.Approximate,
	}, nil)

	logger.Info("tbm started", "module", "service", "action", "create", "resource", "tbm", "result", "ok", "session_id", session.ID, "closed", closed)
	return &TBMStart{Session: session, Translations: batch.Translations, Approximate: batch.Approximate}, nil
}

func (s *tbmService) Status(ctx context.Context) (*TBMStatus, error) {
	active, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active session: %w", err)
	}
	status := &TBMStatus{Active: active, Signatures: []model.TBMSignature{}}
	if active == nil {
		return status, nil
	}
	sigs, err := s.repo.ListSignatures(ctx, active.ID)
	if err != nil {
		return nil, fmt.Errorf("list signatures: %w", err)
	}
	if sigs != nil {
		status.Signatures = sigs
	}
	status.SignedCount = len(status.Signatures)
	return status, nil
}

func (s *tbmService) Sign(ctx context.Context, sessionID int64, workerName, workerLanguage string) (*model.TBMSignature, error) {
	workerName = sanitizer.CleanText(workerName, maxWorkerNameRunes)
	if workerName == "" {
		return nil, fmt.Errorf("%w: workerName is required", ErrInvalid)
	}
	workerLanguage = sanitizer.CleanText(workerLanguage, maxWorkerNameRunes)
	if workerLanguage == "" {
		workerLanguage = unknownValue
	}

	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return nil, ErrNotFound
	}
	if session.Status != model.TBMStatusActive {
		return nil, fmt.Errorf("%w: session is closed", ErrConflict)
	}

	sig, err := s.repo.AddSignature(ctx, sessionID, workerName, workerLanguage, uuid.NewString())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: already signed", ErrConflict)
		}
		return nil, fmt.Errorf("add signature: %w", err)
	}

	count := 0
	if sigs, err := s.repo.ListSignatures(ctx, sessionID); err == nil {
		count = len(sigs)
	}
	publish(ctx, s.publisher, broadcast.Event{
		Type:   broadcast.EventTBMSigned,
		ID:     strconv.FormatInt(sessionID, 10),
		Target: broadcast.RoleManager,
	}, tbmSignedPayload{
		SessionID:      strconv.FormatInt(sessionID, 10),
		WorkerName:     workerName,
		WorkerLanguage: workerLanguage,
		SignedCount:    count,
	})

	logger.Info("tbm signed", "module", "service", "action", "sign", "resource", "tbm", "result", "ok", "session_id", sessionID)
	return sig, nil
}

func (s *tbmService) Close(ctx context.Context, sessionID int64) error {
	if err := s.repo.CloseSession(ctx, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("close session: %w", err)
	}
	publish(ctx, s.publisher, broadcast.Event{
		Type: broadcast.EventTBMClosed,
		ID:   strconv.FormatInt(sessionID, 10),
	}, nil)
	logger.Info("tbm closed", "module", "service", "action", "close", "resource", "tbm", "result", "ok", "session_id", sessionID)
	return nil
}
