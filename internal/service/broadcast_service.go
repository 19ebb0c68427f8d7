//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"safelink/backend/internal/broadcast"
	"safelink/backend/pkg/logger"
	"safelink/backend/pkg/sanitizer"
)

// Announcement is an instruction pushed to every connected worker.
type Announcement struct {
	ID            string
	StandardText  string
	DetectedTerms []string
	Translations  map[string]string
	Approximate   map[string]bool
	Delivered     int
}

type BroadcastService interface {
	Announce(ctx context.Context, text string) (*Announcement, error)
}

type broadcastService struct {
	translator TranslationService
	publisher  Publisher
}

func NewBroadcastService(translator TranslationService, publisher Publisher) BroadcastService {
	return &broadcastService{translator: translator, publisher: publisherOrNoop(publisher)}
}

func (s *broadcastService) Announce(ctx context.Context, text string) (*Announcement, error) {
	text = sanitizer.CleanText(text, maxInstructionRunes)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalid)
	}

	batch, err := s.translator.TranslateBatch(ctx, text, nil)
	if err != nil {
		return nil, err
	}

	a := &Announcement{
		ID:            uuid.NewString(),
		StandardText:  batch.StandardText,
		DetectedTerms: batch.DetectedTerms,
		Translations:  batch.Translations,
		Approximate:   batch.Approximate,
	}
	a.Delivered = publish(ctx, s.publisher, broadcast.Event{
		Type:         broadcast.EventInstruction,
		ID:           a.ID,
		StandardText: a.StandardText,
		Translations: a.Translations,
		Approximate:  a.Approximate,
	}, nil)

	logger.Info("instruction broadcast", "module", "service", "action", "publish", "resource", "broadcast", "result", "ok", "delivered", a.Delivered)
	return a, nil
}
