//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"safelink/backend/internal/observe"
	"safelink/backend/internal/resilience"
	"safelink/backend/internal/service/speech"
	"safelink/backend/pkg/logger"
	"safelink/backend/pkg/sanitizer"
)

const maxSpeechRunes = 500

// SpeechResult carries base64 audio, or Fallback when the client should
// use its own speech engine.
type SpeechResult struct {
	AudioContent string
	MimeType     string
	SampleRate   int
	Source       string
	Fallback     bool
}

type SpeechService interface {
	Synthesize(ctx context.Context, text, langCode, gender string) (*SpeechResult, error)
	Providers() []string
}

type speechService struct {
	chain   *resilience.Chain[speech.Synthesizer]
	metrics *observe.Metrics
}

// NewSpeechService tries synthesizers in the given order.
func NewSpeechService(metrics *observe.Metrics, cfg resilience.BreakerConfig, synthesizers ...speech.Synthesizer) SpeechService {
	chain := resilience.NewChain[speech.Synthesizer](cfg)
	for _, syn := range synthesizers {
		if syn == nil {
			continue
		}
		chain.Add(syn.Name(), syn)
	}
	return &speechService{chain: chain, metrics: metrics}
}

func (s *speechService) Providers() []string {
	return s.chain.Names()
}

func (s *speechService) Synthesize(ctx context.Context, text, langCode, gender string) (*SpeechResult, error) {
	text = sanitizer.CleanText(text, maxSpeechRunes)
	langCode = strings.TrimSpace(langCode)
	if text == "" || langCode == "" {
		return nil, fmt.Errorf("%w: text and langCode are required", ErrInvalid)
	}
	gender = speech.NormalizeGender(gender)

	if s.chain.Len() == 0 {
		s.metrics.RecordSpeech(ctx, speech.SourceBrowser)
		return &SpeechResult{Fallback: true, Source: speech.SourceBrowser}, nil
	}

	started := time.Now()
	res, provider, err := resilience.Run(ctx, s.chain, func(ctx context.Context, syn speech.Synthesizer) (*speech.Result, error) {
		r, err := syn.Synthesize(ctx, text, langCode, gender)
		if err != nil {
			return nil, err
		}
		if r == nil || len(r.Audio) == 0 {
			return nil, speech.ErrNoAudio
		}
		return r, nil
	})
	s.metrics.ObserveUpstream(ctx, "tts", provider, started)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Warn("speech fallback", "module", "service", "action", "synthesize", "resource", "tts", "result", "fallback", "lang", langCode, "error", err)
		s.metrics.RecordSpeech(ctx, speech.SourceBrowser)
		return &SpeechResult{Fallback: true, Source: speech.SourceBrowser}, nil
	}

	s.metrics.RecordSpeech(ctx, res.Source)
	return &SpeechResult{
		AudioContent: base64.StdEncoding.EncodeToString(res.Audio),
		MimeType:     res.MimeType,
		SampleRate:   res.SampleRate,
		Source:       res.Source,
	}, nil
}
