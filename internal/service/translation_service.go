//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"safelink/backend/internal/glossary"
	"safelink/backend/internal/hashutil"
	"safelink/backend/internal/model"
	"safelink/backend/internal/observe"
	"safelink/backend/internal/repository"
	"safelink/backend/internal/resilience"
	"safelink/backend/internal/service/ai"
	"safelink/backend/pkg/logger"
	"safelink/backend/pkg/sanitizer"
)

const (
	SourceGlossary = "glossary"
	SourceOriginal = "original"

	directionManager = "manager"
	directionWorker  = "worker"
	directionVerify  = "verify"

	maxTranslateRunes = 1000
	upstreamTimeout   = 30 * time.Second
	batchConcurrency  = 4
)

var errNoProvider = errors.New("no translation provider configured")

type TranslationRequest struct {
	Text string
	// Lang is the worker language. Codes, keys and names are accepted.
	Lang            string
	ManagerSpeaking bool
	Verify          bool
}

type TranslationResult struct {
	Translation   string
	StandardText  string
	DetectedTerms []string
	Verification  *string
	Approximate   bool
	Source        string
	Lang          string
}

// BatchTranslation is one manager instruction rendered for several worker
// languages. Maps are keyed by language key.
type BatchTranslation struct {
	StandardText  string
	DetectedTerms []string
	Translations  map[string]string
	Approximate   map[string]bool
}

// ChatTurn renders one translated utterance for the conversation view.
func ChatTurn(req TranslationRequest, res *TranslationResult, at time.Time) model.ChatTurn {
	turn := model.ChatTurn{
		Role:        model.RoleWorker,
		Original:    sanitizer.CleanText(req.Text, maxTranslateRunes),
		Translated:  res.Translation,
		Lang:        res.Lang,
		Approximate: res.Approximate,
		Detected:    res.DetectedTerms,
		Timestamp:   at.UTC(),
	}
	if req.ManagerSpeaking {
		turn.Role = model.RoleManager
		turn.Standardized = res.StandardText
	}
	if turn.Detected == nil {
		turn.Detected = []string{}
	}
	return turn
}

// AIConfigSource yields the runtime provider settings.
type AIConfigSource interface {
	AIConfig(ctx context.Context) (ai.Config, bool)
}

// ProviderFactory builds a provider from config.
type ProviderFactory func(cfg ai.Config) (ai.Provider, error)

type TranslationService interface {
	Translate(ctx context.Context, req TranslationRequest) (*TranslationResult, error)
	TranslateBatch(ctx context.Context, text string, langs []string) (*BatchTranslation, error)
	ClearCache(ctx context.Context) (int64, error)
}

type TranslationOption func(*translationService)

// WithEnvGemini appends a Gemini provider after the configured one.
func WithEnvGemini(apiKey, model string) TranslationOption {
	return func(s *translationService) {
		s.envGemini = ai.Config{Provider: ai.ProviderGemini, APIKey: apiKey, Model: model}
		if s.envGemini.Model == "" {
			s.envGemini.Model = ai.DefaultGeminiModel
		}
	}
}

func WithProviderFactory(f ProviderFactory) TranslationOption {
	return func(s *translationService) { s.newProvider = f }
}

func WithTranslationMetrics(m *observe.Metrics) TranslationOption {
	return func(s *translationService) { s.metrics = m }
}

func WithBreakerConfig(cfg resilience.BreakerConfig) TranslationOption {
	return func(s *translationService) { s.breakerCfg = cfg }
}

type translationService struct {
	glossary    GlossaryService
	cache       repository.TranslationCacheRepository
	settings    AIConfigSource
	limiter     *ai.RateLimiter
	newProvider ProviderFactory
	envGemini   ai.Config
	breakerCfg  resilience.BreakerConfig
	metrics     *observe.Metrics

	group singleflight.Group

	mu          sync.Mutex
	chain       *resilience.Chain[ai.Provider]
	fingerprint string
}

func NewTranslationService(
	glossarySvc GlossaryService,
	cache repository.TranslationCacheRepository,
	settings AIConfigSource,
	limiter *ai.RateLimiter,
	opts ...TranslationOption,
) TranslationService {
	s := &translationService{
		glossary:    glossarySvc,
		cache:       cache,
		settings:    settings,
		limiter:     limiter,
		newProvider: ai.NewProvider,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *translationService) Translate(ctx context.Context, req TranslationRequest) (*TranslationResult, error) {
	text := sanitizer.CleanText(req.Text, maxTranslateRunes)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalid)
	}
	lang := strings.TrimSpace(req.Lang)

	if req.ManagerSpeaking {
		if lang == "" {
			return nil, fmt.Errorf("%w: lang is required", ErrInvalid)
		}
		return s.translateInstruction(ctx, text, lang, req.Verify)
	}
	return s.translateWorker(ctx, text, lang)
}

func (s *translationService) translateInstruction(ctx context.Context, text, lang string, verify bool) (*TranslationResult, error) {
	snap, err := s.glossary.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	std := glossary.Standardize(text, snap)
	key := glossary.LanguageKey(lang)

	res := &TranslationResult{
		StandardText:  std.StandardText,
		DetectedTerms: std.DetectedTerms,
		Lang:          key,
	}
	if key == glossary.Korean.Key {
		res.Translation = std.StandardText
		res.Source = SourceGlossary
		return res, nil
	}

	terms := make([]glossary.Entry, 0, len(std.DetectedTerms))
	for _, slang := range std.DetectedTerms {
		if e, ok := snap.Lookup(slang); ok {
			terms = append(terms, e)
		}
	}

	out, provider, err := s.remote(ctx, directionManager, key, std.StandardText, ai.GetInstructionPrompt(lang, terms))
	if err != nil {
		s.logFallback(key, err)
		s.metrics.RecordFallback(ctx, key)
		res.Translation = glossary.TranslateFallback(std.StandardText, key, snap)
		res.Approximate = true
		res.Source = SourceGlossary
		return res, nil
	}
	res.Translation = out
	res.Source = provider

	if verify {
		back, _, err := s.remote(ctx, directionVerify, key, out, ai.GetVerifyPrompt(lang))
		if err != nil {
			logger.Warn("verification failed", "module", "service", "action", "verify", "resource", "translation", "result", "failed", "lang", key, "error", err)
		} else {
			res.Verification = &back
		}
	}
	return res, nil
}

func (s *translationService) translateWorker(ctx context.Context, text, lang string) (*TranslationResult, error) {
	if lang == "" {
		lang = unknownValue
	}
	key := glossary.LanguageKey(lang)
	res := &TranslationResult{DetectedTerms: []string{}, Lang: key}

	if key == glossary.Korean.Key {
		res.Translation = text
		res.Source = SourceOriginal
		return res, nil
	}

	out, provider, err := s.remote(ctx, directionWorker, key, text, ai.GetWorkerPrompt(lang))
	if err != nil {
		s.logFallback(key, err)
		s.metrics.RecordFallback(ctx, key)
		res.Translation = text
		res.Approximate = true
		res.Source = SourceOriginal
		return res, nil
	}
	res.Translation = out
	res.Source = provider
	return res, nil
}

func (s *translationService) logFallback(lang string, err error) {
	if errors.Is(err, errNoProvider) {
		logger.Debug("translation fallback", "module", "service", "action", "translate", "resource", "translation", "result", "fallback", "lang", lang, "reason", "no_provider")
		return
	}
	logger.Warn("translation fallback", "module", "service", "action", "translate", "resource", "translation", "result", "fallback", "lang", lang, "error", err)
}

func (s *translationService) TranslateBatch(ctx context.Context, text string, langs []string) (*BatchTranslation, error) {
	text = sanitizer.CleanText(text, maxTranslateRunes)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalid)
	}
	if len(langs) == 0 {
		for _, l := range glossary.Languages {
			langs = append(langs, l.Key)
		}
	}

	seen := make(map[string]struct{}, len(langs))
	keys := make([]string, 0, len(langs))
	for _, l := range langs {
		key := glossary.LanguageKey(l)
		if key == "" || key == glossary.Korean.Key {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	results := make([]*TranslationResult, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, key := range keys {
		g.Go(func() error {
			res, err := s.translateInstruction(gctx, text, key, false)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap, err := s.glossary.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	std := glossary.Standardize(text, snap)
	out := &BatchTranslation{
		StandardText:  std.StandardText,
		DetectedTerms: std.DetectedTerms,
		Translations:  make(map[string]string, len(keys)),
		Approximate:   make(map[string]bool, len(keys)),
	}
	for i, key := range keys {
		out.Translations[key] = results[i].Translation
		out.Approximate[key] = results[i].Approximate
	}
	return out, nil
}

func (s *translationService) ClearCache(ctx context.Context) (int64, error) {
	n, err := s.cache.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear translation cache: %w", err)
	}
	logger.Info("translation cache cleared", "module", "service", "action", "delete", "resource", "translation", "result", "ok", "count", n)
	return n, nil
}

type remoteResult struct {
	text     string
	provider string
}

// remote returns a cached or freshly fetched translation. Identical
// concurrent requests share one upstream call.
func (s *translationService) remote(ctx context.Context, direction, lang, content, systemPrompt string) (string, string, error) {
	cacheKey := hashutil.Key(direction, lang, content)

	cached, err := s.cache.Get(ctx, cacheKey)
	if err != nil {
		logger.Warn("translation cache read failed", "module", "service", "action", "fetch", "resource", "translation", "result", "failed", "error", err)
	} else if cached != nil {
		return cached.Content, cached.Source, nil
	}

	v, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		chain := s.providers(ctx)
		if chain.Len() == 0 {
			return nil, errNoProvider
		}

		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), upstreamTimeout)
		defer cancel()

		if s.limiter != nil {
			if err := s.limiter.Wait(callCtx); err != nil {
				return nil, fmt.Errorf("rate limit: %w", err)
			}
		}

		started := time.Now()
		out, provider, err := resilience.Run(callCtx, chain, func(ctx context.Context, p ai.Provider) (string, error) {
			text, err := p.Complete(ctx, systemPrompt, content)
			if err != nil {
				return "", err
			}
			text = strings.TrimSpace(text)
			if text == "" {
				return "", ai.ErrEmptyResponse
			}
			return text, nil
		})
		s.metrics.ObserveUpstream(ctx, "translate", provider, started)
		if err != nil {
			s.metrics.RecordTranslation(ctx, "none", "failed")
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		s.metrics.RecordTranslation(ctx, provider, "ok")

		if err := s.cache.Save(callCtx, cacheKey, lang, provider, out); err != nil {
			logger.Warn("translation cache write failed", "module", "service", "action", "create", "resource", "translation", "result", "failed", "error", err)
		}
		return remoteResult{text: out, provider: provider}, nil
	})
	if err != nil {
		return "", "", err
	}
	r := v.(remoteResult)
	return r.text, r.provider, nil
}

// providers returns the chain for the current settings, rebuilding it when
// they changed. Breaker state survives as long as the settings do.
func (s *translationService) providers(ctx context.Context) *resilience.Chain[ai.Provider] {
	var cfg ai.Config
	ok := false
	if s.settings != nil {
		cfg, ok = s.settings.AIConfig(ctx)
	}
	fp := fingerprint(cfg, ok, s.envGemini)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chain != nil && s.fingerprint == fp {
		return s.chain
	}

	chain := resilience.NewChain[ai.Provider](s.breakerCfg)
	if ok {
		if p, err := s.newProvider(cfg); err != nil {
			logger.Warn("ai provider unavailable", "module", "service", "action", "init", "resource", "translation", "result", "failed", "provider", cfg.Provider, "error", err)
		} else {
			chain.Add(p.Name(), p)
		}
	}
	if s.envGemini.APIKey != "" && !(ok && cfg.Provider == ai.ProviderGemini) {
		if p, err := s.newProvider(s.envGemini); err != nil {
			logger.Warn("ai provider unavailable", "module", "service", "action", "init", "resource", "translation", "result", "failed", "provider", ai.ProviderGemini, "error", err)
		} else {
			chain.Add(ai.ProviderGemini, p)
		}
	}

	s.chain = chain
	s.fingerprint = fp
	logger.Debug("translation providers rebuilt", "module", "service", "action", "init", "resource", "translation", "result", "ok", "providers", chain.Names())
	return chain
}

func fingerprint(cfg ai.Config, ok bool, env ai.Config) string {
	if !ok {
		cfg = ai.Config{}
	}
	return hashutil.SHA256Hex(fmt.Sprintf("%+v|%+v", cfg, env))
}
