//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"safelink/backend/internal/repository"
	"safelink/backend/internal/service/ai"
	"safelink/backend/pkg/logger"
	"safelink/backend/pkg/network"
)

const (
	keyAIProvider        = "ai.provider"
	keyAIAPIKey          = "ai.api_key"
	keyAIBaseURL         = "ai.base_url"
	keyAIModel           = "ai.model"
	keyAIEndpoint        = "ai.endpoint"
	keyAIThinking        = "ai.thinking"
	keyAIReasoningEffort = "ai.reasoning_effort"
	keyAIMaxTokens       = "ai.max_tokens"
	keyAIVerify          = "ai.verify"
	keyAIRateLimit       = "ai.rate_limit"

	keyNetworkEnabled  = "network.enabled"
	keyNetworkType     = "network.type"
	keyNetworkHost     = "network.host"
	keyNetworkPort     = "network.port"
	keyNetworkUsername = "network.username"
	keyNetworkPassword = "network.password"
	keyNetworkIPStack  = "network.ip_stack"

	defaultEndpoint        = "chat/completions"
	defaultReasoningEffort = "medium"
	defaultMaxTokens       = 1024
	maskedValue            = "***"
	proxyProbeURL          = "https://www.gstatic.com/generate_204"
)

// AISettings configures the remote translator used before the glossary
// fallback.
type AISettings struct {
	Provider        string
	APIKey          string
	BaseURL         string
	Model           string
	Endpoint        string
	Thinking        bool
	ReasoningEffort string
	MaxTokens       int
	// Verify requests a back-translation for every manager instruction.
	Verify    bool
	RateLimit int
}

type NetworkSettings struct {
	Enabled  bool
	Type     string
	Host     string
	Port     int
	Username string
	Password string
	IPStack  string
}

type SettingsService interface {
	GetAISettings(ctx context.Context) (*AISettings, error)
	SetAISettings(ctx context.Context, settings *AISettings) error
	TestAI(ctx context.Context, provider, apiKey, baseURL, model, endpoint string, thinking bool, maxTokens int, reasoningEffort string) (string, error)
	// AIConfig returns the unmasked provider config; false when no key is stored.
	AIConfig(ctx context.Context) (ai.Config, bool)
	VerifyEnabled(ctx context.Context) bool
	GetNetworkSettings(ctx context.Context) (*NetworkSettings, error)
	SetNetworkSettings(ctx context.Context, settings *NetworkSettings) error
	TestProxy(ctx context.Context, settings *NetworkSettings) error
	GetProxyURL(ctx context.Context) string
	GetIPStack(ctx context.Context) string
}

type settingsService struct {
	repo        repository.SettingsRepository
	rateLimiter *ai.RateLimiter
}

func NewSettingsService(repo repository.SettingsRepository, rateLimiter *ai.RateLimiter) SettingsService {
	return &settingsService{repo: repo, rateLimiter: rateLimiter}
}

func (s *settingsService) GetAISettings(ctx context.Context) (*AISettings, error) {
	values, err := s.values(ctx, "ai.")
	if err != nil {
		return nil, err
	}

	settings := &AISettings{
		Provider:        orDefault(values[keyAIProvider], ai.ProviderOpenAI),
		APIKey:          maskAPIKey(values[keyAIAPIKey]),
		BaseURL:         values[keyAIBaseURL],
		Model:           values[keyAIModel],
		Endpoint:        orDefault(values[keyAIEndpoint], defaultEndpoint),
		Thinking:        values[keyAIThinking] == "true",
		ReasoningEffort: orDefault(values[keyAIReasoningEffort], defaultReasoningEffort),
		MaxTokens:       atoiOr(values[keyAIMaxTokens], defaultMaxTokens),
		Verify:          values[keyAIVerify] == "true",
		RateLimit:       atoiOr(values[keyAIRateLimit], ai.DefaultRateLimit),
	}
	return settings, nil
}

func (s *settingsService) SetAISettings(ctx context.Context, settings *AISettings) error {
	if settings == nil {
		return ErrInvalid
	}
	provider := orDefault(strings.TrimSpace(settings.Provider), ai.ProviderOpenAI)
	if !ai.IsValidProvider(provider) {
		return ai.ErrInvalidProvider
	}
	rateLimit := settings.RateLimit
	if rateLimit <= 0 {
		rateLimit = ai.DefaultRateLimit
	}
	maxTokens := settings.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	pairs := [][2]string{
		{keyAIProvider, provider},
		{keyAIBaseURL, strings.TrimSpace(settings.BaseURL)},
		{keyAIModel, strings.TrimSpace(settings.Model)},
		{keyAIEndpoint, orDefault(settings.Endpoint, defaultEndpoint)},
		{keyAIThinking, strconv.FormatBool(settings.Thinking)},
		{keyAIReasoningEffort, orDefault(settings.ReasoningEffort, defaultReasoningEffort)},
		{keyAIMaxTokens, strconv.Itoa(maxTokens)},
		{keyAIVerify, strconv.FormatBool(settings.Verify)},
		{keyAIRateLimit, strconv.Itoa(rateLimit)},
	}
	// 掩码值表示沿用已保存的 key
	if !isMaskedKey(settings.APIKey) {
		pairs = append(pairs, [2]string{keyAIAPIKey, strings.TrimSpace(settings.APIKey)})
	}
	if err := s.setAll(ctx, pairs); err != nil {
		return err
	}

	if s.rateLimiter != nil {
		s.rateLimiter.SetLimit(rateLimit)
	}
	logger.Info("ai settings saved", "module", "service", "action", "update", "resource", "settings", "result", "ok", "provider", provider)
	return nil
}

func (s *settingsService) TestAI(ctx context.Context, provider, apiKey, baseURL, model, endpoint string, thinking bool, maxTokens int, reasoningEffort string) (string, error) {
	if isMaskedKey(apiKey) {
		stored, err := s.get(ctx, keyAIAPIKey)
		if err != nil {
			return "", err
		}
		apiKey = stored
	}

	p, err := ai.NewProvider(ai.Config{
		Provider:        provider,
		APIKey:          apiKey,
		BaseURL:         baseURL,
		Model:           model,
		Endpoint:        endpoint,
		Thinking:        thinking,
		ReasoningEffort: reasoningEffort,
		MaxTokens:       int64(maxTokens),
	})
	if err != nil {
		return "", err
	}
	reply, err := p.Test(ctx)
	if err != nil {
		logger.Warn("ai test failed", "module", "service", "action", "test", "resource", "settings", "result", "failed", "provider", p.Name(), "error", err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return reply, nil
}

func (s *settingsService) AIConfig(ctx context.Context) (ai.Config, bool) {
	values, err := s.values(ctx, "ai.")
	if err != nil {
		logger.Warn("load ai settings failed", "module", "service", "action", "fetch", "resource", "settings", "result", "failed", "error", err)
		return ai.Config{}, false
	}
	if values[keyAIAPIKey] == "" || values[keyAIModel] == "" {
		return ai.Config{}, false
	}
	return ai.Config{
		Provider:        orDefault(values[keyAIProvider], ai.ProviderOpenAI),
		APIKey:          values[keyAIAPIKey],
		BaseURL:         values[keyAIBaseURL],
		Model:           values[keyAIModel],
		Endpoint:        orDefault(values[keyAIEndpoint], defaultEndpoint),
		Thinking:        values[keyAIThinking] == "true",
		ReasoningEffort: orDefault(values[keyAIReasoningEffort], defaultReasoningEffort),
		MaxTokens:       int64(atoiOr(values[keyAIMaxTokens], defaultMaxTokens)),
	}, true
}

func (s *settingsService) VerifyEnabled(ctx context.Context) bool {
	v, err := s.get(ctx, keyAIVerify)
	return err == nil && v == "true"
}

func (s *settingsService) GetNetworkSettings(ctx context.Context) (*NetworkSettings, error) {
	values, err := s.values(ctx, "network.")
	if err != nil {
		return nil, err
	}
	return &NetworkSettings{
		Enabled:  values[keyNetworkEnabled] == "true",
		Type:     orDefault(values[keyNetworkType], "http"),
		Host:     values[keyNetworkHost],
		Port:     atoiOr(values[keyNetworkPort], 0),
		Username: values[keyNetworkUsername],
		Password: maskAPIKey(values[keyNetworkPassword]),
		IPStack:  orDefault(values[keyNetworkIPStack], network.IPStackDefault),
	}, nil
}

func (s *settingsService) SetNetworkSettings(ctx context.Context, settings *NetworkSettings) error {
	if settings == nil {
		return ErrInvalid
	}
	proxyType := orDefault(strings.ToLower(strings.TrimSpace(settings.Type)), "http")
	switch proxyType {
	case "http", "https", "socks5":
	default:
		return fmt.Errorf("%w: proxy type %q", ErrInvalid, settings.Type)
	}
	if settings.Port < 0 || settings.Port > 65535 {
		return fmt.Errorf("%w: proxy port %d", ErrInvalid, settings.Port)
	}
	ipStack := orDefault(settings.IPStack, network.IPStackDefault)
	switch ipStack {
	case network.IPStackDefault, network.IPStackIPv4, network.IPStackIPv6:
	default:
		return fmt.Errorf("%w: ip stack %q", ErrInvalid, settings.IPStack)
	}

	pairs := [][2]string{
		{keyNetworkEnabled, strconv.FormatBool(settings.Enabled)},
		{keyNetworkType, proxyType},
		{keyNetworkHost, strings.TrimSpace(settings.Host)},
		{keyNetworkPort, strconv.Itoa(settings.Port)},
		{keyNetworkUsername, strings.TrimSpace(settings.Username)},
		{keyNetworkIPStack, ipStack},
	}
	if !isMaskedKey(settings.Password) {
		pairs = append(pairs, [2]string{keyNetworkPassword, settings.Password})
	}
	if err := s.setAll(ctx, pairs); err != nil {
		return err
	}
	logger.Info("network settings saved", "module", "service", "action", "update", "resource", "settings", "result", "ok", "proxy_enabled", settings.Enabled)
	return nil
}

func (s *settingsService) TestProxy(ctx context.Context, settings *NetworkSettings) error {
	if settings == nil || strings.TrimSpace(settings.Host) == "" || settings.Port <= 0 {
		return fmt.Errorf("%w: proxy host and port are required", ErrInvalid)
	}
	password := settings.Password
	if isMaskedKey(password) {
		stored, err := s.get(ctx, keyNetworkPassword)
		if err != nil {
			return err
		}
		password = stored
	}
	proxyURL := buildProxyURL(orDefault(settings.Type, "http"), settings.Host, settings.Port, settings.Username, password)
	if err := network.NewClientFactory(nil, s).TestProxyWithConfig(ctx, proxyURL, proxyProbeURL); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}

func (s *settingsService) GetProxyURL(ctx context.Context) string {
	values, err := s.values(ctx, "network.")
	if err != nil || values[keyNetworkEnabled] != "true" {
		return ""
	}
	host := values[keyNetworkHost]
	port := atoiOr(values[keyNetworkPort], 0)
	if host == "" || port <= 0 {
		return ""
	}
	return buildProxyURL(orDefault(values[keyNetworkType], "http"), host, port, values[keyNetworkUsername], values[keyNetworkPassword])
}

func (s *settingsService) GetIPStack(ctx context.Context) string {
	v, err := s.get(ctx, keyNetworkIPStack)
	if err != nil || v == "" {
		return network.IPStackDefault
	}
	return v
}

func buildProxyURL(scheme, host string, port int, username, password string) string {
	u := url.URL{Scheme: scheme, Host: net.JoinHostPort(host, strconv.Itoa(port))}
	switch {
	case username != "" && password != "":
		u.User = url.UserPassword(username, password)
	case username != "":
		u.User = url.User(username)
	}
	return u.String()
}

func (s *settingsService) values(ctx context.Context, prefix string) (map[string]string, error) {
	rows, err := s.repo.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("get settings %s*: %w", prefix, err)
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

func (s *settingsService) get(ctx context.Context, key string) (string, error) {
	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	if setting == nil {
		return "", nil
	}
	return setting.Value, nil
}

func (s *settingsService) setAll(ctx context.Context, pairs [][2]string) error {
	var errs []error
	for _, kv := range pairs {
		if err := s.repo.Set(ctx, kv[0], kv[1]); err != nil {
			errs = append(errs, fmt.Errorf("save %s: %w", kv[0], err))
		}
	}
	return errors.Join(errs...)
}

func maskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return maskedValue
	}
	return key[:3] + maskedValue + key[len(key)-4:]
}

func isMaskedKey(key string) bool {
	return strings.Contains(key, maskedValue)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func atoiOr(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
