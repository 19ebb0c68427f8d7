package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"safelink/backend/internal/service/ai"
)

func TestNewProvider_Errors(t *testing.T) {
	_, err := ai.NewProvider(ai.Config{})
	require.ErrorIs(t, err, ai.ErrMissingAPIKey)

	_, err = ai.NewProvider(ai.Config{APIKey: "key"})
	require.ErrorIs(t, err, ai.ErrMissingModel)

	_, err = ai.NewProvider(ai.Config{APIKey: "key", Model: "model", Provider: "unknown"})
	require.ErrorIs(t, err, ai.ErrInvalidProvider)

	_, err = ai.NewProvider(ai.Config{APIKey: "key", Model: "model", Provider: ai.ProviderCompatible})
	require.ErrorIs(t, err, ai.ErrMissingBaseURL)
}

func TestNewProvider_Names(t *testing.T) {
	cases := []struct {
		cfg  ai.Config
		want string
	}{
		{ai.Config{APIKey: "key", Model: "gpt-4"}, ai.ProviderOpenAI},
		{ai.Config{Provider: ai.ProviderOpenAI, APIKey: "key", Model: "gpt-4"}, ai.ProviderOpenAI},
		{ai.Config{Provider: ai.ProviderCompatible, APIKey: "key", Model: "m", BaseURL: "https://example.com"}, ai.ProviderCompatible},
		{ai.Config{Provider: ai.ProviderAnthropic, APIKey: "key", Model: "claude-3"}, ai.ProviderAnthropic},
		{ai.Config{Provider: ai.ProviderGemini, APIKey: "key", Model: "gemini-2.5-flash"}, ai.ProviderGemini},
	}
	for _, tc := range cases {
		provider, err := ai.NewProvider(tc.cfg)
		require.NoError(t, err)
		require.Equal(t, tc.want, provider.Name())
	}
}

func TestIsValidProvider(t *testing.T) {
	require.True(t, ai.IsValidProvider(ai.ProviderGemini))
	require.False(t, ai.IsValidProvider(""))
	require.False(t, ai.IsValidProvider("bard"))
}

func TestLanguageName(t *testing.T) {
	require.Equal(t, "Vietnamese", ai.LanguageName("vi-VN"))
	require.Equal(t, "Mongolian", ai.LanguageName("Mongolia"))
	require.Equal(t, "Korean", ai.LanguageName("ko"))
	require.Equal(t, "xx", ai.LanguageName("xx"))
}
