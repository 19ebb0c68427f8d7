package speech

import (
	"context"

	"google.golang.org/genai"

	"safelink/backend/internal/service/ai"
)

const (
	geminiTTSModel      = "gemini-2.5-flash-preview-tts"
	geminiTTSSampleRate = 24000
)

type voicePair struct {
	female string
	male   string
}

var geminiVoices = map[string]voicePair{
	"vi-VN": {"Zephyr", "Fenrir"},
	"th-TH": {"Zephyr", "Fenrir"},
	"ko-KR": {"Kore", "Puck"},
	"en-US": {"Zephyr", "Puck"},
	"zh-CN": {"Aoede", "Fenrir"},
	"ru-RU": {"Aoede", "Charon"},
}

var defaultGeminiVoice = voicePair{"Zephyr", "Fenrir"}

// GeminiVoice picks the prebuilt voice for a language code.
func GeminiVoice(langCode, gender string) string {
	v, ok := geminiVoices[langCode]
	if !ok {
		v = defaultGeminiVoice
	}
	if NormalizeGender(gender) == GenderMale {
		return v.male
	}
	return v.female
}

type GeminiTTS struct {
	client *genai.Client
}

func NewGeminiTTS(ctx context.Context, apiKey, baseURL string) (*GeminiTTS, error) {
	if apiKey == "" {
		return nil, ai.ErrMissingAPIKey
	}
	client, err := ai.NewGeminiClient(ctx, apiKey, baseURL)
	if err != nil {
		return nil, err
	}
	return &GeminiTTS{client: client}, nil
}

func (g *GeminiTTS) Name() string {
	return SourceGemini
}

func (g *GeminiTTS) Synthesize(ctx context.Context, text, langCode, gender string) (*Result, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: GeminiVoice(langCode, gender),
				},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, geminiTTSModel, genai.Text(text), cfg)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrNoAudio
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return &Result{
				Audio:      part.InlineData.Data,
				MimeType:   "audio/L16",
				SampleRate: geminiTTSSampleRate,
				Source:     SourceGemini,
			}, nil
		}
	}
	return nil, ErrNoAudio
}
