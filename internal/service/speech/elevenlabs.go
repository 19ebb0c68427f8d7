package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"safelink/backend/pkg/network"
)

const (
	elevenLabsBaseURL = "https://api.elevenlabs.io"
	elevenLabsModel   = "eleven_multilingual_v2"
	elevenLabsTimeout = 20 * time.Second
	maxAudioBytes     = 10 << 20
)

// Multilingual voices that detect the text language on their own.
var elevenLabsVoices = map[string]string{
	GenderFemale: "EXAVITQu4vr4xnSDxMaL",
	GenderMale:   "onwK4e9ZLuTAKqWW03F9",
}

func ElevenLabsVoice(gender string) string {
	return elevenLabsVoices[NormalizeGender(gender)]
}

type ElevenLabs struct {
	apiKey  string
	baseURL string
	clients *network.ClientFactory
}

// NewElevenLabs returns a synthesizer for the ElevenLabs REST API. An empty
// baseURL means the public endpoint.
func NewElevenLabs(apiKey, baseURL string, clients *network.ClientFactory) *ElevenLabs {
	if baseURL == "" {
		baseURL = elevenLabsBaseURL
	}
	if clients == nil {
		clients = network.NewClientFactory(nil, nil)
	}
	return &ElevenLabs{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		clients: clients,
	}
}

func (e *ElevenLabs) Name() string {
	return SourceElevenLabs
}

type elevenLabsRequest struct {
	Text          string                  `json:"text"`
	ModelID       string                  `json:"model_id"`
	VoiceSettings elevenLabsVoiceSettings `json:"voice_settings"`
}

type elevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

func (e *ElevenLabs) Synthesize(ctx context.Context, text, langCode, gender string) (*Result, error) {
	body, err := json.Marshal(elevenLabsRequest{
		Text:    text,
		ModelID: elevenLabsModel,
		VoiceSettings: elevenLabsVoiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := e.baseURL + "/v1/text-to-speech/" + ElevenLabsVoice(gender)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", e.apiKey)

	resp, err := e.clients.NewHTTPClient(ctx, elevenLabsTimeout).Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("elevenlabs status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, ErrNoAudio
	}
	return &Result{Audio: audio, MimeType: "audio/mpeg", Source: SourceElevenLabs}, nil
}
