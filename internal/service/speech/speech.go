// Package speech turns short site instructions into audio with remote TTS
// engines. Callers chain several synthesizers and fall back to browser
// speech when none answers.
package speech

import (
	"context"
	"errors"
)

const (
	SourceElevenLabs = "elevenlabs"
	SourceGemini     = "gemini"
	SourceBrowser    = "browser"

	GenderFemale = "female"
	GenderMale   = "male"
)

var ErrNoAudio = errors.New("no audio in response")

// Result is raw audio plus enough metadata for the client to play it.
// SampleRate is set for PCM output only.
type Result struct {
	Audio      []byte
	MimeType   string
	SampleRate int
	Source     string
}

type Synthesizer interface {
	Name() string
	Synthesize(ctx context.Context, text, langCode, gender string) (*Result, error)
}

// NormalizeGender maps anything but "male" to female.
func NormalizeGender(gender string) string {
	if gender == GenderMale {
		return GenderMale
	}
	return GenderFemale
}
