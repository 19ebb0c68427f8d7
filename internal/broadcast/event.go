// Package broadcast pushes manager instructions to connected workers and
// worker alerts to connected managers over WebSocket.
package broadcast

import (
	"encoding/json"
	"time"

	"safelink/backend/internal/glossary"
)

type Role string

const (
	RoleWorker  Role = "worker"
	RoleManager Role = "manager"
)

// Event types.
const (
	EventInstruction = "instruction"
	EventTBMStarted  = "tbm_started"
	EventTBMClosed   = "tbm_closed"
	EventTBMSigned   = "tbm_signed"
	EventUrgent      = "urgent"
	EventWorkerMsg   = "worker_message"
	EventHello       = "hello"
)

// Event is what services publish. Translations is keyed by language key
// ("vi", "uz", ...). Target restricts delivery to one role; empty means
// everyone.
type Event struct {
	Type         string            `json:"type"`
	ID           string            `json:"id,omitempty"`
	Target       Role              `json:"target,omitempty"`
	StandardText string            `json:"standardText,omitempty"`
	Translations map[string]string `json:"translations,omitempty"`
	Approximate  map[string]bool   `json:"approximate,omitempty"`
	Payload      json.RawMessage   `json:"payload,omitempty"`
	Origin       string            `json:"origin,omitempty"`
	SentAt       time.Time         `json:"sentAt"`
}

// Frame is what one client receives.
type Frame struct {
	Type         string          `json:"type"`
	ID           string          `json:"id,omitempty"`
	Text         string          `json:"text,omitempty"`
	StandardText string          `json:"standardText,omitempty"`
	Lang         string          `json:"lang,omitempty"`
	Approximate  bool            `json:"approximate,omitempty"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	SentAt       time.Time       `json:"sentAt"`
}

// frameFor renders ev for a client. Workers get the text in their language,
// then English, then the Korean standard text; managers get Korean.
func frameFor(ev Event, role Role, lang string) Frame {
	f := Frame{
		Type:         ev.Type,
		ID:           ev.ID,
		StandardText: ev.StandardText,
		Payload:      ev.Payload,
		SentAt:       ev.SentAt,
	}
	if role == RoleManager {
		f.Text = ev.StandardText
		f.Lang = glossary.Korean.Key
		return f
	}

	key := glossary.LanguageKey(lang)
	switch {
	case ev.Translations[key] != "":
		f.Text = ev.Translations[key]
		f.Lang = key
	case ev.Translations[glossary.DefaultLanguage] != "":
		f.Text = ev.Translations[glossary.DefaultLanguage]
		f.Lang = glossary.DefaultLanguage
	default:
		f.Text = ev.StandardText
		f.Lang = glossary.Korean.Key
	}
	f.Approximate = ev.Approximate[f.Lang]
	return f
}

func (ev Event) reaches(role Role) bool {
	return ev.Target == "" || ev.Target == role
}
