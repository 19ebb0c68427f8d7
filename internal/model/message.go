package model

import "time"

type WorkerMessage struct {
	ID             int64
	WorkerName     string
	WorkerCountry  *string
	WorkerLanguage string
	Message        string
	Translated     string
	IsUrgent       bool
	IsRead         bool
	CreatedAt      time.Time
}

const (
	CategorySafety    = "safety"
	CategoryWork      = "work"
	CategoryEmergency = "emergency"
	CategoryGeneral   = "general"
)

// SavedMessage is a reusable broadcast instruction.
type SavedMessage struct {
	ID           int64
	Category     string
	OriginalText string
	StandardText string
	UsageCount   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsValidCategory reports whether c is one of the saved message categories.
func IsValidCategory(c string) bool {
	switch c {
	case CategorySafety, CategoryWork, CategoryEmergency, CategoryGeneral:
		return true
	}
	return false
}
