package model

import "time"

// CustomTerm is a user-added glossary entry.
type CustomTerm struct {
	ID           int64
	Slang        string
	Standard     string
	Translations map[string]string
	CreatedAt    time.Time
}

// SuppressedTerm hides a built-in slang from the merged glossary.
type SuppressedTerm struct {
	Slang     string
	CreatedAt time.Time
}
