package model

import "time"

// TranslationCache stores one remote translation result.
type TranslationCache struct {
	ID        int64
	CacheKey  string
	Language  string
	Source    string
	Content   string
	CreatedAt time.Time
}

const (
	RoleManager = "manager"
	RoleWorker  = "worker"
)

// ChatTurn is one rendered utterance in a manager/worker conversation.
type ChatTurn struct {
	Role         string
	Original     string
	Standardized string
	Detected     []string
	Translated   string
	Lang         string
	Approximate  bool
	Timestamp    time.Time
}
