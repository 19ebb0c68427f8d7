package model

import "time"

type BulletinSource struct {
	ID           int64
	Title        string
	URL          string
	ETag         *string
	LastModified *string
	ErrorMessage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Bulletin struct {
	ID          int64
	SourceID    int64
	Hash        string
	Title       string
	URL         *string
	Summary     *string
	PublishedAt *time.Time
	CreatedAt   time.Time
}
