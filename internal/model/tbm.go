package model

import "time"

const (
	TBMStatusActive = "active"
	TBMStatusClosed = "closed"
)

// TBMSession is one toolbox meeting: a manager instruction workers sign for.
type TBMSession struct {
	ID            int64
	Instruction   string
	StandardText  string
	DetectedTerms []string
	Status        string
	CreatedAt     time.Time
	ClosedAt      *time.Time
}

type TBMSignature struct {
	ID             int64
	SessionID      int64
	WorkerName     string
	WorkerLanguage string
	Receipt        string
	SignedAt       time.Time
}
