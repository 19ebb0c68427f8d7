package service

import (
	"errors"

	"safelink/backend/internal/glossary"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalid      = errors.New("invalid")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUpstream     = errors.New("upstream failed")
)

// TermConflictError is returned when a slang already exists in the merged
// glossary. It matches ErrConflict.
type TermConflictError struct {
	Existing glossary.Entry
	Builtin  bool
}

func (e *TermConflictError) Error() string {
	return "term already exists"
}

func (e *TermConflictError) Is(target error) bool {
	return target == ErrConflict
}
