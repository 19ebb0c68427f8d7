package service_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"safelink/backend/internal/glossary"
	"safelink/backend/internal/service"
)

func TestTermConflictError_Error(t *testing.T) {
	err := &service.TermConflictError{Existing: glossary.Entry{Slang: "아시바", Standard: "비계"}}
	require.Equal(t, "term already exists", err.Error())
}

func TestTermConflictError_Is(t *testing.T) {
	err := &service.TermConflictError{Existing: glossary.Entry{Slang: "아시바"}}

	require.True(t, errors.Is(err, service.ErrConflict))
	require.True(t, errors.Is(fmt.Errorf("add term: %w", err), service.ErrConflict))

	require.False(t, errors.Is(err, service.ErrNotFound))
	require.False(t, errors.Is(err, service.ErrInvalid))
	require.False(t, errors.Is(err, service.ErrUpstream))
}

func TestTermConflictError_As(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &service.TermConflictError{
		Existing: glossary.Entry{Slang: "공구리", Standard: "콘크리트 (Concrete)"},
		Builtin:  true,
	})

	var conflictErr *service.TermConflictError
	require.True(t, errors.As(err, &conflictErr))
	require.Equal(t, "공구리", conflictErr.Existing.Slang)
	require.True(t, conflictErr.Builtin)
}
