package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"safelink/backend/internal/repository"
	"safelink/backend/internal/repository/testutil"
)

func newSettingsRepo(t *testing.T) (repository.SettingsRepository, func(key, value string)) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return repository.NewSettingsRepository(db), func(key, value string) {
		testutil.SeedSetting(t, db, key, value)
	}
}

func TestSettingsRepository_SetUpserts(t *testing.T) {
	t.Parallel()
	repo, _ := newSettingsRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "ai.verify", "false"))
	first, err := repo.Get(ctx, "ai.verify")
	require.NoError(t, err)
	require.NotNil(t, first)
	require.Equal(t, "false", first.Value)
	require.False(t, first.UpdatedAt.IsZero())

	require.NoError(t, repo.Set(ctx, "ai.verify", "true"))
	second, err := repo.Get(ctx, "ai.verify")
	require.NoError(t, err)
	require.Equal(t, "true", second.Value)
	require.False(t, second.UpdatedAt.Before(first.UpdatedAt))

	all, err := repo.GetByPrefix(ctx, "ai.")
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestSettingsRepository_GetMissing(t *testing.T) {
	t.Parallel()
	repo, _ := newSettingsRepo(t)

	setting, err := repo.Get(context.Background(), "network.host")
	require.NoError(t, err)
	require.Nil(t, setting)
}

func TestSettingsRepository_GetByPrefix(t *testing.T) {
	t.Parallel()
	repo, seed := newSettingsRepo(t)
	ctx := context.Background()

	seed("ai.provider", "gemini")
	seed("ai.model", "gemini-2.5-flash")
	seed("ai_legacy", "x")
	seed("network.enabled", "true")
	seed("user.username", "manager")

	got, err := repo.GetByPrefix(ctx, "ai.")
	require.NoError(t, err)
	keys := make([]string, 0, len(got))
	for _, s := range got {
		keys = append(keys, s.Key)
	}
	// ordered by key; no LIKE wildcard leaks into the match
	require.Equal(t, []string{"ai.model", "ai.provider"}, keys)

	got, err = repo.GetByPrefix(ctx, "ai_")
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = repo.GetByPrefix(ctx, "tts.")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSettingsRepository_Delete(t *testing.T) {
	t.Parallel()
	repo, seed := newSettingsRepo(t)
	ctx := context.Background()

	seed("network.host", "10.0.0.2")
	require.NoError(t, repo.Delete(ctx, "network.host"))
	setting, err := repo.Get(ctx, "network.host")
	require.NoError(t, err)
	require.Nil(t, setting)

	// deleting a missing key is not an error
	require.NoError(t, repo.Delete(ctx, "network.host"))
}

func TestSettingsRepository_DeleteByPrefix(t *testing.T) {
	t.Parallel()
	repo, seed := newSettingsRepo(t)
	ctx := context.Background()

	seed("user.username", "manager")
	seed("user.email", "m@site.kr")
	seed("ai.model", "gpt-4o")

	deleted, err := repo.DeleteByPrefix(ctx, "user.")
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	remaining, err := repo.GetByPrefix(ctx, "")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, "ai.model", remaining[0].Key)
}
