package repository_test

import (
	"context"
	"testing"

	"safelink/backend/internal/repository"
	"safelink/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestTranslationCacheRepository(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationCacheRepository(db)
	ctx := context.Background()

	got, err := repo.Get(ctx, "k1")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, repo.Save(ctx, "k1", "vi", "openai", "Giàn giáo"))
	require.NoError(t, repo.Save(ctx, "k1", "vi", "gemini", "Giàn giáo mới"))
	require.NoError(t, repo.Save(ctx, "k2", "en", "gemini", "Scaffolding"))

	got, err = repo.Get(ctx, "k1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "gemini", got.Source)
	require.Equal(t, "Giàn giáo mới", got.Content)
	require.Equal(t, "vi", got.Language)

	deleted, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)
}
