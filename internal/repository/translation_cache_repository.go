//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"safelink/backend/internal/model"
	"safelink/backend/pkg/snowflake"
)

type TranslationCacheRepository interface {
	Get(ctx context.Context, cacheKey string) (*model.TranslationCache, error)
	Save(ctx context.Context, cacheKey, language, source, content string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type translationCacheRepository struct {
	db dbtx
}

func NewTranslationCacheRepository(db *sql.DB) TranslationCacheRepository {
	return &translationCacheRepository{db: db}
}

func (r *translationCacheRepository) Get(ctx context.Context, cacheKey string) (*model.TranslationCache, error) {
	var t model.TranslationCache
	var createdAt string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, cache_key, language, source, content, created_at FROM translation_cache WHERE cache_key = ?
	`, cacheKey).Scan(&t.ID, &t.CacheKey, &t.Language, &t.Source, &t.Content, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t.CreatedAt, _ = parseTime(createdAt)
	return &t, nil
}

// Save inserts or replaces the cached translation for cacheKey.
func (r *translationCacheRepository) Save(ctx context.Context, cacheKey, language, source, content string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO translation_cache (id, cache_key, language, source, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			source = excluded.source,
			content = excluded.content,
			created_at = excluded.created_at
	`, snowflake.NextID(), cacheKey, language, source, content, formatTime(time.Now()))
	return err
}

func (r *translationCacheRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM translation_cache`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
