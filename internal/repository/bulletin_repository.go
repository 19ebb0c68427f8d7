//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"safelink/backend/internal/model"
	"safelink/backend/pkg/snowflake"
)

// BulletinRepository stores safety bulletin feed sources and their items.
type BulletinRepository interface {
	CreateSource(ctx context.Context, title, url string) (*model.BulletinSource, error)
	GetSource(ctx context.Context, id int64) (*model.BulletinSource, error)
	FindSourceByURL(ctx context.Context, url string) (*model.BulletinSource, error)
	ListSources(ctx context.Context) ([]model.BulletinSource, error)
	DeleteSource(ctx context.Context, id int64) error
	UpdateFetchState(ctx context.Context, id int64, etag, lastModified, errorMessage *string) error
	Exists(ctx context.Context, sourceID int64, hash string) (bool, error)
	Create(ctx context.Context, b model.Bulletin) (*model.Bulletin, error)
	List(ctx context.Context, limit int) ([]model.Bulletin, error)
}

type bulletinRepository struct {
	db dbtx
}

func NewBulletinRepository(db *sql.DB) BulletinRepository {
	return &bulletinRepository{db: db}
}

const bulletinSourceColumns = `id, title, url, etag, last_modified, error_message, created_at, updated_at`

func (r *bulletinRepository) CreateSource(ctx context.Context, title, url string) (*model.BulletinSource, error) {
	now := time.Now().UTC()
	source := model.BulletinSource{
		ID:        snowflake.NextID(),
		Title:     title,
		URL:       url,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bulletin_sources (id, title, url, created_at, updated_at) VALUES (?, ?, ?, ?, ?)
	`, source.ID, title, url, formatTime(now), formatTime(now))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &source, nil
}

func (r *bulletinRepository) GetSource(ctx context.Context, id int64) (*model.BulletinSource, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bulletinSourceColumns+` FROM bulletin_sources WHERE id = ?`, id)
	source, err := scanBulletinSource(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return source, err
}

func (r *bulletinRepository) FindSourceByURL(ctx context.Context, url string) (*model.BulletinSource, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bulletinSourceColumns+` FROM bulletin_sources WHERE url = ?`, url)
	source, err := scanBulletinSource(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return source, err
}

func (r *bulletinRepository) ListSources(ctx context.Context) ([]model.BulletinSource, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+bulletinSourceColumns+` FROM bulletin_sources ORDER BY title, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []model.BulletinSource
	for rows.Next() {
		source, err := scanBulletinSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, *source)
	}
	return sources, rows.Err()
}

func (r *bulletinRepository) DeleteSource(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bulletin_sources WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return rowsAffectedOrNoRows(result)
}

func (r *bulletinRepository) UpdateFetchState(ctx context.Context, id int64, etag, lastModified, errorMessage *string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE bulletin_sources SET etag = ?, last_modified = ?, error_message = ?, updated_at = ? WHERE id = ?
	`, nullableString(etag), nullableString(lastModified), nullableString(errorMessage), formatTime(time.Now()), id)
	if err != nil {
		return err
	}
	return rowsAffectedOrNoRows(result)
}

func (r *bulletinRepository) Exists(ctx context.Context, sourceID int64, hash string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM bulletins WHERE source_id = ? AND hash = ?
	`, sourceID, hash).Scan(&count)
	return count > 0, err
}

func (r *bulletinRepository) Create(ctx context.Context, b model.Bulletin) (*model.Bulletin, error) {
	b.ID = snowflake.NextID()
	b.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bulletins (id, source_id, hash, title, url, summary, published_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.SourceID, b.Hash, b.Title, nullableString(b.URL), nullableString(b.Summary),
		nullableTime(b.PublishedAt), formatTime(b.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &b, nil
}

// List returns the newest bulletins first, by publish time when known.
func (r *bulletinRepository) List(ctx context.Context, limit int) ([]model.Bulletin, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, source_id, hash, title, url, summary, published_at, created_at
		FROM bulletins
		ORDER BY COALESCE(published_at, created_at) DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bulletins []model.Bulletin
	for rows.Next() {
		var (
			b         model.Bulletin
			url       sql.NullString
			summary   sql.NullString
			published sql.NullString
			createdAt string
		)
		if err := rows.Scan(&b.ID, &b.SourceID, &b.Hash, &b.Title, &url, &summary, &published, &createdAt); err != nil {
			return nil, err
		}
		b.URL = stringPtr(url)
		b.Summary = stringPtr(summary)
		b.PublishedAt = parseNullTime(published)
		b.CreatedAt, _ = parseTime(createdAt)
		bulletins = append(bulletins, b)
	}
	return bulletins, rows.Err()
}

func scanBulletinSource(row rowScanner) (*model.BulletinSource, error) {
	var (
		source       model.BulletinSource
		etag         sql.NullString
		lastModified sql.NullString
		errorMessage sql.NullString
		createdAt    string
		updatedAt    string
	)
	if err := row.Scan(&source.ID, &source.Title, &source.URL, &etag, &lastModified, &errorMessage,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	source.ETag = stringPtr(etag)
	source.LastModified = stringPtr(lastModified)
	source.ErrorMessage = stringPtr(errorMessage)
	source.CreatedAt, _ = parseTime(createdAt)
	source.UpdatedAt, _ = parseTime(updatedAt)
	return &source, nil
}
