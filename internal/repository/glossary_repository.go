//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"safelink/backend/internal/model"
	"safelink/backend/pkg/snowflake"
)

// GlossaryRepository stores custom terms and the built-in slangs a user removed.
type GlossaryRepository interface {
	ListCustom(ctx context.Context) ([]model.CustomTerm, error)
	GetCustom(ctx context.Context, slang string) (*model.CustomTerm, error)
	CreateCustom(ctx context.Context, slang, standard string, translations map[string]string) (*model.CustomTerm, error)
	DeleteCustom(ctx context.Context, slang string) error
	ListSuppressed(ctx context.Context) ([]string, error)
	Suppress(ctx context.Context, slang string) error
}

type glossaryRepository struct {
	db *sql.DB
}

func NewGlossaryRepository(db *sql.DB) GlossaryRepository {
	return &glossaryRepository{db: db}
}

// ListCustom returns custom terms in insertion order.
func (r *glossaryRepository) ListCustom(ctx context.Context) ([]model.CustomTerm, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, slang, standard, translations, created_at FROM custom_terms ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []model.CustomTerm
	for rows.Next() {
		term, err := scanCustomTerm(rows)
		if err != nil {
			return nil, err
		}
		terms = append(terms, *term)
	}
	return terms, rows.Err()
}

func (r *glossaryRepository) GetCustom(ctx context.Context, slang string) (*model.CustomTerm, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, slang, standard, translations, created_at FROM custom_terms WHERE slang = ?
	`, slang)
	term, err := scanCustomTerm(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return term, err
}

// CreateCustom returns ErrDuplicate when the slang is already stored. A
// suppression on the same slang is lifted in the same transaction, so a failed
// insert leaves it in place.
func (r *glossaryRepository) CreateCustom(ctx context.Context, slang, standard string, translations map[string]string) (*model.CustomTerm, error) {
	if translations == nil {
		translations = map[string]string{}
	}
	encoded, err := encodeJSON(translations)
	if err != nil {
		return nil, fmt.Errorf("encode translations: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id := snowflake.NextID()
	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO custom_terms (id, slang, standard, translations, created_at) VALUES (?, ?, ?, ?, ?)
	`, id, slang, standard, encoded, formatTime(now))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM suppressed_terms WHERE slang = ?`, slang); err != nil {
		return nil, fmt.Errorf("lift suppression: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &model.CustomTerm{
		ID:           id,
		Slang:        slang,
		Standard:     standard,
		Translations: translations,
		CreatedAt:    now,
	}, nil
}

func (r *glossaryRepository) DeleteCustom(ctx context.Context, slang string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM custom_terms WHERE slang = ?`, slang)
	if err != nil {
		return err
	}
	return rowsAffectedOrNoRows(result)
}

func (r *glossaryRepository) ListSuppressed(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT slang FROM suppressed_terms ORDER BY slang`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slangs []string
	for rows.Next() {
		var slang string
		if err := rows.Scan(&slang); err != nil {
			return nil, err
		}
		slangs = append(slangs, slang)
	}
	return slangs, rows.Err()
}

// Suppress is a no-op when the slang is already suppressed.
func (r *glossaryRepository) Suppress(ctx context.Context, slang string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO suppressed_terms (slang, created_at) VALUES (?, ?) ON CONFLICT(slang) DO NOTHING
	`, slang, formatTime(time.Now()))
	return err
}

func scanCustomTerm(row rowScanner) (*model.CustomTerm, error) {
	var term model.CustomTerm
	var translations, createdAt string
	if err := row.Scan(&term.ID, &term.Slang, &term.Standard, &translations, &createdAt); err != nil {
		return nil, err
	}
	term.Translations = map[string]string{}
	if err := decodeJSON(translations, &term.Translations); err != nil {
		return nil, fmt.Errorf("decode translations: %w", err)
	}
	term.CreatedAt, _ = parseTime(createdAt)
	return &term, nil
}
