//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"safelink/backend/internal/model"
	"safelink/backend/pkg/snowflake"
)

type SavedMessageRepository interface {
	Create(ctx context.Context, category, originalText, standardText string) (*model.SavedMessage, error)
	GetByID(ctx context.Context, id int64) (*model.SavedMessage, error)
	List(ctx context.Context, category, query string) ([]model.SavedMessage, error)
	Update(ctx context.Context, id int64, category, originalText, standardText string) (*model.SavedMessage, error)
	Delete(ctx context.Context, id int64) error
	IncrementUsage(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type savedMessageRepository struct {
	db dbtx
}

func NewSavedMessageRepository(db *sql.DB) SavedMessageRepository {
	return &savedMessageRepository{db: db}
}

const savedMessageColumns = `id, category, original_text, standard_text, usage_count, created_at, updated_at`

func (r *savedMessageRepository) Create(ctx context.Context, category, originalText, standardText string) (*model.SavedMessage, error) {
	now := time.Now().UTC()
	msg := model.SavedMessage{
		ID:           snowflake.NextID(),
		Category:     category,
		OriginalText: originalText,
		StandardText: standardText,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO saved_messages (`+savedMessageColumns+`) VALUES (?, ?, ?, ?, 0, ?, ?)
	`, msg.ID, category, originalText, standardText, formatTime(now), formatTime(now))
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *savedMessageRepository) GetByID(ctx context.Context, id int64) (*model.SavedMessage, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+savedMessageColumns+` FROM saved_messages WHERE id = ?`, id)
	msg, err := scanSavedMessage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return msg, err
}

// List filters by category when non-empty and by a case-insensitive match on
// either text when query is non-empty. Oldest first.
func (r *savedMessageRepository) List(ctx context.Context, category, query string) ([]model.SavedMessage, error) {
	var (
		conds []string
		args  []interface{}
	)
	if category != "" {
		conds = append(conds, "category = ?")
		args = append(args, category)
	}
	if query != "" {
		conds = append(conds, "(instr(lower(standard_text), ?) > 0 OR instr(lower(original_text), ?) > 0)")
		q := strings.ToLower(query)
		args = append(args, q, q)
	}

	stmt := `SELECT ` + savedMessageColumns + ` FROM saved_messages`
	if len(conds) > 0 {
		stmt += ` WHERE ` + strings.Join(conds, " AND ")
	}
	stmt += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.SavedMessage
	for rows.Next() {
		msg, err := scanSavedMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *msg)
	}
	return messages, rows.Err()
}

func (r *savedMessageRepository) Update(ctx context.Context, id int64, category, originalText, standardText string) (*model.SavedMessage, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE saved_messages SET category = ?, original_text = ?, standard_text = ?, updated_at = ? WHERE id = ?
	`, category, originalText, standardText, formatTime(time.Now()), id)
	if err != nil {
		return nil, err
	}
	if err := rowsAffectedOrNoRows(result); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *savedMessageRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM saved_messages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return rowsAffectedOrNoRows(result)
}

func (r *savedMessageRepository) IncrementUsage(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE saved_messages SET usage_count = usage_count + 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return rowsAffectedOrNoRows(result)
}

func (r *savedMessageRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM saved_messages`).Scan(&count)
	return count, err
}

func scanSavedMessage(row rowScanner) (*model.SavedMessage, error) {
	var msg model.SavedMessage
	var createdAt, updatedAt string
	if err := row.Scan(&msg.ID, &msg.Category, &msg.OriginalText, &msg.StandardText, &msg.UsageCount,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	msg.CreatedAt, _ = parseTime(createdAt)
	msg.UpdatedAt, _ = parseTime(updatedAt)
	return &msg, nil
}
