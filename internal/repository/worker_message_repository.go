//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"safelink/backend/internal/model"
	"safelink/backend/pkg/snowflake"
)

type WorkerMessageRepository interface {
	Create(ctx context.Context, msg model.WorkerMessage) (*model.WorkerMessage, error)
	GetByID(ctx context.Context, id int64) (*model.WorkerMessage, error)
	ListRecent(ctx context.Context, limit int, unreadOnly bool) ([]model.WorkerMessage, error)
	CountUnread(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) (int64, error)
}

type workerMessageRepository struct {
	db dbtx
}

func NewWorkerMessageRepository(db *sql.DB) WorkerMessageRepository {
	return &workerMessageRepository{db: db}
}

const workerMessageColumns = `id, worker_name, worker_country, worker_language, message, translated, is_urgent, is_read, created_at`

func (r *workerMessageRepository) Create(ctx context.Context, msg model.WorkerMessage) (*model.WorkerMessage, error) {
	msg.ID = snowflake.NextID()
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO worker_messages (`+workerMessageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, msg.ID, msg.WorkerName, nullableString(msg.WorkerCountry), msg.WorkerLanguage, msg.Message,
		msg.Translated, boolToInt(msg.IsUrgent), boolToInt(msg.IsRead), formatTime(msg.CreatedAt))
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *workerMessageRepository) GetByID(ctx context.Context, id int64) (*model.WorkerMessage, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+workerMessageColumns+` FROM worker_messages WHERE id = ?`, id)
	msg, err := scanWorkerMessage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return msg, err
}

// ListRecent returns the newest messages first. Snowflake ids sort by creation time.
func (r *workerMessageRepository) ListRecent(ctx context.Context, limit int, unreadOnly bool) ([]model.WorkerMessage, error) {
	query := `SELECT ` + workerMessageColumns + ` FROM worker_messages`
	if unreadOnly {
		query += ` WHERE is_read = 0`
	}
	query += ` ORDER BY id DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.WorkerMessage
	for rows.Next() {
		msg, err := scanWorkerMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, *msg)
	}
	return messages, rows.Err()
}

func (r *workerMessageRepository) CountUnread(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM worker_messages WHERE is_read = 0`).Scan(&count)
	return count, err
}

func (r *workerMessageRepository) MarkRead(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE worker_messages SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return rowsAffectedOrNoRows(result)
}

func (r *workerMessageRepository) MarkAllRead(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE worker_messages SET is_read = 1 WHERE is_read = 0`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanWorkerMessage(row rowScanner) (*model.WorkerMessage, error) {
	var (
		msg       model.WorkerMessage
		country   sql.NullString
		isUrgent  int
		isRead    int
		createdAt string
	)
	if err := row.Scan(&msg.ID, &msg.WorkerName, &country, &msg.WorkerLanguage, &msg.Message,
		&msg.Translated, &isUrgent, &isRead, &createdAt); err != nil {
		return nil, err
	}
	msg.WorkerCountry = stringPtr(country)
	msg.IsUrgent = isUrgent == 1
	msg.IsRead = isRead == 1
	msg.CreatedAt, _ = parseTime(createdAt)
	return &msg, nil
}
