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

// TBMRepository stores toolbox meeting sessions and their signatures.
type TBMRepository interface {
	StartSession(ctx context.Context, instruction, standardText string, detected []string) (*model.TBMSession, int64, error)
	GetSession(ctx context.Context, id int64) (*model.TBMSession, error)
	GetActive(ctx context.Context) (*model.TBMSession, error)
	CloseSession(ctx context.Context, id int64) error
	AddSignature(ctx context.Context, sessionID int64, workerName, workerLanguage, receipt string) (*model.TBMSignature, error)
	ListSignatures(ctx context.Context, sessionID int64) ([]model.TBMSignature, error)
}

type tbmRepository struct {
	db *sql.DB
}

func NewTBMRepository(db *sql.DB) TBMRepository {
	return &tbmRepository{db: db}
}

const tbmSessionColumns = `id, instruction, standard_text, detected_terms, status, created_at, closed_at`

// StartSession closes any active session and inserts a new active one in a
// single transaction. It reports how many sessions were closed and returns
// ErrDuplicate when another active session won the race.
func (r *tbmRepository) StartSession(ctx context.Context, instruction, standardText string, detected []string) (*model.TBMSession, int64, error) {
	if detected == nil {
		detected = []string{}
	}
	encoded, err := encodeJSON(detected)
	if err != nil {
		return nil, 0, fmt.Errorf("encode detected terms: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		UPDATE tbm_sessions SET status = ?, closed_at = ? WHERE status = ?
	`, model.TBMStatusClosed, formatTime(time.Now()), model.TBMStatusActive)
	if err != nil {
		return nil, 0, fmt.Errorf("close active: %w", err)
	}
	closed, err := result.RowsAffected()
	if err != nil {
		return nil, 0, err
	}

	session := model.TBMSession{
		ID:            snowflake.NextID(),
		Instruction:   instruction,
		StandardText:  standardText,
		DetectedTerms: detected,
		Status:        model.TBMStatusActive,
		CreatedAt:     time.Now().UTC(),
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO tbm_sessions (id, instruction, standard_text, detected_terms, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, session.ID, instruction, standardText, encoded, session.Status, formatTime(session.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, 0, ErrDuplicate
		}
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return nil, 0, ErrDuplicate
		}
		return nil, 0, fmt.Errorf("commit tx: %w", err)
	}
	return &session, closed, nil
}

func (r *tbmRepository) GetSession(ctx context.Context, id int64) (*model.TBMSession, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+tbmSessionColumns+` FROM tbm_sessions WHERE id = ?`, id)
	session, err := scanTBMSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return session, err
}

// GetActive returns the newest active session, or nil.
func (r *tbmRepository) GetActive(ctx context.Context) (*model.TBMSession, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+tbmSessionColumns+` FROM tbm_sessions WHERE status = ? ORDER BY id DESC LIMIT 1
	`, model.TBMStatusActive)
	session, err := scanTBMSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return session, err
}

func (r *tbmRepository) CloseSession(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE tbm_sessions SET status = ?, closed_at = ? WHERE id = ? AND status = ?
	`, model.TBMStatusClosed, formatTime(time.Now()), id, model.TBMStatusActive)
	if err != nil {
		return err
	}
	return rowsAffectedOrNoRows(result)
}

// AddSignature returns ErrDuplicate when the worker already signed the session.
func (r *tbmRepository) AddSignature(ctx context.Context, sessionID int64, workerName, workerLanguage, receipt string) (*model.TBMSignature, error) {
	sig := model.TBMSignature{
		ID:             snowflake.NextID(),
		SessionID:      sessionID,
		WorkerName:     workerName,
		WorkerLanguage: workerLanguage,
		Receipt:        receipt,
		SignedAt:       time.Now().UTC(),
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tbm_signatures (id, session_id, worker_name, worker_language, receipt, signed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sig.ID, sessionID, workerName, workerLanguage, receipt, formatTime(sig.SignedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &sig, nil
}

func (r *tbmRepository) ListSignatures(ctx context.Context, sessionID int64) ([]model.TBMSignature, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, worker_name, worker_language, receipt, signed_at
		FROM tbm_signatures WHERE session_id = ? ORDER BY id
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sigs []model.TBMSignature
	for rows.Next() {
		var sig model.TBMSignature
		var signedAt string
		if err := rows.Scan(&sig.ID, &sig.SessionID, &sig.WorkerName, &sig.WorkerLanguage, &sig.Receipt, &signedAt); err != nil {
			return nil, err
		}
		sig.SignedAt, _ = parseTime(signedAt)
		sigs = append(sigs, sig)
	}
	return sigs, rows.Err()
}

func scanTBMSession(row rowScanner) (*model.TBMSession, error) {
	var (
		session   model.TBMSession
		detected  string
		createdAt string
		closedAt  sql.NullString
	)
	if err := row.Scan(&session.ID, &session.Instruction, &session.StandardText, &detected,
		&session.Status, &createdAt, &closedAt); err != nil {
		return nil, err
	}
	session.DetectedTerms = []string{}
	if err := decodeJSON(detected, &session.DetectedTerms); err != nil {
		return nil, fmt.Errorf("decode detected terms: %w", err)
	}
	session.CreatedAt, _ = parseTime(createdAt)
	session.ClosedAt = parseNullTime(closedAt)
	return &session, nil
}
