package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"safelink/backend/internal/model"
	"safelink/backend/internal/repository"
	"safelink/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestTBMRepository_SessionLifecycle(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewTBMRepository(db)
	ctx := context.Background()

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.Nil(t, active)

	session, closedCount, err := repo.StartSession(ctx, "아시바 해체작업 전 안전 확인하세요", "비계 해체작업 전 안전 확인하세요", []string{"아시바"})
	require.NoError(t, err)
	require.Zero(t, closedCount)
	require.Equal(t, model.TBMStatusActive, session.Status)

	active, err = repo.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	require.Equal(t, session.ID, active.ID)
	require.Equal(t, []string{"아시바"}, active.DetectedTerms)
	require.Nil(t, active.ClosedAt)

	require.NoError(t, repo.CloseSession(ctx, session.ID))
	require.ErrorIs(t, repo.CloseSession(ctx, session.ID), sql.ErrNoRows)

	closed, err := repo.GetSession(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, model.TBMStatusClosed, closed.Status)
	require.NotNil(t, closed.ClosedAt)

	missing, err := repo.GetSession(ctx, 99)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestTBMRepository_StartSessionClosesActive(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewTBMRepository(db)
	ctx := context.Background()

	oldID := testutil.SeedTBMSession(t, db, "a", "")
	testutil.SeedTBMSession(t, db, "b", model.TBMStatusClosed)

	session, closed, err := repo.StartSession(ctx, "c", "c", nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), closed)

	old, err := repo.GetSession(ctx, oldID)
	require.NoError(t, err)
	require.Equal(t, model.TBMStatusClosed, old.Status)

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.Equal(t, session.ID, active.ID)
}

func TestTBMRepository_SecondActiveSessionRejected(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.SeedTBMSession(t, db, "a", "")
	_, err := db.ExecContext(ctx, `
		INSERT INTO tbm_sessions (id, instruction, standard_text, status, created_at)
		VALUES (1, 'b', 'b', 'active', '2025-01-01T00:00:00Z')
	`)
	require.Error(t, err)
}

func TestTBMRepository_Signatures(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := repository.NewTBMRepository(db)
	ctx := context.Background()

	sessionID := testutil.SeedTBMSession(t, db, "안전모 착용", "")

	sig, err := repo.AddSignature(ctx, sessionID, "Bat", "mn", "receipt-1")
	require.NoError(t, err)
	require.Equal(t, "receipt-1", sig.Receipt)

	_, err = repo.AddSignature(ctx, sessionID, "Bat", "mn", "receipt-2")
	require.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = repo.AddSignature(ctx, sessionID, "Nguyen", "vi", "receipt-3")
	require.NoError(t, err)

	sigs, err := repo.ListSignatures(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, sigs, 2)
	require.Equal(t, "Bat", sigs[0].WorkerName)
	require.Equal(t, "Nguyen", sigs[1].WorkerName)

	_, err = repo.AddSignature(ctx, 424242, "Ghost", "en", "receipt-4")
	require.Error(t, err)
}
