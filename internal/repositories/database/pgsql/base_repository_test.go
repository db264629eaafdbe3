package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// finishTx is a pgx.Tx whose Commit and Rollback return canned errors.
type finishTx struct {
	pgx.Tx
	commitErr   error
	rollbackErr error
}

func (t finishTx) Commit(context.Context) error   { return t.commitErr }
func (t finishTx) Rollback(context.Context) error { return t.rollbackErr }

func TestBaseRepository_CommitMapsConflicts(t *testing.T) {
	repo := &BaseRepository{}
	ctx := context.Background()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"serialization failure", &pgconn.PgError{Code: pgSerializationFailure}, http.StatusConflict},
		{"deadlock", fmt.Errorf("commit: %w", &pgconn.PgError{Code: pgDeadlockDetected}), http.StatusConflict},
		{"unique violation", &pgconn.PgError{Code: "23505"}, http.StatusInternalServerError},
		{"connection lost", errors.New("conn closed"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Commit(ctx, finishTx{commitErr: tt.err})
			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.want, appErr.Code)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	assert.NoError(t, repo.Commit(ctx, finishTx{}))
}

func TestBaseRepository_RollbackIgnoresClosedTx(t *testing.T) {
	repo := &BaseRepository{}
	ctx := context.Background()

	assert.NoError(t, repo.Rollback(ctx, finishTx{rollbackErr: pgx.ErrTxClosed}))
	assert.NoError(t, repo.Rollback(ctx, finishTx{}))

	err := repo.Rollback(ctx, finishTx{rollbackErr: errors.New("conn closed")})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
}
