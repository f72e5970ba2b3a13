package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidTextRepr     = "22P02"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// pgErrorCode returns the SQLSTATE of err, or "" when err did not come from Postgres.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translateWriteError maps constraint violations onto the apperrors sentinels.
// Anything else becomes a 500 AppError carrying msg.
func translateWriteError(err error, msg, conflictMsg string) error {
	switch pgErrorCode(err) {
	case pgUniqueViolation:
		return apperrors.NewConflictError(conflictMsg)
	case pgForeignKeyViolation:
		return apperrors.NewValidationError("referenced record does not exist")
	case pgCheckViolation:
		return apperrors.NewValidationError("value out of range")
	case pgInvalidTextRepr:
		return apperrors.NewValidationError("malformed identifier")
	}
	return apperrors.NewAppError(500, msg, err)
}

// translateReadError maps a missing row onto ErrNotFound and a malformed UUID onto ErrValidation.
func translateReadError(err error, msg, notFoundMsg string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(notFoundMsg)
	}
	if pgErrorCode(err) == pgInvalidTextRepr {
		return apperrors.NewValidationError("malformed identifier")
	}
	return apperrors.NewAppError(500, msg, err)
}
