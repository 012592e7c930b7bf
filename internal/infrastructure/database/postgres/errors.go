package postgres

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"natrix-bank/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const errMsgFormat = "%w: %w"

// translateDBError maps driver-level failures onto the application error
// taxonomy. Unique violations are split by constraint: a duplicate mobile
// number is a business outcome (ErrAlreadyExists), a duplicate generated
// record number is retryable inside provisioning (ErrNumberTaken).
func translateDBError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {

		if pgErr.Code == "23505" {
			contextLogger.Warn("Database unique constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			if strings.Contains(pgErr.ConstraintName, "mobile_number") {
				return fmt.Errorf("%w: %s", apperrors.ErrAlreadyExists, pgErr.ConstraintName)
			}
			return fmt.Errorf("%w: %s", apperrors.ErrNumberTaken, pgErr.ConstraintName)
		}

		contextLogger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
		return fmt.Errorf("%w: db error code %s", apperrors.ErrDatabase, pgErr.Code)
	}

	contextLogger.Error("Generic database error", "error", err)
	return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
}
