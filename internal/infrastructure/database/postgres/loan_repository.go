package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"natrix-bank/internal/domain/loan"
	"natrix-bank/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

type LoanRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ loan.Repository = (*LoanRepository)(nil)

func NewLoanRepository(db DBPool, logger *slog.Logger) *LoanRepository {
	if db == nil {
		panic("DBPool cannot be nil for LoanRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewLoanRepository, using default stderr handler")
	}
	return &LoanRepository{
		db:     db,
		logger: logger.With("component", "LoanRepository"),
	}
}

func (r *LoanRepository) ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error) {
	r.logger.DebugContext(ctx, "Checking loan existence by mobile number")

	query := `SELECT EXISTS(SELECT 1 FROM loans WHERE mobile_number = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, mobileNumber).Scan(&exists); err != nil {
		r.logger.ErrorContext(ctx, "Failed to check loan existence", slog.Any("error", err))
		return false, fmt.Errorf("%w: failed to check loan existence: %w", apperrors.ErrDatabase, err)
	}
	return exists, nil
}

func (r *LoanRepository) Save(ctx context.Context, l *loan.Loan) error {
	if l == nil {
		return fmt.Errorf("%w: loan cannot be nil", apperrors.ErrInvalidArgument)
	}

	if l.LoanID == 0 {
		return r.createLoan(ctx, l)
	}
	return r.updateLoan(ctx, l)
}

func (r *LoanRepository) createLoan(ctx context.Context, l *loan.Loan) error {
	r.logger.InfoContext(ctx, "Attempting to insert new loan", slog.String("mobileNumber", l.MobileNumber))

	query := `
        INSERT INTO loans (loan_number, mobile_number, loan_type, total_loan, amount_paid, outstanding_amount, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        RETURNING loan_id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		l.LoanNumber,
		l.MobileNumber,
		l.LoanType,
		l.TotalLoan,
		l.AmountPaid,
		l.OutstandingAmount,
	).Scan(
		&l.LoanID,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return translateDBError(err, r.logger)
	}

	r.logger.InfoContext(ctx, "Loan inserted successfully", slog.Int64("loanId", l.LoanID))
	return nil
}

func (r *LoanRepository) updateLoan(ctx context.Context, l *loan.Loan) error {
	r.logger.InfoContext(ctx, "Attempting to update loan", slog.Int64("loanId", l.LoanID))

	query := `
        UPDATE loans
        SET mobile_number = $1,
            loan_type = $2,
            total_loan = $3,
            amount_paid = $4,
            outstanding_amount = $5,
            updated_at = NOW()
        WHERE loan_id = $6`

	cmdTag, err := r.db.Exec(ctx, query,
		l.MobileNumber,
		l.LoanType,
		l.TotalLoan,
		l.AmountPaid,
		l.OutstandingAmount,
		l.LoanID,
	)
	if err != nil {
		return translateDBError(err, r.logger)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, loan likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Loan updated successfully")
	return nil
}

func (r *LoanRepository) FindByMobileNumber(ctx context.Context, mobileNumber string) (*loan.Loan, error) {
	r.logger.DebugContext(ctx, "Attempting to find loan by mobile number")

	query := `
        SELECT loan_id, loan_number, mobile_number, loan_type, total_loan, amount_paid, outstanding_amount, created_at, updated_at
        FROM loans
        WHERE mobile_number = $1`

	return r.scanLoan(ctx, query, mobileNumber)
}

func (r *LoanRepository) FindByLoanNumber(ctx context.Context, loanNumber string) (*loan.Loan, error) {
	r.logger.DebugContext(ctx, "Attempting to find loan by loan number")

	query := `
        SELECT loan_id, loan_number, mobile_number, loan_type, total_loan, amount_paid, outstanding_amount, created_at, updated_at
        FROM loans
        WHERE loan_number = $1`

	return r.scanLoan(ctx, query, loanNumber)
}

func (r *LoanRepository) scanLoan(ctx context.Context, query string, arg any) (*loan.Loan, error) {
	var l loan.Loan
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&l.LoanID,
		&l.LoanNumber,
		&l.MobileNumber,
		&l.LoanType,
		&l.TotalLoan,
		&l.AmountPaid,
		&l.OutstandingAmount,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Loan not found")
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan loan", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get loan: %w", apperrors.ErrDatabase, err)
	}
	return &l, nil
}

func (r *LoanRepository) Delete(ctx context.Context, loanID int64) error {
	r.logger.InfoContext(ctx, "Attempting to delete loan", slog.Int64("loanId", loanID))

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM loans WHERE loan_id = $1`, loanID)
	if err != nil {
		return translateDBError(err, r.logger)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, loan likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Loan deleted successfully")
	return nil
}
