package postgres

import (
	"context"
	"testing"
	"time"

	"natrix-bank/internal/domain/loan"
	"natrix-bank/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var loanTest = &loan.Loan{
	LoanID:            11,
	MobileNumber:      "+959778899001",
	LoanNumber:        "100998877665",
	LoanType:          loan.DefaultLoanType,
	TotalLoan:         decimal.NewFromInt(loan.NewLoanLimit),
	AmountPaid:        decimal.Zero,
	OutstandingAmount: decimal.NewFromInt(loan.NewLoanLimit),
	CreatedAt:         time.Now(),
	UpdatedAt:         time.Now(),
}

func setupLoanRepo(t *testing.T) (context.Context, *LoanRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	ctx := context.Background()
	repo := NewLoanRepository(mockPool, logger)

	return ctx, repo, mockPool
}

func TestSaveNewLoanWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupLoanRepo(t)
	defer mockPool.Close()

	l := &loan.Loan{
		MobileNumber:      loanTest.MobileNumber,
		LoanNumber:        loanTest.LoanNumber,
		LoanType:          loanTest.LoanType,
		TotalLoan:         loanTest.TotalLoan,
		AmountPaid:        loanTest.AmountPaid,
		OutstandingAmount: loanTest.OutstandingAmount,
	}

	mockPool.ExpectQuery("INSERT INTO loans").WithArgs(
		l.LoanNumber,
		l.MobileNumber,
		l.LoanType,
		l.TotalLoan,
		l.AmountPaid,
		l.OutstandingAmount,
	).WillReturnRows(pgxmock.NewRows([]string{"loan_id", "created_at", "updated_at"}).
		AddRow(loanTest.LoanID, loanTest.CreatedAt, loanTest.UpdatedAt))

	err := repo.Save(ctx, l)
	assert.NoError(t, err)
	assert.Equal(t, loanTest.LoanID, l.LoanID)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveNewLoanWhenLoanNumberCollision(t *testing.T) {
	ctx, repo, mockPool := setupLoanRepo(t)
	defer mockPool.Close()

	l := &loan.Loan{
		MobileNumber:      loanTest.MobileNumber,
		LoanNumber:        loanTest.LoanNumber,
		LoanType:          loanTest.LoanType,
		TotalLoan:         loanTest.TotalLoan,
		AmountPaid:        loanTest.AmountPaid,
		OutstandingAmount: loanTest.OutstandingAmount,
	}

	mockPool.ExpectQuery("INSERT INTO loans").WithArgs(
		l.LoanNumber,
		l.MobileNumber,
		l.LoanType,
		l.TotalLoan,
		l.AmountPaid,
		l.OutstandingAmount,
	).WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "loans_loan_number_key"})

	err := repo.Save(ctx, l)
	assert.ErrorIs(t, err, apperrors.ErrNumberTaken)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveExistingLoanWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupLoanRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec("UPDATE loans").WithArgs(
		loanTest.MobileNumber,
		loanTest.LoanType,
		loanTest.TotalLoan,
		loanTest.AmountPaid,
		loanTest.OutstandingAmount,
		loanTest.LoanID,
	).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Save(ctx, loanTest)
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindLoanByMobileNumberWhenFound(t *testing.T) {
	ctx, repo, mockPool := setupLoanRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT (.+) FROM loans").WithArgs(loanTest.MobileNumber).
		WillReturnRows(pgxmock.NewRows([]string{"loan_id", "loan_number", "mobile_number", "loan_type", "total_loan", "amount_paid", "outstanding_amount", "created_at", "updated_at"}).
			AddRow(loanTest.LoanID, loanTest.LoanNumber, loanTest.MobileNumber, loanTest.LoanType,
				loanTest.TotalLoan, loanTest.AmountPaid, loanTest.OutstandingAmount,
				loanTest.CreatedAt, loanTest.UpdatedAt))

	l, err := repo.FindByMobileNumber(ctx, loanTest.MobileNumber)
	assert.NoError(t, err)
	assert.Equal(t, loanTest.LoanNumber, l.LoanNumber)
	assert.True(t, l.OutstandingAmount.Equal(loanTest.OutstandingAmount))
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindLoanByLoanNumberWhenNotFound(t *testing.T) {
	ctx, repo, mockPool := setupLoanRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT (.+) FROM loans").WithArgs(loanTest.LoanNumber).
		WillReturnError(pgx.ErrNoRows)

	l, err := repo.FindByLoanNumber(ctx, loanTest.LoanNumber)
	assert.Nil(t, l)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestDeleteLoanWhenNotFound(t *testing.T) {
	ctx, repo, mockPool := setupLoanRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec("DELETE FROM loans").WithArgs(loanTest.LoanID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(ctx, loanTest.LoanID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}
