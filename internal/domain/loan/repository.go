package loan

import "context"

// Repository is the loans identity store: at most one loan per mobile
// number, looked up either by owner (mobile number) or by the generated
// loan number.
type Repository interface {
	ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error)

	// Save inserts when LoanID is zero and updates otherwise.
	Save(ctx context.Context, l *Loan) error

	FindByMobileNumber(ctx context.Context, mobileNumber string) (*Loan, error)

	FindByLoanNumber(ctx context.Context, loanNumber string) (*Loan, error)

	Delete(ctx context.Context, loanID int64) error
}
