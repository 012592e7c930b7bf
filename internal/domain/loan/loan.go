package loan

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultLoanType = "Home Loan"
	NewLoanLimit    = 100_000

	loanNumberBase = 100_000_000_000
	loanNumberSpan = 900_000_000_000
)

type Loan struct {
	LoanID            int64           `json:"loanId"`
	LoanNumber        string          `json:"loanNumber"`
	MobileNumber      string          `json:"mobileNumber"`
	LoanType          string          `json:"loanType"`
	TotalLoan         decimal.Decimal `json:"totalLoan"`
	AmountPaid        decimal.Decimal `json:"amountPaid"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// NewLoan fabricates a home loan for a first-time acquisition with the
// whole principal outstanding.
func NewLoan(mobileNumber string) *Loan {
	limit := decimal.NewFromInt(NewLoanLimit)
	return &Loan{
		LoanNumber:        NewLoanNumber(),
		MobileNumber:      mobileNumber,
		LoanType:          DefaultLoanType,
		TotalLoan:         limit,
		AmountPaid:        decimal.Zero,
		OutstandingAmount: limit,
	}
}

// NewLoanNumber returns a 12-digit numeric string in
// [100_000_000_000, 1_000_000_000_000).
func NewLoanNumber() string {
	return strconv.FormatInt(loanNumberBase+rand.Int64N(loanNumberSpan), 10)
}
