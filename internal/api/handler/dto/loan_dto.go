package dto

import (
	"natrix-bank/internal/domain/loan"

	"github.com/shopspring/decimal"
)

// LoanDto is both the loans update payload and the fetch view.
type LoanDto struct {
	MobileNumber      string          `json:"mobileNumber" validate:"required,mobilenum"`
	LoanNumber        string          `json:"loanNumber" validate:"required,len=12,number"`
	LoanType          string          `json:"loanType" validate:"required"`
	TotalLoan         decimal.Decimal `json:"totalLoan"`
	AmountPaid        decimal.Decimal `json:"amountPaid"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
}

func (d *LoanDto) Validate() error {
	if err := validate.Struct(d); err != nil {
		return asFieldErrors(err)
	}
	return nil
}

func NewLoanDto(l *loan.Loan) LoanDto {
	if l == nil {
		return LoanDto{}
	}
	return LoanDto{
		MobileNumber:      l.MobileNumber,
		LoanNumber:        l.LoanNumber,
		LoanType:          l.LoanType,
		TotalLoan:         l.TotalLoan,
		AmountPaid:        l.AmountPaid,
		OutstandingAmount: l.OutstandingAmount,
	}
}

func (d *LoanDto) ToDomain() *loan.Loan {
	return &loan.Loan{
		MobileNumber:      d.MobileNumber,
		LoanNumber:        d.LoanNumber,
		LoanType:          d.LoanType,
		TotalLoan:         d.TotalLoan,
		AmountPaid:        d.AmountPaid,
		OutstandingAmount: d.OutstandingAmount,
	}
}
