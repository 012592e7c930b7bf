package loan

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockLoanRepository struct {
	mock.Mock
}

func (_m *MockLoanRepository) ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error) {
	ret := _m.Called(ctx, mobileNumber)
	return ret.Bool(0), ret.Error(1)
}

func (_m *MockLoanRepository) Save(ctx context.Context, l *Loan) error {
	ret := _m.Called(ctx, l)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Loan) error); ok {
		r0 = rf(ctx, l)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockLoanRepository) FindByMobileNumber(ctx context.Context, mobileNumber string) (*Loan, error) {
	ret := _m.Called(ctx, mobileNumber)

	var r0 *Loan
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Loan)
	}

	return r0, ret.Error(1)
}

func (_m *MockLoanRepository) FindByLoanNumber(ctx context.Context, loanNumber string) (*Loan, error) {
	ret := _m.Called(ctx, loanNumber)

	var r0 *Loan
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Loan)
	}

	return r0, ret.Error(1)
}

func (_m *MockLoanRepository) Delete(ctx context.Context, loanID int64) error {
	ret := _m.Called(ctx, loanID)
	return ret.Error(0)
}
