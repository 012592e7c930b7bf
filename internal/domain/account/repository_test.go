package account

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAccountRepository struct {
	mock.Mock
}

func (_m *MockAccountRepository) ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error) {
	ret := _m.Called(ctx, mobileNumber)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string) bool); ok {
		r0 = rf(ctx, mobileNumber)
	} else {
		r0 = ret.Bool(0)
	}

	return r0, ret.Error(1)
}

func (_m *MockAccountRepository) CreateCustomerWithAccount(ctx context.Context, cust *Customer, acct *Account) error {
	ret := _m.Called(ctx, cust, acct)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Customer, *Account) error); ok {
		r0 = rf(ctx, cust, acct)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockAccountRepository) FindCustomerByMobileNumber(ctx context.Context, mobileNumber string) (*Customer, error) {
	ret := _m.Called(ctx, mobileNumber)

	var r0 *Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Customer)
	}

	return r0, ret.Error(1)
}

func (_m *MockAccountRepository) FindCustomerByID(ctx context.Context, customerID int64) (*Customer, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Customer)
	}

	return r0, ret.Error(1)
}

func (_m *MockAccountRepository) FindAccountByCustomerID(ctx context.Context, customerID int64) (*Account, error) {
	ret := _m.Called(ctx, customerID)

	var r0 *Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Account)
	}

	return r0, ret.Error(1)
}

func (_m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber int64) (*Account, error) {
	ret := _m.Called(ctx, accountNumber)

	var r0 *Account
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Account)
	}

	return r0, ret.Error(1)
}

func (_m *MockAccountRepository) UpdateCustomerWithAccount(ctx context.Context, cust *Customer, acct *Account) error {
	ret := _m.Called(ctx, cust, acct)
	return ret.Error(0)
}

func (_m *MockAccountRepository) DeleteCustomerWithAccount(ctx context.Context, customerID int64) error {
	ret := _m.Called(ctx, customerID)
	return ret.Error(0)
}
