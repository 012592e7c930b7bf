package card

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCardRepository struct {
	mock.Mock
}

func (_m *MockCardRepository) ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error) {
	ret := _m.Called(ctx, mobileNumber)
	return ret.Bool(0), ret.Error(1)
}

func (_m *MockCardRepository) Save(ctx context.Context, c *Card) error {
	ret := _m.Called(ctx, c)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *Card) error); ok {
		r0 = rf(ctx, c)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MockCardRepository) FindByMobileNumber(ctx context.Context, mobileNumber string) (*Card, error) {
	ret := _m.Called(ctx, mobileNumber)

	var r0 *Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Card)
	}

	return r0, ret.Error(1)
}

func (_m *MockCardRepository) FindByCardNumber(ctx context.Context, cardNumber string) (*Card, error) {
	ret := _m.Called(ctx, cardNumber)

	var r0 *Card
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Card)
	}

	return r0, ret.Error(1)
}

func (_m *MockCardRepository) Delete(ctx context.Context, cardID int64) error {
	ret := _m.Called(ctx, cardID)
	return ret.Error(0)
}
