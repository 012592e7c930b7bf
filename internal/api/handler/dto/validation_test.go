package dto_test

import (
	"errors"
	"testing"

	"natrix-bank/internal/api/handler/dto"
	"natrix-bank/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMobileNumber(t *testing.T) {
	tests := []struct {
		name         string
		mobileNumber string
		wantErr      bool
	}{
		{name: "local 9 digits", mobileNumber: "091234567", wantErr: false},
		{name: "local 10 digits", mobileNumber: "0912345678", wantErr: false},
		{name: "local 11 digits", mobileNumber: "09123456789", wantErr: false},
		{name: "international 9 digits", mobileNumber: "+9591234567", wantErr: false},
		{name: "international 11 digits", mobileNumber: "+959123456789", wantErr: false},
		{name: "empty", mobileNumber: "", wantErr: true},
		{name: "too short", mobileNumber: "0912345", wantErr: true},
		{name: "local too long", mobileNumber: "091234567890", wantErr: true},
		{name: "wrong prefix", mobileNumber: "1234567890", wantErr: true},
		{name: "plain digits without prefix", mobileNumber: "12345", wantErr: true},
		{name: "letters", mobileNumber: "09abc45678", wantErr: true},
		{name: "bare country code", mobileNumber: "+959", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dto.ValidateMobileNumber(tt.mobileNumber)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomerDtoValidate(t *testing.T) {
	valid := func() dto.CustomerDto {
		return dto.CustomerDto{
			Name:         "Aung Kyaw Moe",
			Email:        "aung.kyaw@example.com",
			MobileNumber: "0943210987",
		}
	}

	t.Run("success", func(t *testing.T) {
		d := valid()
		assert.NoError(t, d.Validate())
	})

	t.Run("Error - Name Too Short", func(t *testing.T) {
		d := valid()
		d.Name = "Bo"

		err := d.Validate()

		var verr *apperrors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "The length of the customer name should be between 5 and 30", verr.Fields["name"])
	})

	t.Run("Error - Bad Email", func(t *testing.T) {
		d := valid()
		d.Email = "not-an-email"

		err := d.Validate()

		var verr *apperrors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "email")
	})

	t.Run("Error - Bad Mobile Number", func(t *testing.T) {
		d := valid()
		d.MobileNumber = "12345"

		err := d.Validate()

		var verr *apperrors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "Mobile number must be a valid 09 or +959 number", verr.Fields["mobileNumber"])
	})

	t.Run("Error - Empty Payload Reports Every Field", func(t *testing.T) {
		d := dto.CustomerDto{}

		err := d.Validate()

		var verr *apperrors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "name")
		assert.Contains(t, verr.Fields, "email")
		assert.Contains(t, verr.Fields, "mobileNumber")
	})

	t.Run("Error - Nested Account Missing Branch Address", func(t *testing.T) {
		d := valid()
		d.AccountsDto = &dto.AccountsDto{AccountNumber: 1_234_567_890, AccountType: "Savings"}

		err := d.Validate()

		var verr *apperrors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "branchAddress")
	})
}

func TestCustomerDtoValidateForUpdate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := dto.CustomerDto{
			Name:         "Aung Kyaw Moe",
			Email:        "aung.kyaw@example.com",
			MobileNumber: "0943210987",
			AccountsDto: &dto.AccountsDto{
				AccountNumber: 1_234_567_890,
				AccountType:   "Savings",
				BranchAddress: "123 Main Street, New York",
			},
		}
		assert.NoError(t, d.ValidateForUpdate())
	})

	t.Run("Error - Missing AccountsDto", func(t *testing.T) {
		d := dto.CustomerDto{
			Name:         "Aung Kyaw Moe",
			Email:        "aung.kyaw@example.com",
			MobileNumber: "0943210987",
		}

		err := d.ValidateForUpdate()

		var verr *apperrors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "Account details are required for update", verr.Fields["accountsDto"])
	})
}

func TestCardDtoValidate(t *testing.T) {
	valid := func() dto.CardDto {
		return dto.CardDto{
			MobileNumber: "0943210987",
			CardNumber:   "104565437623",
			CardType:     "Credit Card",
		}
	}

	t.Run("success", func(t *testing.T) {
		d := valid()
		assert.NoError(t, d.Validate())
	})

	t.Run("Error - Card Number Wrong Length", func(t *testing.T) {
		d := valid()
		d.CardNumber = "12345"

		err := d.Validate()

		var verr *apperrors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "cardNumber")
	})

	t.Run("Error - Card Number Not Numeric", func(t *testing.T) {
		d := valid()
		d.CardNumber = "10456543762X"

		err := d.Validate()

		var verr *apperrors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "cardNumber")
	})
}

func TestLoanDtoValidate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := dto.LoanDto{
			MobileNumber: "+959778899001",
			LoanNumber:   "100998877665",
			LoanType:     "Home Loan",
		}
		assert.NoError(t, d.Validate())
	})

	t.Run("Error - Missing Loan Type", func(t *testing.T) {
		d := dto.LoanDto{
			MobileNumber: "+959778899001",
			LoanNumber:   "100998877665",
		}

		err := d.Validate()

		var verr *apperrors.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "loanType")
	})
}
