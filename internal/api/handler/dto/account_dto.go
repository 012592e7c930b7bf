package dto

import (
	"errors"

	"natrix-bank/internal/domain/account"
	"natrix-bank/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

// CustomerDto is the accounts service payload: the customer fields plus
// the owned account. AccountsDto is optional on create (the account is
// generated) and required on update (it names the record to change).
type CustomerDto struct {
	Name         string       `json:"name" validate:"required,min=5,max=30"`
	Email        string       `json:"email" validate:"required,email"`
	MobileNumber string       `json:"mobileNumber" validate:"required,mobilenum"`
	AccountsDto  *AccountsDto `json:"accountsDto,omitempty"`
}

type AccountsDto struct {
	AccountNumber int64  `json:"accountNumber" validate:"required"`
	AccountType   string `json:"accountType" validate:"required"`
	BranchAddress string `json:"branchAddress" validate:"required"`
}

func (d *CustomerDto) Validate() error {
	if err := validate.Struct(d); err != nil {
		return asFieldErrors(err)
	}
	if d.AccountsDto != nil {
		if err := validate.Struct(d.AccountsDto); err != nil {
			return asFieldErrors(err)
		}
	}
	return nil
}

// ValidateForUpdate additionally requires the nested account payload,
// which names the record being updated.
func (d *CustomerDto) ValidateForUpdate() error {
	if d.AccountsDto == nil {
		return apperrors.NewValidationError("accountsDto", "Account details are required for update")
	}
	return d.Validate()
}

func asFieldErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError("payload", err.Error())
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[jsonFieldName(fe.Field())] = fieldMessage(fe)
	}
	return apperrors.NewFieldErrors(fields)
}

func jsonFieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "MobileNumber":
		return "mobileNumber"
	case "AccountNumber":
		return "accountNumber"
	case "AccountType":
		return "accountType"
	case "BranchAddress":
		return "branchAddress"
	case "CardNumber":
		return "cardNumber"
	case "CardType":
		return "cardType"
	case "TotalLimit":
		return "totalLimit"
	case "AmountUsed":
		return "amountUsed"
	case "AvailableAmount":
		return "availableAmount"
	case "LoanNumber":
		return "loanNumber"
	case "LoanType":
		return "loanType"
	case "TotalLoan":
		return "totalLoan"
	case "AmountPaid":
		return "amountPaid"
	case "OutstandingAmount":
		return "outstandingAmount"
	default:
		return structField
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "required" {
			return "Name can not be a null or empty"
		}
		return "The length of the customer name should be between 5 and 30"
	case "Email":
		if fe.Tag() == "required" {
			return "Email address can not be a null or empty"
		}
		return "Email address should be a valid value"
	case "MobileNumber":
		if fe.Tag() == "required" {
			return "Mobile number can not be a null or empty"
		}
		return "Mobile number must be a valid 09 or +959 number"
	default:
		switch fe.Tag() {
		case "required":
			return "This field can not be a null or empty"
		default:
			return "This field has an invalid value"
		}
	}
}

// CustomerDetailsResponse is the combined fetch view.
type CustomerDetailsResponse struct {
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	MobileNumber string      `json:"mobileNumber"`
	AccountsDto  AccountsDto `json:"accountsDto"`
}

func NewCustomerDetailsResponse(details *account.Details) CustomerDetailsResponse {
	if details == nil || details.Customer == nil || details.Account == nil {
		return CustomerDetailsResponse{}
	}
	return CustomerDetailsResponse{
		Name:         details.Customer.Name,
		Email:        details.Customer.Email,
		MobileNumber: details.Customer.MobileNumber,
		AccountsDto: AccountsDto{
			AccountNumber: details.Account.AccountNumber,
			AccountType:   details.Account.AccountType,
			BranchAddress: details.Account.BranchAddress,
		},
	}
}

// ToDomain maps the update payload onto domain records. The account
// number carried in AccountsDto selects the record to update.
func (d *CustomerDto) ToDomain() *account.Details {
	details := &account.Details{
		Customer: &account.Customer{
			Name:         d.Name,
			Email:        d.Email,
			MobileNumber: d.MobileNumber,
		},
	}
	if d.AccountsDto != nil {
		details.Account = &account.Account{
			AccountNumber: d.AccountsDto.AccountNumber,
			AccountType:   d.AccountsDto.AccountType,
			BranchAddress: d.AccountsDto.BranchAddress,
		}
	}
	return details
}
