package account

import (
	"math/rand/v2"
	"time"
)

const (
	DefaultAccountType   = "Savings"
	DefaultBranchAddress = "123 Main Street, New York"

	accountNumberBase = 1_000_000_000
	accountNumberSpan = 900_000_000
)

type Customer struct {
	CustomerID   int64     `json:"customerId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobileNumber"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Account struct {
	AccountNumber int64     `json:"accountNumber"`
	CustomerID    int64     `json:"customerId"`
	AccountType   string    `json:"accountType"`
	BranchAddress string    `json:"branchAddress"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Details is the combined owner-plus-account view returned by fetch.
type Details struct {
	Customer *Customer
	Account  *Account
}

func NewCustomer(name, email, mobileNumber string) *Customer {
	return &Customer{
		Name:         name,
		Email:        email,
		MobileNumber: mobileNumber,
	}
}

// NewAccount fabricates a savings account with a freshly generated account
// number. Uniqueness is enforced by the store; provisioning regenerates on
// collision.
func NewAccount() *Account {
	return &Account{
		AccountNumber: NewAccountNumber(),
		AccountType:   DefaultAccountType,
		BranchAddress: DefaultBranchAddress,
	}
}

// NewAccountNumber returns a 10-digit number in [1_000_000_000, 1_900_000_000).
func NewAccountNumber() int64 {
	return accountNumberBase + rand.Int64N(accountNumberSpan)
}
