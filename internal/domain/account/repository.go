package account

import "context"

// Repository is the accounts identity store. The customer and account
// tables live in the same database, so the multi-row operations
// (provision, update, retire) each run inside one local transaction.
type Repository interface {
	ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error)

	CreateCustomerWithAccount(ctx context.Context, cust *Customer, acct *Account) error

	FindCustomerByMobileNumber(ctx context.Context, mobileNumber string) (*Customer, error)

	FindCustomerByID(ctx context.Context, customerID int64) (*Customer, error)

	FindAccountByCustomerID(ctx context.Context, customerID int64) (*Account, error)

	FindAccountByNumber(ctx context.Context, accountNumber int64) (*Account, error)

	UpdateCustomerWithAccount(ctx context.Context, cust *Customer, acct *Account) error

	DeleteCustomerWithAccount(ctx context.Context, customerID int64) error
}
