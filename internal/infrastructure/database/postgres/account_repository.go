package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"natrix-bank/internal/domain/account"
	"natrix-bank/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
	Close()
}

type AccountRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ account.Repository = (*AccountRepository)(nil)

func NewAccountRepository(db DBPool, logger *slog.Logger) *AccountRepository {
	if db == nil {
		panic("DBPool cannot be nil for AccountRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewAccountRepository, using default stderr handler")
	}
	return &AccountRepository{
		db:     db,
		logger: logger.With("component", "AccountRepository"),
	}
}

func (r *AccountRepository) ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error) {
	r.logger.DebugContext(ctx, "Checking customer existence by mobile number")

	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE mobile_number = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, mobileNumber).Scan(&exists); err != nil {
		r.logger.ErrorContext(ctx, "Failed to check customer existence", slog.Any("error", err))
		return false, fmt.Errorf("%w: failed to check customer existence: %w", apperrors.ErrDatabase, err)
	}
	return exists, nil
}

// CreateCustomerWithAccount persists the owner and the dependent account
// as one unit: both inserts run in a single transaction so a failed
// account insert never leaves an accountless customer behind.
func (r *AccountRepository) CreateCustomerWithAccount(ctx context.Context, cust *account.Customer, acct *account.Account) error {
	if cust == nil || acct == nil {
		return fmt.Errorf("%w: customer and account cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to insert customer with account", slog.String("mobileNumber", cust.MobileNumber))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to begin transaction", slog.Any("error", err))
		return fmt.Errorf("%w: failed to begin transaction: %w", apperrors.ErrDatabase, err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.logger.ErrorContext(ctx, "Failed to rollback transaction", slog.Any("error", rbErr))
		}
	}()

	customerQuery := `
        INSERT INTO customers (name, email, mobile_number, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        RETURNING customer_id, created_at, updated_at`

	err = tx.QueryRow(ctx, customerQuery,
		cust.Name,
		cust.Email,
		cust.MobileNumber,
	).Scan(
		&cust.CustomerID,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)
	if err != nil {
		return translateDBError(err, r.logger)
	}

	acct.CustomerID = cust.CustomerID

	accountQuery := `
        INSERT INTO accounts (account_number, customer_id, account_type, branch_address, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
        RETURNING created_at, updated_at`

	err = tx.QueryRow(ctx, accountQuery,
		acct.AccountNumber,
		acct.CustomerID,
		acct.AccountType,
		acct.BranchAddress,
	).Scan(
		&acct.CreatedAt,
		&acct.UpdatedAt,
	)
	if err != nil {
		return translateDBError(err, r.logger)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.ErrorContext(ctx, "Failed to commit transaction", slog.Any("error", err))
		return fmt.Errorf("%w: failed to commit transaction: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer with account inserted successfully",
		slog.Int64("customerId", cust.CustomerID),
		slog.Int64("accountNumber", acct.AccountNumber))
	return nil
}

func (r *AccountRepository) FindCustomerByMobileNumber(ctx context.Context, mobileNumber string) (*account.Customer, error) {
	r.logger.DebugContext(ctx, "Attempting to find customer by mobile number")

	query := `
        SELECT customer_id, name, email, mobile_number, created_at, updated_at
        FROM customers
        WHERE mobile_number = $1`

	return r.scanCustomer(ctx, query, mobileNumber)
}

func (r *AccountRepository) FindCustomerByID(ctx context.Context, customerID int64) (*account.Customer, error) {
	r.logger.DebugContext(ctx, "Attempting to find customer by ID")

	query := `
        SELECT customer_id, name, email, mobile_number, created_at, updated_at
        FROM customers
        WHERE customer_id = $1`

	return r.scanCustomer(ctx, query, customerID)
}

func (r *AccountRepository) scanCustomer(ctx context.Context, query string, arg any) (*account.Customer, error) {
	var cust account.Customer
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&cust.CustomerID,
		&cust.Name,
		&cust.Email,
		&cust.MobileNumber,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found")
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer: %w", apperrors.ErrDatabase, err)
	}
	return &cust, nil
}

func (r *AccountRepository) FindAccountByCustomerID(ctx context.Context, customerID int64) (*account.Account, error) {
	r.logger.DebugContext(ctx, "Attempting to find account by customer ID")

	query := `
        SELECT account_number, customer_id, account_type, branch_address, created_at, updated_at
        FROM accounts
        WHERE customer_id = $1`

	return r.scanAccount(ctx, query, customerID)
}

func (r *AccountRepository) FindAccountByNumber(ctx context.Context, accountNumber int64) (*account.Account, error) {
	r.logger.DebugContext(ctx, "Attempting to find account by account number")

	query := `
        SELECT account_number, customer_id, account_type, branch_address, created_at, updated_at
        FROM accounts
        WHERE account_number = $1`

	return r.scanAccount(ctx, query, accountNumber)
}

func (r *AccountRepository) scanAccount(ctx context.Context, query string, arg any) (*account.Account, error) {
	var acct account.Account
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&acct.AccountNumber,
		&acct.CustomerID,
		&acct.AccountType,
		&acct.BranchAddress,
		&acct.CreatedAt,
		&acct.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Account not found")
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan account", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get account: %w", apperrors.ErrDatabase, err)
	}
	return &acct, nil
}

// UpdateCustomerWithAccount overwrites both records in one transaction.
func (r *AccountRepository) UpdateCustomerWithAccount(ctx context.Context, cust *account.Customer, acct *account.Account) error {
	if cust == nil || acct == nil {
		return fmt.Errorf("%w: customer and account cannot be nil", apperrors.ErrInvalidArgument)
	}

	r.logger.InfoContext(ctx, "Attempting to update customer with account", slog.Int64("accountNumber", acct.AccountNumber))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to begin transaction", slog.Any("error", err))
		return fmt.Errorf("%w: failed to begin transaction: %w", apperrors.ErrDatabase, err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.logger.ErrorContext(ctx, "Failed to rollback transaction", slog.Any("error", rbErr))
		}
	}()

	accountQuery := `
        UPDATE accounts
        SET account_type = $1,
            branch_address = $2,
            updated_at = NOW()
        WHERE account_number = $3`

	cmdTag, err := tx.Exec(ctx, accountQuery, acct.AccountType, acct.BranchAddress, acct.AccountNumber)
	if err != nil {
		return translateDBError(err, r.logger)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, account likely not found")
		return apperrors.ErrNotFound
	}

	customerQuery := `
        UPDATE customers
        SET name = $1,
            email = $2,
            mobile_number = $3,
            updated_at = NOW()
        WHERE customer_id = $4`

	cmdTag, err = tx.Exec(ctx, customerQuery, cust.Name, cust.Email, cust.MobileNumber, cust.CustomerID)
	if err != nil {
		return translateDBError(err, r.logger)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.ErrorContext(ctx, "Failed to commit transaction", slog.Any("error", err))
		return fmt.Errorf("%w: failed to commit transaction: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer with account updated successfully")
	return nil
}

// DeleteCustomerWithAccount retires both records in one transaction,
// dependent account first so an interrupted delete never strands an
// orphan account.
func (r *AccountRepository) DeleteCustomerWithAccount(ctx context.Context, customerID int64) error {
	r.logger.InfoContext(ctx, "Attempting to delete customer with account", slog.Int64("customerId", customerID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to begin transaction", slog.Any("error", err))
		return fmt.Errorf("%w: failed to begin transaction: %w", apperrors.ErrDatabase, err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.logger.ErrorContext(ctx, "Failed to rollback transaction", slog.Any("error", rbErr))
		}
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM accounts WHERE customer_id = $1`, customerID); err != nil {
		return translateDBError(err, r.logger)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1`, customerID)
	if err != nil {
		return translateDBError(err, r.logger)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.ErrorContext(ctx, "Failed to commit transaction", slog.Any("error", err))
		return fmt.Errorf("%w: failed to commit transaction: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer with account deleted successfully")
	return nil
}
