package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"natrix-bank/internal/event"
	"natrix-bank/internal/pkg/apperrors"
)

// maxProvisionAttempts bounds account number regeneration when the store
// reports a collision on the generated number.
const maxProvisionAttempts = 5

type AccountService interface {
	CreateAccount(ctx context.Context, name, email, mobileNumber string) (*Details, error)

	FetchAccount(ctx context.Context, mobileNumber string) (*Details, error)

	UpdateAccount(ctx context.Context, details *Details) error

	DeleteAccount(ctx context.Context, mobileNumber string) error
}

var _ AccountService = (*accountService)(nil)

type accountService struct {
	repo   Repository
	pub    event.Publisher
	logger *slog.Logger
}

func NewAccountService(repo Repository, pub event.Publisher, logger *slog.Logger) AccountService {
	if repo == nil {
		panic("account repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewAccountService, using default stderr handler")
	}
	return &accountService{
		repo:   repo,
		pub:    pub,
		logger: logger.With(slog.String("component", "accountService")),
	}
}

func (s *accountService) CreateAccount(ctx context.Context, name, email, mobileNumber string) (*Details, error) {
	logCtx := s.logger.With(slog.String("mobileNumber", mobileNumber))
	logCtx.InfoContext(ctx, "Attempting to provision customer with account")

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	mobileNumber = strings.TrimSpace(mobileNumber)
	if name == "" {
		logCtx.WarnContext(ctx, "Validation failed: name is empty")
		return nil, apperrors.NewValidationError("name", "Name can not be a null or empty")
	}
	if email == "" {
		logCtx.WarnContext(ctx, "Validation failed: email is empty")
		return nil, apperrors.NewValidationError("email", "Email address can not be a null or empty")
	}
	if mobileNumber == "" {
		logCtx.WarnContext(ctx, "Validation failed: mobile number is empty")
		return nil, apperrors.NewValidationError("mobileNumber", "Mobile number can not be a null or empty")
	}

	exists, err := s.repo.ExistsByMobileNumber(ctx, mobileNumber)
	if err != nil {
		logCtx.ErrorContext(ctx, "Repository error checking mobile number", slog.Any("error", err))
		return nil, fmt.Errorf("failed to check mobile number %s: %w", mobileNumber, err)
	}
	if exists {
		logCtx.WarnContext(ctx, "Customer already registered with given mobile number")
		return nil, fmt.Errorf("%w: customer already registered with given mobile number %s", apperrors.ErrAlreadyExists, mobileNumber)
	}

	cust := NewCustomer(name, email, mobileNumber)

	var acct *Account
	for attempt := 1; attempt <= maxProvisionAttempts; attempt++ {
		acct = NewAccount()

		err = s.repo.CreateCustomerWithAccount(ctx, cust, acct)
		if err == nil {
			break
		}
		if errors.Is(err, apperrors.ErrNumberTaken) {
			logCtx.WarnContext(ctx, "Generated account number collided, regenerating",
				slog.Int64("accountNumber", acct.AccountNumber),
				slog.Int("attempt", attempt))
			continue
		}
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			// Lost a concurrent provisioning race on the mobile number.
			logCtx.WarnContext(ctx, "Mobile number uniqueness violation during provisioning")
			return nil, fmt.Errorf("%w: customer already registered with given mobile number %s", apperrors.ErrAlreadyExists, mobileNumber)
		}
		logCtx.ErrorContext(ctx, "Repository failed to provision customer with account", slog.Any("error", err))
		return nil, fmt.Errorf("failed to provision account for mobile number %s: %w", mobileNumber, err)
	}
	if err != nil {
		logCtx.ErrorContext(ctx, "Exhausted account number generation attempts", slog.Int("attempts", maxProvisionAttempts))
		return nil, fmt.Errorf("%w: could not generate a unique account number after %d attempts", apperrors.ErrInternalServer, maxProvisionAttempts)
	}

	logCtx.InfoContext(ctx, "Successfully provisioned customer with account",
		slog.Int64("customerId", cust.CustomerID),
		slog.Int64("accountNumber", acct.AccountNumber))
	s.publishProvisioned(ctx, cust.MobileNumber, acct.AccountNumber)

	return &Details{Customer: cust, Account: acct}, nil
}

func (s *accountService) FetchAccount(ctx context.Context, mobileNumber string) (*Details, error) {
	logCtx := s.logger.With(slog.String("mobileNumber", mobileNumber))
	logCtx.InfoContext(ctx, "Attempting to fetch account details")

	cust, err := s.repo.FindCustomerByMobileNumber(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Customer not found by mobile number")
			return nil, fmt.Errorf("%w: customer not found with mobile number %s", apperrors.ErrNotFound, mobileNumber)
		}
		logCtx.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to fetch customer by mobile number %s: %w", mobileNumber, err)
	}

	acct, err := s.repo.FindAccountByCustomerID(ctx, cust.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// A customer without an account is an inconsistent state.
			logCtx.ErrorContext(ctx, "Customer exists but owns no account", slog.Int64("customerId", cust.CustomerID))
			return nil, fmt.Errorf("%w: account not found for customer %d", apperrors.ErrNotFound, cust.CustomerID)
		}
		logCtx.ErrorContext(ctx, "Repository error finding account", slog.Any("error", err))
		return nil, fmt.Errorf("failed to fetch account for customer %d: %w", cust.CustomerID, err)
	}

	logCtx.InfoContext(ctx, "Successfully fetched account details", slog.Int64("accountNumber", acct.AccountNumber))
	return &Details{Customer: cust, Account: acct}, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, details *Details) error {
	if details == nil || details.Account == nil {
		return apperrors.NewValidationError("accountsDto", "Account details are required for update")
	}
	if details.Customer == nil {
		return apperrors.NewValidationError("customer", "Customer details are required for update")
	}

	logCtx := s.logger.With(slog.Int64("accountNumber", details.Account.AccountNumber))
	logCtx.InfoContext(ctx, "Attempting to update account and owning customer")

	current, err := s.repo.FindAccountByNumber(ctx, details.Account.AccountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Account not found by account number")
			return fmt.Errorf("%w: account not found with account number %d", apperrors.ErrNotFound, details.Account.AccountNumber)
		}
		logCtx.ErrorContext(ctx, "Repository error finding account", slog.Any("error", err))
		return fmt.Errorf("failed to find account %d: %w", details.Account.AccountNumber, err)
	}

	cust, err := s.repo.FindCustomerByID(ctx, current.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.ErrorContext(ctx, "Account exists but owning customer is missing", slog.Int64("customerId", current.CustomerID))
			return fmt.Errorf("%w: customer not found with customer id %d", apperrors.ErrNotFound, current.CustomerID)
		}
		logCtx.ErrorContext(ctx, "Repository error finding owning customer", slog.Any("error", err))
		return fmt.Errorf("failed to find customer %d: %w", current.CustomerID, err)
	}

	// The account number is the lookup key, never mutated. The owner
	// reference stays with the resolved customer.
	current.AccountType = details.Account.AccountType
	current.BranchAddress = details.Account.BranchAddress
	cust.Name = details.Customer.Name
	cust.Email = details.Customer.Email
	cust.MobileNumber = details.Customer.MobileNumber

	if err := s.repo.UpdateCustomerWithAccount(ctx, cust, current); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Record disappeared before update completed")
			return apperrors.ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository failed to update customer with account", slog.Any("error", err))
		return fmt.Errorf("failed to update account %d: %w", current.AccountNumber, err)
	}

	logCtx.InfoContext(ctx, "Successfully updated account and owning customer")
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, mobileNumber string) error {
	logCtx := s.logger.With(slog.String("mobileNumber", mobileNumber))
	logCtx.InfoContext(ctx, "Attempting to retire customer and account")

	cust, err := s.repo.FindCustomerByMobileNumber(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Customer not found by mobile number")
			return fmt.Errorf("%w: customer not found with mobile number %s", apperrors.ErrNotFound, mobileNumber)
		}
		logCtx.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return fmt.Errorf("failed to find customer by mobile number %s: %w", mobileNumber, err)
	}

	var accountNumber int64
	if acct, acctErr := s.repo.FindAccountByCustomerID(ctx, cust.CustomerID); acctErr == nil {
		accountNumber = acct.AccountNumber
	}

	if err := s.repo.DeleteCustomerWithAccount(ctx, cust.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Customer disappeared before delete completed")
			return apperrors.ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository failed to retire customer with account", slog.Any("error", err))
		return fmt.Errorf("failed to delete customer %d: %w", cust.CustomerID, err)
	}

	logCtx.InfoContext(ctx, "Successfully retired customer and account", slog.Int64("customerId", cust.CustomerID))
	s.publishRetired(ctx, mobileNumber, accountNumber)
	return nil
}

func (s *accountService) publishProvisioned(ctx context.Context, mobileNumber string, accountNumber int64) {
	if s.pub == nil {
		return
	}
	evt := event.RecordProvisionedEvent{
		Timestamp: time.Now(),
		Payload:   event.NewRecordEventPayload(event.ProductAccount, mobileNumber, strconv.FormatInt(accountNumber, 10)),
	}
	if err := s.pub.PublishRecordProvisioned(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Account provisioned, but FAILED to publish event", slog.Any("error", err))
	}
}

func (s *accountService) publishRetired(ctx context.Context, mobileNumber string, accountNumber int64) {
	if s.pub == nil {
		return
	}
	recordNumber := ""
	if accountNumber != 0 {
		recordNumber = strconv.FormatInt(accountNumber, 10)
	}
	evt := event.RecordRetiredEvent{
		Timestamp: time.Now(),
		Payload:   event.NewRecordEventPayload(event.ProductAccount, mobileNumber, recordNumber),
	}
	if err := s.pub.PublishRecordRetired(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Account retired, but FAILED to publish event", slog.Any("error", err))
	}
}
