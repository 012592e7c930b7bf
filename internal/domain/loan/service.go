package loan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"natrix-bank/internal/event"
	"natrix-bank/internal/pkg/apperrors"
)

const maxProvisionAttempts = 5

type LoanService interface {
	CreateLoan(ctx context.Context, mobileNumber string) (*Loan, error)

	FetchLoan(ctx context.Context, mobileNumber string) (*Loan, error)

	UpdateLoan(ctx context.Context, l *Loan) error

	DeleteLoan(ctx context.Context, mobileNumber string) error
}

var _ LoanService = (*loanService)(nil)

type loanService struct {
	repo   Repository
	pub    event.Publisher
	logger *slog.Logger
}

func NewLoanService(repo Repository, pub event.Publisher, logger *slog.Logger) LoanService {
	if repo == nil {
		panic("loan repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewLoanService, using default stderr handler")
	}
	return &loanService{
		repo:   repo,
		pub:    pub,
		logger: logger.With(slog.String("component", "loanService")),
	}
}

func (s *loanService) CreateLoan(ctx context.Context, mobileNumber string) (*Loan, error) {
	logCtx := s.logger.With(slog.String("mobileNumber", mobileNumber))
	logCtx.InfoContext(ctx, "Attempting to provision loan")

	mobileNumber = strings.TrimSpace(mobileNumber)
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
		logCtx.WarnContext(ctx, "Loan already registered with given mobile number")
		return nil, fmt.Errorf("%w: loan already registered with given mobile number %s", apperrors.ErrAlreadyExists, mobileNumber)
	}

	var l *Loan
	for attempt := 1; attempt <= maxProvisionAttempts; attempt++ {
		l = NewLoan(mobileNumber)

		err = s.repo.Save(ctx, l)
		if err == nil {
			break
		}
		if errors.Is(err, apperrors.ErrNumberTaken) {
			logCtx.WarnContext(ctx, "Generated loan number collided, regenerating",
				slog.String("loanNumber", l.LoanNumber),
				slog.Int("attempt", attempt))
			continue
		}
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			logCtx.WarnContext(ctx, "Mobile number uniqueness violation during provisioning")
			return nil, fmt.Errorf("%w: loan already registered with given mobile number %s", apperrors.ErrAlreadyExists, mobileNumber)
		}
		logCtx.ErrorContext(ctx, "Repository failed to save new loan", slog.Any("error", err))
		return nil, fmt.Errorf("failed to provision loan for mobile number %s: %w", mobileNumber, err)
	}
	if err != nil {
		logCtx.ErrorContext(ctx, "Exhausted loan number generation attempts", slog.Int("attempts", maxProvisionAttempts))
		return nil, fmt.Errorf("%w: could not generate a unique loan number after %d attempts", apperrors.ErrInternalServer, maxProvisionAttempts)
	}

	logCtx.InfoContext(ctx, "Successfully provisioned loan", slog.String("loanNumber", l.LoanNumber))
	s.publishProvisioned(ctx, l)

	return l, nil
}

func (s *loanService) FetchLoan(ctx context.Context, mobileNumber string) (*Loan, error) {
	logCtx := s.logger.With(slog.String("mobileNumber", mobileNumber))
	logCtx.InfoContext(ctx, "Attempting to fetch loan details")

	l, err := s.repo.FindByMobileNumber(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Loan not found by mobile number")
			return nil, fmt.Errorf("%w: loan not found with mobile number %s", apperrors.ErrNotFound, mobileNumber)
		}
		logCtx.ErrorContext(ctx, "Repository error finding loan", slog.Any("error", err))
		return nil, fmt.Errorf("failed to fetch loan by mobile number %s: %w", mobileNumber, err)
	}

	logCtx.InfoContext(ctx, "Successfully fetched loan details", slog.String("loanNumber", l.LoanNumber))
	return l, nil
}

func (s *loanService) UpdateLoan(ctx context.Context, l *Loan) error {
	if l == nil {
		return apperrors.NewValidationError("loan", "Loan details are required for update")
	}

	logCtx := s.logger.With(slog.String("loanNumber", l.LoanNumber))
	logCtx.InfoContext(ctx, "Attempting to update loan")

	current, err := s.repo.FindByLoanNumber(ctx, l.LoanNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Loan not found by loan number")
			return fmt.Errorf("%w: loan not found with loan number %s", apperrors.ErrNotFound, l.LoanNumber)
		}
		logCtx.ErrorContext(ctx, "Repository error finding loan", slog.Any("error", err))
		return fmt.Errorf("failed to find loan %s: %w", l.LoanNumber, err)
	}

	// Loan number is the lookup key, never mutated.
	current.MobileNumber = l.MobileNumber
	current.LoanType = l.LoanType
	current.TotalLoan = l.TotalLoan
	current.AmountPaid = l.AmountPaid
	current.OutstandingAmount = l.OutstandingAmount

	if err := s.repo.Save(ctx, current); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Loan disappeared before update completed")
			return apperrors.ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository failed to save updated loan", slog.Any("error", err))
		return fmt.Errorf("failed to update loan %s: %w", l.LoanNumber, err)
	}

	logCtx.InfoContext(ctx, "Successfully updated loan")
	return nil
}

func (s *loanService) DeleteLoan(ctx context.Context, mobileNumber string) error {
	logCtx := s.logger.With(slog.String("mobileNumber", mobileNumber))
	logCtx.InfoContext(ctx, "Attempting to retire loan")

	l, err := s.repo.FindByMobileNumber(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Loan not found by mobile number")
			return fmt.Errorf("%w: loan not found with mobile number %s", apperrors.ErrNotFound, mobileNumber)
		}
		logCtx.ErrorContext(ctx, "Repository error finding loan", slog.Any("error", err))
		return fmt.Errorf("failed to find loan by mobile number %s: %w", mobileNumber, err)
	}

	if err := s.repo.Delete(ctx, l.LoanID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Loan disappeared before delete completed")
			return apperrors.ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository failed to delete loan", slog.Any("error", err))
		return fmt.Errorf("failed to delete loan %d: %w", l.LoanID, err)
	}

	logCtx.InfoContext(ctx, "Successfully retired loan", slog.String("loanNumber", l.LoanNumber))
	s.publishRetired(ctx, l)
	return nil
}

func (s *loanService) publishProvisioned(ctx context.Context, l *Loan) {
	if s.pub == nil {
		return
	}
	evt := event.RecordProvisionedEvent{
		Timestamp: time.Now(),
		Payload:   event.NewRecordEventPayload(event.ProductLoan, l.MobileNumber, l.LoanNumber),
	}
	if err := s.pub.PublishRecordProvisioned(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Loan provisioned, but FAILED to publish event", slog.Any("error", err))
	}
}

func (s *loanService) publishRetired(ctx context.Context, l *Loan) {
	if s.pub == nil {
		return
	}
	evt := event.RecordRetiredEvent{
		Timestamp: time.Now(),
		Payload:   event.NewRecordEventPayload(event.ProductLoan, l.MobileNumber, l.LoanNumber),
	}
	if err := s.pub.PublishRecordRetired(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Loan retired, but FAILED to publish event", slog.Any("error", err))
	}
}
