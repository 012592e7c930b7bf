package card

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

type CardService interface {
	CreateCard(ctx context.Context, mobileNumber string) (*Card, error)

	FetchCard(ctx context.Context, mobileNumber string) (*Card, error)

	UpdateCard(ctx context.Context, c *Card) error

	DeleteCard(ctx context.Context, mobileNumber string) error
}

var _ CardService = (*cardService)(nil)

type cardService struct {
	repo   Repository
	pub    event.Publisher
	logger *slog.Logger
}

func NewCardService(repo Repository, pub event.Publisher, logger *slog.Logger) CardService {
	if repo == nil {
		panic("card repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCardService, using default stderr handler")
	}
	return &cardService{
		repo:   repo,
		pub:    pub,
		logger: logger.With(slog.String("component", "cardService")),
	}
}

func (s *cardService) CreateCard(ctx context.Context, mobileNumber string) (*Card, error) {
	logCtx := s.logger.With(slog.String("mobileNumber", mobileNumber))
	logCtx.InfoContext(ctx, "Attempting to provision card")

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
		logCtx.WarnContext(ctx, "Card already registered with given mobile number")
		return nil, fmt.Errorf("%w: card already registered with given mobile number %s", apperrors.ErrAlreadyExists, mobileNumber)
	}

	var c *Card
	for attempt := 1; attempt <= maxProvisionAttempts; attempt++ {
		c = NewCard(mobileNumber)

		err = s.repo.Save(ctx, c)
		if err == nil {
			break
		}
		if errors.Is(err, apperrors.ErrNumberTaken) {
			logCtx.WarnContext(ctx, "Generated card number collided, regenerating",
				slog.String("cardNumber", c.CardNumber),
				slog.Int("attempt", attempt))
			continue
		}
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			logCtx.WarnContext(ctx, "Mobile number uniqueness violation during provisioning")
			return nil, fmt.Errorf("%w: card already registered with given mobile number %s", apperrors.ErrAlreadyExists, mobileNumber)
		}
		logCtx.ErrorContext(ctx, "Repository failed to save new card", slog.Any("error", err))
		return nil, fmt.Errorf("failed to provision card for mobile number %s: %w", mobileNumber, err)
	}
	if err != nil {
		logCtx.ErrorContext(ctx, "Exhausted card number generation attempts", slog.Int("attempts", maxProvisionAttempts))
		return nil, fmt.Errorf("%w: could not generate a unique card number after %d attempts", apperrors.ErrInternalServer, maxProvisionAttempts)
	}

	logCtx.InfoContext(ctx, "Successfully provisioned card", slog.String("cardNumber", c.CardNumber))
	s.publishProvisioned(ctx, c)

	return c, nil
}

func (s *cardService) FetchCard(ctx context.Context, mobileNumber string) (*Card, error) {
	logCtx := s.logger.With(slog.String("mobileNumber", mobileNumber))
	logCtx.InfoContext(ctx, "Attempting to fetch card details")

	c, err := s.repo.FindByMobileNumber(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Card not found by mobile number")
			return nil, fmt.Errorf("%w: card not found with mobile number %s", apperrors.ErrNotFound, mobileNumber)
		}
		logCtx.ErrorContext(ctx, "Repository error finding card", slog.Any("error", err))
		return nil, fmt.Errorf("failed to fetch card by mobile number %s: %w", mobileNumber, err)
	}

	logCtx.InfoContext(ctx, "Successfully fetched card details", slog.String("cardNumber", c.CardNumber))
	return c, nil
}

func (s *cardService) UpdateCard(ctx context.Context, c *Card) error {
	if c == nil {
		return apperrors.NewValidationError("card", "Card details are required for update")
	}

	logCtx := s.logger.With(slog.String("cardNumber", c.CardNumber))
	logCtx.InfoContext(ctx, "Attempting to update card")

	current, err := s.repo.FindByCardNumber(ctx, c.CardNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Card not found by card number")
			return fmt.Errorf("%w: card not found with card number %s", apperrors.ErrNotFound, c.CardNumber)
		}
		logCtx.ErrorContext(ctx, "Repository error finding card", slog.Any("error", err))
		return fmt.Errorf("failed to find card %s: %w", c.CardNumber, err)
	}

	// Card number is the lookup key, never mutated.
	current.MobileNumber = c.MobileNumber
	current.CardType = c.CardType
	current.TotalLimit = c.TotalLimit
	current.AmountUsed = c.AmountUsed
	current.AvailableAmount = c.AvailableAmount

	if err := s.repo.Save(ctx, current); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Card disappeared before update completed")
			return apperrors.ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository failed to save updated card", slog.Any("error", err))
		return fmt.Errorf("failed to update card %s: %w", c.CardNumber, err)
	}

	logCtx.InfoContext(ctx, "Successfully updated card")
	return nil
}

func (s *cardService) DeleteCard(ctx context.Context, mobileNumber string) error {
	logCtx := s.logger.With(slog.String("mobileNumber", mobileNumber))
	logCtx.InfoContext(ctx, "Attempting to retire card")

	c, err := s.repo.FindByMobileNumber(ctx, mobileNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Card not found by mobile number")
			return fmt.Errorf("%w: card not found with mobile number %s", apperrors.ErrNotFound, mobileNumber)
		}
		logCtx.ErrorContext(ctx, "Repository error finding card", slog.Any("error", err))
		return fmt.Errorf("failed to find card by mobile number %s: %w", mobileNumber, err)
	}

	if err := s.repo.Delete(ctx, c.CardID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logCtx.WarnContext(ctx, "Card disappeared before delete completed")
			return apperrors.ErrNotFound
		}
		logCtx.ErrorContext(ctx, "Repository failed to delete card", slog.Any("error", err))
		return fmt.Errorf("failed to delete card %d: %w", c.CardID, err)
	}

	logCtx.InfoContext(ctx, "Successfully retired card", slog.String("cardNumber", c.CardNumber))
	s.publishRetired(ctx, c)
	return nil
}

func (s *cardService) publishProvisioned(ctx context.Context, c *Card) {
	if s.pub == nil {
		return
	}
	evt := event.RecordProvisionedEvent{
		Timestamp: time.Now(),
		Payload:   event.NewRecordEventPayload(event.ProductCard, c.MobileNumber, c.CardNumber),
	}
	if err := s.pub.PublishRecordProvisioned(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Card provisioned, but FAILED to publish event", slog.Any("error", err))
	}
}

func (s *cardService) publishRetired(ctx context.Context, c *Card) {
	if s.pub == nil {
		return
	}
	evt := event.RecordRetiredEvent{
		Timestamp: time.Now(),
		Payload:   event.NewRecordEventPayload(event.ProductCard, c.MobileNumber, c.CardNumber),
	}
	if err := s.pub.PublishRecordRetired(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Card retired, but FAILED to publish event", slog.Any("error", err))
	}
}
