package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"natrix-bank/internal/domain/card"
	"natrix-bank/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

type CardRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ card.Repository = (*CardRepository)(nil)

func NewCardRepository(db DBPool, logger *slog.Logger) *CardRepository {
	if db == nil {
		panic("DBPool cannot be nil for CardRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCardRepository, using default stderr handler")
	}
	return &CardRepository{
		db:     db,
		logger: logger.With("component", "CardRepository"),
	}
}

func (r *CardRepository) ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error) {
	r.logger.DebugContext(ctx, "Checking card existence by mobile number")

	query := `SELECT EXISTS(SELECT 1 FROM cards WHERE mobile_number = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, mobileNumber).Scan(&exists); err != nil {
		r.logger.ErrorContext(ctx, "Failed to check card existence", slog.Any("error", err))
		return false, fmt.Errorf("%w: failed to check card existence: %w", apperrors.ErrDatabase, err)
	}
	return exists, nil
}

func (r *CardRepository) Save(ctx context.Context, c *card.Card) error {
	if c == nil {
		return fmt.Errorf("%w: card cannot be nil", apperrors.ErrInvalidArgument)
	}

	if c.CardID == 0 {
		return r.createCard(ctx, c)
	}
	return r.updateCard(ctx, c)
}

func (r *CardRepository) createCard(ctx context.Context, c *card.Card) error {
	r.logger.InfoContext(ctx, "Attempting to insert new card", slog.String("mobileNumber", c.MobileNumber))

	query := `
        INSERT INTO cards (card_number, mobile_number, card_type, total_limit, amount_used, available_amount, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        RETURNING card_id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		c.CardNumber,
		c.MobileNumber,
		c.CardType,
		c.TotalLimit,
		c.AmountUsed,
		c.AvailableAmount,
	).Scan(
		&c.CardID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return translateDBError(err, r.logger)
	}

	r.logger.InfoContext(ctx, "Card inserted successfully", slog.Int64("cardId", c.CardID))
	return nil
}

func (r *CardRepository) updateCard(ctx context.Context, c *card.Card) error {
	r.logger.InfoContext(ctx, "Attempting to update card", slog.Int64("cardId", c.CardID))

	query := `
        UPDATE cards
        SET mobile_number = $1,
            card_type = $2,
            total_limit = $3,
            amount_used = $4,
            available_amount = $5,
            updated_at = NOW()
        WHERE card_id = $6`

	cmdTag, err := r.db.Exec(ctx, query,
		c.MobileNumber,
		c.CardType,
		c.TotalLimit,
		c.AmountUsed,
		c.AvailableAmount,
		c.CardID,
	)
	if err != nil {
		return translateDBError(err, r.logger)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Update affected zero rows, card likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Card updated successfully")
	return nil
}

func (r *CardRepository) FindByMobileNumber(ctx context.Context, mobileNumber string) (*card.Card, error) {
	r.logger.DebugContext(ctx, "Attempting to find card by mobile number")

	query := `
        SELECT card_id, card_number, mobile_number, card_type, total_limit, amount_used, available_amount, created_at, updated_at
        FROM cards
        WHERE mobile_number = $1`

	return r.scanCard(ctx, query, mobileNumber)
}

func (r *CardRepository) FindByCardNumber(ctx context.Context, cardNumber string) (*card.Card, error) {
	r.logger.DebugContext(ctx, "Attempting to find card by card number")

	query := `
        SELECT card_id, card_number, mobile_number, card_type, total_limit, amount_used, available_amount, created_at, updated_at
        FROM cards
        WHERE card_number = $1`

	return r.scanCard(ctx, query, cardNumber)
}

func (r *CardRepository) scanCard(ctx context.Context, query string, arg any) (*card.Card, error) {
	var c card.Card
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.CardID,
		&c.CardNumber,
		&c.MobileNumber,
		&c.CardType,
		&c.TotalLimit,
		&c.AmountUsed,
		&c.AvailableAmount,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Card not found")
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan card", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get card: %w", apperrors.ErrDatabase, err)
	}
	return &c, nil
}

func (r *CardRepository) Delete(ctx context.Context, cardID int64) error {
	r.logger.InfoContext(ctx, "Attempting to delete card", slog.Int64("cardId", cardID))

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM cards WHERE card_id = $1`, cardID)
	if err != nil {
		return translateDBError(err, r.logger)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, card likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Card deleted successfully")
	return nil
}
