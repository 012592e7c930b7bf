package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"natrix-bank/internal/domain/card"
	"natrix-bank/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var cardTest = &card.Card{
	CardID:          7,
	MobileNumber:    "0943210987",
	CardNumber:      "100523467891",
	CardType:        card.DefaultCardType,
	TotalLimit:      decimal.NewFromInt(card.NewCardLimit),
	AmountUsed:      decimal.Zero,
	AvailableAmount: decimal.NewFromInt(card.NewCardLimit),
	CreatedAt:       time.Now(),
	UpdatedAt:       time.Now(),
}

func setupCardRepo(t *testing.T) (context.Context, *CardRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	ctx := context.Background()
	repo := NewCardRepository(mockPool, logger)

	return ctx, repo, mockPool
}

func TestCardExistsByMobileNumber(t *testing.T) {
	ctx, repo, mockPool := setupCardRepo(t)
	defer mockPool.Close()

	query := `SELECT EXISTS(SELECT 1 FROM cards WHERE mobile_number = $1)`

	mockPool.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(cardTest.MobileNumber).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsByMobileNumber(ctx, cardTest.MobileNumber)
	assert.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveNewCardWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCardRepo(t)
	defer mockPool.Close()

	c := &card.Card{
		MobileNumber:    cardTest.MobileNumber,
		CardNumber:      cardTest.CardNumber,
		CardType:        cardTest.CardType,
		TotalLimit:      cardTest.TotalLimit,
		AmountUsed:      cardTest.AmountUsed,
		AvailableAmount: cardTest.AvailableAmount,
	}

	mockPool.ExpectQuery("INSERT INTO cards").WithArgs(
		c.CardNumber,
		c.MobileNumber,
		c.CardType,
		c.TotalLimit,
		c.AmountUsed,
		c.AvailableAmount,
	).WillReturnRows(pgxmock.NewRows([]string{"card_id", "created_at", "updated_at"}).
		AddRow(cardTest.CardID, cardTest.CreatedAt, cardTest.UpdatedAt))

	err := repo.Save(ctx, c)
	assert.NoError(t, err)
	assert.Equal(t, cardTest.CardID, c.CardID)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveNewCardWhenCardNumberCollision(t *testing.T) {
	ctx, repo, mockPool := setupCardRepo(t)
	defer mockPool.Close()

	c := &card.Card{
		MobileNumber:    cardTest.MobileNumber,
		CardNumber:      cardTest.CardNumber,
		CardType:        cardTest.CardType,
		TotalLimit:      cardTest.TotalLimit,
		AmountUsed:      cardTest.AmountUsed,
		AvailableAmount: cardTest.AvailableAmount,
	}

	mockPool.ExpectQuery("INSERT INTO cards").WithArgs(
		c.CardNumber,
		c.MobileNumber,
		c.CardType,
		c.TotalLimit,
		c.AmountUsed,
		c.AvailableAmount,
	).WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "cards_card_number_key"})

	err := repo.Save(ctx, c)
	assert.ErrorIs(t, err, apperrors.ErrNumberTaken)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveNewCardWhenMobileNumberTaken(t *testing.T) {
	ctx, repo, mockPool := setupCardRepo(t)
	defer mockPool.Close()

	c := &card.Card{
		MobileNumber:    cardTest.MobileNumber,
		CardNumber:      cardTest.CardNumber,
		CardType:        cardTest.CardType,
		TotalLimit:      cardTest.TotalLimit,
		AmountUsed:      cardTest.AmountUsed,
		AvailableAmount: cardTest.AvailableAmount,
	}

	mockPool.ExpectQuery("INSERT INTO cards").WithArgs(
		c.CardNumber,
		c.MobileNumber,
		c.CardType,
		c.TotalLimit,
		c.AmountUsed,
		c.AvailableAmount,
	).WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "cards_mobile_number_key"})

	err := repo.Save(ctx, c)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveExistingCardWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCardRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec("UPDATE cards").WithArgs(
		cardTest.MobileNumber,
		cardTest.CardType,
		cardTest.TotalLimit,
		cardTest.AmountUsed,
		cardTest.AvailableAmount,
		cardTest.CardID,
	).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Save(ctx, cardTest)
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestSaveExistingCardWhenNotFound(t *testing.T) {
	ctx, repo, mockPool := setupCardRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec("UPDATE cards").WithArgs(
		cardTest.MobileNumber,
		cardTest.CardType,
		cardTest.TotalLimit,
		cardTest.AmountUsed,
		cardTest.AvailableAmount,
		cardTest.CardID,
	).WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Save(ctx, cardTest)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindCardByMobileNumberWhenFound(t *testing.T) {
	ctx, repo, mockPool := setupCardRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT (.+) FROM cards").WithArgs(cardTest.MobileNumber).
		WillReturnRows(pgxmock.NewRows([]string{"card_id", "card_number", "mobile_number", "card_type", "total_limit", "amount_used", "available_amount", "created_at", "updated_at"}).
			AddRow(cardTest.CardID, cardTest.CardNumber, cardTest.MobileNumber, cardTest.CardType,
				cardTest.TotalLimit, cardTest.AmountUsed, cardTest.AvailableAmount,
				cardTest.CreatedAt, cardTest.UpdatedAt))

	c, err := repo.FindByMobileNumber(ctx, cardTest.MobileNumber)
	assert.NoError(t, err)
	assert.Equal(t, cardTest.CardNumber, c.CardNumber)
	assert.True(t, c.TotalLimit.Equal(cardTest.TotalLimit))
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindCardByCardNumberWhenNotFound(t *testing.T) {
	ctx, repo, mockPool := setupCardRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery("SELECT (.+) FROM cards").WithArgs(cardTest.CardNumber).
		WillReturnError(pgx.ErrNoRows)

	c, err := repo.FindByCardNumber(ctx, cardTest.CardNumber)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestDeleteCardWhenSuccess(t *testing.T) {
	ctx, repo, mockPool := setupCardRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec("DELETE FROM cards").WithArgs(cardTest.CardID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(ctx, cardTest.CardID)
	assert.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestDeleteCardWhenNotFound(t *testing.T) {
	ctx, repo, mockPool := setupCardRepo(t)
	defer mockPool.Close()

	mockPool.ExpectExec("DELETE FROM cards").WithArgs(cardTest.CardID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(ctx, cardTest.CardID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}
