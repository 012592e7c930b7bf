package card_test

import (
	"testing"

	"natrix-bank/internal/domain/card"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewCard(t *testing.T) {
	c := card.NewCard("0943210987")

	assert.NotNil(t, c)
	assert.Equal(t, "0943210987", c.MobileNumber)
	assert.Equal(t, card.DefaultCardType, c.CardType)
	assert.Len(t, c.CardNumber, 12)
	assert.True(t, c.TotalLimit.Equal(decimal.NewFromInt(card.NewCardLimit)))
	assert.True(t, c.AmountUsed.IsZero())
	assert.True(t, c.AvailableAmount.Equal(c.TotalLimit))

	// availableAmount + amountUsed == totalLimit must hold at creation.
	assert.True(t, c.AvailableAmount.Add(c.AmountUsed).Equal(c.TotalLimit))
}

func TestNewCardNumberStaysTwelveDigits(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := card.NewCardNumber()
		assert.Len(t, n, 12)
		assert.NotEqual(t, '0', rune(n[0]))
	}
}
