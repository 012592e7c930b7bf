package card

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultCardType = "Credit Card"
	NewCardLimit    = 100_000

	cardNumberBase = 100_000_000_000
	cardNumberSpan = 900_000_000_000
)

type Card struct {
	CardID          int64           `json:"cardId"`
	CardNumber      string          `json:"cardNumber"`
	MobileNumber    string          `json:"mobileNumber"`
	CardType        string          `json:"cardType"`
	TotalLimit      decimal.Decimal `json:"totalLimit"`
	AmountUsed      decimal.Decimal `json:"amountUsed"`
	AvailableAmount decimal.Decimal `json:"availableAmount"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// NewCard fabricates a credit card for a first-time acquisition:
// availableAmount + amountUsed == totalLimit holds at creation.
func NewCard(mobileNumber string) *Card {
	limit := decimal.NewFromInt(NewCardLimit)
	return &Card{
		CardNumber:      NewCardNumber(),
		MobileNumber:    mobileNumber,
		CardType:        DefaultCardType,
		TotalLimit:      limit,
		AmountUsed:      decimal.Zero,
		AvailableAmount: limit,
	}
}

// NewCardNumber returns a 12-digit numeric string in
// [100_000_000_000, 1_000_000_000_000).
func NewCardNumber() string {
	return strconv.FormatInt(cardNumberBase+rand.Int64N(cardNumberSpan), 10)
}
