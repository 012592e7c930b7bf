package dto

import (
	"natrix-bank/internal/domain/card"

	"github.com/shopspring/decimal"
)

// CardDto is both the cards update payload and the fetch view.
type CardDto struct {
	MobileNumber    string          `json:"mobileNumber" validate:"required,mobilenum"`
	CardNumber      string          `json:"cardNumber" validate:"required,len=12,number"`
	CardType        string          `json:"cardType" validate:"required"`
	TotalLimit      decimal.Decimal `json:"totalLimit"`
	AmountUsed      decimal.Decimal `json:"amountUsed"`
	AvailableAmount decimal.Decimal `json:"availableAmount"`
}

func (d *CardDto) Validate() error {
	if err := validate.Struct(d); err != nil {
		return asFieldErrors(err)
	}
	return nil
}

func NewCardDto(c *card.Card) CardDto {
	if c == nil {
		return CardDto{}
	}
	return CardDto{
		MobileNumber:    c.MobileNumber,
		CardNumber:      c.CardNumber,
		CardType:        c.CardType,
		TotalLimit:      c.TotalLimit,
		AmountUsed:      c.AmountUsed,
		AvailableAmount: c.AvailableAmount,
	}
}

func (d *CardDto) ToDomain() *card.Card {
	return &card.Card{
		MobileNumber:    d.MobileNumber,
		CardNumber:      d.CardNumber,
		CardType:        d.CardType,
		TotalLimit:      d.TotalLimit,
		AmountUsed:      d.AmountUsed,
		AvailableAmount: d.AvailableAmount,
	}
}
