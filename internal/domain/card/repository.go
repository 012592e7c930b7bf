package card

import "context"

// Repository is the cards identity store: at most one card per mobile
// number, looked up either by owner (mobile number) or by the generated
// card number.
type Repository interface {
	ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error)

	// Save inserts when CardID is zero and updates otherwise.
	Save(ctx context.Context, c *Card) error

	FindByMobileNumber(ctx context.Context, mobileNumber string) (*Card, error)

	FindByCardNumber(ctx context.Context, cardNumber string) (*Card, error)

	Delete(ctx context.Context, cardID int64) error
}
