package entities

import (
	"math/big"

	"github.com/pkg/errors"
)

// CurrencyAmount pairs a token with a raw (smallest-unit) quantity.
type CurrencyAmount struct {
	Currency *Token
	Quantity *big.Int
}

// NewCurrencyAmount creates a CurrencyAmount. The quantity must be a
// non-negative integer; it is copied so later mutation by the caller cannot
// affect the amount.
func NewCurrencyAmount(currency *Token, quantity *big.Int) (*CurrencyAmount, error) {
	if currency == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "currency cannot be nil")
	}
	if quantity == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "quantity cannot be nil")
	}
	if quantity.Sign() < 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "quantity cannot be negative")
	}
	return &CurrencyAmount{
		Currency: currency,
		Quantity: new(big.Int).Set(quantity),
	}, nil
}
