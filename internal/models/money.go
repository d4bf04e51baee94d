package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Amounts are stored as NUMERIC(10,2).
const AmountScale = 2

var maxAmount = decimal.New(1, 10-AmountScale)

var (
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrAmountPrecision = errors.New("amount must have at most 2 decimal places")
	ErrAmountTooLarge  = errors.New("amount must be less than 100000000")
)

func ValidateAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return ErrNegativeAmount
	}
	if !d.Equal(d.Truncate(AmountScale)) {
		return ErrAmountPrecision
	}
	if d.GreaterThanOrEqual(maxAmount) {
		return ErrAmountTooLarge
	}

	return nil
}
