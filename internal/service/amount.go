package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a major-unit price to paise, rounding half up.
func ToMinorUnits(price decimal.Decimal) (int64, error) {
	minor := price.Mul(hundred).Round(0)
	if !minor.IsPositive() {
		return 0, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidInput, price)
	}
	if !minor.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: amount %s out of range", ErrInvalidInput, price)
	}

	return minor.IntPart(), nil
}
