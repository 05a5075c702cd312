package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParsePriceToCents parses a decimal price string ("5000.50") into currency
// minor units. Amounts are stored as int64 cents everywhere to avoid
// floating-point drift.
func ParsePriceToCents(price string) (int64, error) {
	d, err := decimal.NewFromString(price)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", price, err)
	}
	if d.Exponent() < -2 {
		return 0, fmt.Errorf("invalid price %q: more than two decimal places", price)
	}
	cents := d.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() {
		return 0, fmt.Errorf("invalid price %q: not representable in cents", price)
	}
	return cents.IntPart(), nil
}

// FloatToCents converts a provider-reported float amount into minor units,
// rounding half away from zero. Used only at the provider boundary; local
// records never hold float money.
func FloatToCents(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CentsToFloat converts minor units into the float major-unit amount the
// provider API expects on the wire.
func CentsToFloat(cents int64) float64 {
	f, _ := decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).Float64()
	return f
}

// FormatCents renders minor units as a major-unit decimal string
func FormatCents(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}
