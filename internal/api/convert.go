package api

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TokenDecimals is the decimal exponent for wei-denominated amounts.
const TokenDecimals = 18

// BaseUnitsToToken converts an integer base-unit amount string to token units
// (amount / 10^decimals). Returns 0 for empty, invalid or negative input.
func BaseUnitsToToken(amount string, decimals int32) float64 {
	v, _ := baseUnitsToToken(amount, decimals)
	return v
}

// baseUnitsToToken reports whether the amount was parseable. Base-unit
// amounts exceed int64 above ~9.2 tokens at 18 decimals, so they are parsed
// as exact decimals before the float conversion.
func baseUnitsToToken(amount string, decimals int32) (float64, bool) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(amount)
	if err != nil || d.IsNegative() {
		return 0, false
	}

	f, _ := d.Shift(-decimals).Float64()
	return f, true
}
