package utils

import (
	"github.com/shopspring/decimal"
)

// Money converts an amount to a decimal rounded to cents
func Money(num float64) decimal.Decimal {
	return decimal.NewFromFloat(num).Round(MoneyPlaces)
}

// FormatTotal renders a total as the currency symbol followed by its whole units.
// The fractional part is truncated, not rounded.
func FormatTotal(symbol string, total float64) string {
	return symbol + decimal.NewFromFloat(total).Truncate(0).String()
}
