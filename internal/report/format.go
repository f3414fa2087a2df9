package report

import (
	"math"

	money "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// HiddenMask replaces any rendered monetary string in hide-values mode.
// Fixed width, value-independent.
const HiddenMask = "••••••"

// FormatCurrency renders an amount as a Brazilian Real string with two
// decimal places and thousands separators, e.g. "R$1.234,56".
func FormatCurrency(amount decimal.Decimal) string {
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(cents, money.BRL).Display()
}

// MaskIfHidden renders the amount, or the fixed mask when hide-values mode
// is on. Masking happens strictly after arithmetic; the amount itself is
// never altered.
func MaskIfHidden(amount decimal.Decimal, hidden bool) string {
	if hidden {
		return HiddenMask
	}
	return FormatCurrency(amount)
}

// AmountFromFloat converts a float to a decimal amount at the input
// boundary. NaN and infinities degrade to zero so formatting stays total.
func AmountFromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
