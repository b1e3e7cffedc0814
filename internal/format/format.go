// Package format renders calculation results for display using the fr-FR
// conventions of the simulator: euros without decimals and percentages with one
// decimal, grouped with narrow no-break spaces.
package format

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	currencyPattern = "#\u202f###,"
	percentPattern  = "#\u202f###,#"
	currencySuffix  = "\u00a0€"
	percentSuffix   = "\u202f%"
)

// Currency formats an amount in euros rounded to the unit, e.g. "3 520 €".
func Currency(amount decimal.Decimal) string {
	f, _ := amount.Round(0).Float64()
	return humanize.FormatFloat(currencyPattern, f) + currencySuffix
}

// SignedCurrency is Currency with an explicit "+" on amounts at or above zero.
func SignedCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return Currency(amount)
	}
	return "+" + Currency(amount)
}

// Percent formats a value already expressed in percent, e.g. 10 -> "10,0 %".
func Percent(value decimal.Decimal) string {
	f, _ := value.Round(1).Float64()
	return humanize.FormatFloat(percentPattern, f) + percentSuffix
}
