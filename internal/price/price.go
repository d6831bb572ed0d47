// Package price formats monetary amounts the way Argentine storefronts
// display them: thousands grouped with "." and decimals after ",".
package price

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OnRequestLabel is shown when an amount is unknown
const OnRequestLabel = "Consultar"

// Format renders an amount as e.g. "1.234,56"
func Format(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ".") + "," + decPart
	if negative {
		out = "-" + out
	}
	return out
}

// FormatCurrency renders an amount with the currency sign, e.g. "$1.234,56"
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + Format(amount)
}
