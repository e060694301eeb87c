package output

import (
	money "github.com/rpgo/slabtax/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as rupees with South Asian grouping.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.FormatINR(amount) }

// FormatRate formats a fractional rate such as 0.05 as "5%".
func FormatRate(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).Round(2).String() + "%"
}

// FormatSlabRate renders a zero rate as "Nil", matching the published tables.
func FormatSlabRate(rate decimal.Decimal) string {
	if rate.IsZero() {
		return "Nil"
	}
	return FormatRate(rate)
}
