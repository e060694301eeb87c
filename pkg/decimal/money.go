package decimal

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is prefixed to every formatted amount.
const CurrencySymbol = "₹"

// ErrInvalidInput is returned for malformed or non-finite numeric input.
var ErrInvalidInput = errors.New("invalid input")

// Money represents a rupee amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64.
// NaN and infinities are rejected because decimal cannot represent them.
func NewMoney(value float64) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, fmt.Errorf("%w: %v is not a finite number", ErrInvalidInput, value)
	}
	return Money{decimal.NewFromFloat(value)}, nil
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a plain numeric string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, value)
	}
	return Money{d}, nil
}

// ParseAmount parses user-entered text such as "₹12,34,567" or "1500000".
// Currency symbols, grouping commas and whitespace are stripped first.
func ParseAmount(text string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(CurrencySymbol, "", ",", "", " ", "", "\t", "").Replace(text)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", ErrInvalidInput)
	}
	m, err := NewMoneyFromString(cleaned)
	if err != nil {
		return decimal.Zero, err
	}
	return m.Decimal, nil
}

// Round rounds the amount to paise, half away from zero.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the plain two-decimal representation.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount with South Asian digit grouping, e.g. ₹12,34,567.50.
// A zero fractional part is omitted.
func (m Money) Format() string {
	r := m.Round()
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = Money{r.Decimal.Neg()}
	}
	fixed := r.Decimal.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	out := sign + CurrencySymbol + GroupIndian(intPart)
	if frac != "00" {
		out += "." + frac
	}
	return out
}

// GroupIndian inserts separators into a string of digits: the last three
// digits form one group and the rest are grouped in pairs.
func GroupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)
	return strings.Join(groups, ",")
}

// FormatINR formats a decimal amount as rupees.
func FormatINR(amount decimal.Decimal) string {
	return NewMoneyFromDecimal(amount).Format()
}

// FormatFloat formats a float64 amount as rupees.
func FormatFloat(amount float64) (string, error) {
	m, err := NewMoney(amount)
	if err != nil {
		return "", err
	}
	return m.Format(), nil
}

// FormatString parses and formats text input as rupees.
func FormatString(amount string) (string, error) {
	d, err := ParseAmount(amount)
	if err != nil {
		return "", err
	}
	return FormatINR(d), nil
}
