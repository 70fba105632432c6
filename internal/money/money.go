// Package money parses user-submitted currency amounts into fixed-point
// values with two fractional digits.
package money

import (
	"errors"
	"regexp"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when an amount is not numeric after currency
// formatting characters are stripped.
var ErrInvalidAmount = errors.New("invalid amount")

var formatting = regexp.MustCompile(`[^0-9.]+`)

// ParseAmount converts a submitted amount like "$2,503.50" or "600" into a
// two-decimal fixed-point value. Currency symbols, spaces, and thousands
// separators are stripped before parsing; whatever remains must be a plain
// decimal number.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := formatting.ReplaceAllString(raw, "")
	if cleaned == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d.Round(2), nil
}

// IsValidAmount reports whether raw parses as an amount.
func IsValidAmount(raw string) bool {
	_, err := ParseAmount(raw)
	return err == nil
}
