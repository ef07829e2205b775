package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ParseRawAmount parses the digits typed into a currency input. The digits are cents, so
// "5000" is 50.00. Only positive amounts are valid.
func ParseRawAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: no digits", ErrInvalidAmount)
	}

	for _, r := range raw {
		if r < '0' || r > '9' {
			return decimal.Zero, fmt.Errorf("%w: %q is not a number of cents", ErrInvalidAmount, raw)
		}
	}

	cents, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	if !cents.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidAmount, raw)
	}

	return cents.Div(hundred), nil
}
