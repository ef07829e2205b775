package httputil

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer  = message.NewPrinter(language.BrazilianPortuguese)
	maxInt64 = decimal.NewFromInt(1<<63 - 1)
)

// FormatBRL formats an amount as Brazilian reais, e.g. "R$ 1.234,56".
func FormatBRL(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}

	rounded := amount.Abs().Round(2)
	fixed := rounded.StringFixed(2)
	cents := fixed[len(fixed)-2:]

	return sign + "R$ " + groupThousands(rounded.Truncate(0)) + "," + cents
}

// groupThousands writes a non-negative integer with "." between groups of three digits.
func groupThousands(whole decimal.Decimal) string {
	if whole.LessThanOrEqual(maxInt64) {
		return printer.Sprintf("%d", whole.IntPart())
	}

	digits := whole.String()
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return b.String()
}
