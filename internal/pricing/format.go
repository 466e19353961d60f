package pricing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/currency"
)

// ErrFormat indicates an amount or date could not be rendered. Unknown
// currency codes are rejected rather than silently falling back to a
// default locale, so bad input surfaces at the first render instead of
// producing a document in the wrong currency.
var ErrFormat = errors.New("format error")

// longDateLayout is the fixed en-US long date style used everywhere a
// date appears, on screen and in the generated document.
const longDateLayout = "January 2, 2006"

// narrowSymbols maps common ISO 4217 codes to the symbol used in en-US
// formatting. Codes without an entry render as "<CODE> <amount>".
var narrowSymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"INR": "₹",
	"AUD": "A$",
	"CAD": "CA$",
}

// FormatCurrency renders amount as an en-US currency string, e.g.
// "$1,234.50". The code must be a valid ISO 4217 currency; anything else
// returns an error wrapping ErrFormat.
func FormatCurrency(amount float64, code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: unknown currency code %q", ErrFormat, code)
	}

	negative := amount < 0
	if negative {
		amount = -amount
	}

	symbol, ok := narrowSymbols[unit.String()]
	if !ok {
		symbol = unit.String() + " "
	}

	formatted := symbol + groupThousands(fmt.Sprintf("%.2f", amount))
	if negative {
		formatted = "-" + formatted
	}
	return formatted, nil
}

// groupThousands inserts commas into the integer part of a "%.2f"
// rendered number.
func groupThousands(raw string) string {
	intPart, decPart, _ := strings.Cut(raw, ".")

	n := len(intPart)
	if n <= 3 {
		return intPart + "." + decPart
	}

	var b strings.Builder
	first := n % 3
	if first == 0 {
		first = 3
	}
	b.WriteString(intPart[:first])
	for i := first; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + "." + decPart
}

// FormatDate renders t in the long en-US style, e.g. "March 5, 2026".
func FormatDate(t time.Time) string {
	return t.Format(longDateLayout)
}

// FormatDateString parses an ISO date ("2006-01-02" or RFC 3339) and
// renders it via FormatDate. Malformed input returns an error wrapping
// ErrFormat.
func FormatDateString(value string) (string, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return FormatDate(t), nil
		}
	}
	return "", fmt.Errorf("%w: malformed date %q", ErrFormat, value)
}
