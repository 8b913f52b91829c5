package content

import (
	"strconv"
	"strings"
)

// FormatPrice converts a marketplace price value into a Brazilian currency
// string ("R$ 1.234,56"). Returns "" for non-positive amounts.
//
// Marketplace payloads encode prices scaled by 100 (cents) or by 100000 to
// avoid floating point, without saying which. The divisor is picked purely by
// magnitude: >= 100000 divides by 100000, >= 100 divides by 100, anything
// smaller passes through. This is a deliberate heuristic, not a currency
// parser; a genuine round price of exactly 100 units will be misread as a
// scaled value.
func FormatPrice(amount float64) string {
	if amount <= 0 {
		return ""
	}
	switch {
	case amount >= 100000:
		amount /= 100000
	case amount >= 100:
		amount /= 100
	}
	return "R$ " + formatBRL(amount)
}

// FormatPriceValue applies FormatPrice to a value of unknown dynamic type, as
// found in decoded JSON. Nil, non-numeric and unparseable values yield "".
func FormatPriceValue(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case float64:
		return FormatPrice(n)
	case float32:
		return FormatPrice(float64(n))
	case int:
		return FormatPrice(float64(n))
	case int64:
		return FormatPrice(float64(n))
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return ""
		}
		return FormatPrice(parsed)
	default:
		return ""
	}
}

// formatBRL renders a positive amount with two decimals, comma as the decimal
// separator and period as the thousands separator.
func formatBRL(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	return b.String() + "," + fracPart
}
