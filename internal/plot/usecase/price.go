package usecase

import "strings"

// FormatPrice strips non-digit characters and regroups the digits with
// thousands separators, e.g. "1234567" -> "1,234,567". Used to echo the
// price back to the form as the user types.
func FormatPrice(value string) string {
	var digits []byte
	for i := 0; i < len(value); i++ {
		if value[i] >= '0' && value[i] <= '9' {
			digits = append(digits, value[i])
		}
	}
	if len(digits) == 0 {
		return ""
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.Write(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.Write(digits[i : i+3])
	}
	return b.String()
}

// ParsePrice strips everything but digits and parses the remainder as an
// integer. "TBD", the empty string, and any other non-numeric input all
// resolve to 0 ("price unset"), never to an error.
func ParsePrice(formatted string) int64 {
	var n int64
	seen := false
	for i := 0; i < len(formatted); i++ {
		c := formatted[i]
		if c < '0' || c > '9' {
			continue
		}
		seen = true
		n = n*10 + int64(c-'0')
	}
	if !seen {
		return 0
	}
	return n
}

// PriceUnset reports whether the raw price input is the "TBD" sentinel,
// meaning the seller has not committed to a figure yet.
func PriceUnset(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "tbd")
}
