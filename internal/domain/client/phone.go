package client

import "strings"

const defaultCountryCode = "55"

// NormalizePhone reduces a phone to its national digits so that "(21) 99999-9999",
// "(021) 99999-9999", "+55 21 99999-9999" and "5521999999999" compare equal.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	digits = strings.TrimPrefix(digits, "00")
	if strings.HasPrefix(digits, defaultCountryCode) && (len(digits) == 12 || len(digits) == 13) {
		digits = digits[len(defaultCountryCode):]
	}
	// trunk prefix before the area code
	if strings.HasPrefix(digits, "0") && (len(digits) == 11 || len(digits) == 12) {
		digits = digits[1:]
	}
	return digits
}

func SamePhone(a, b string) bool {
	na := NormalizePhone(a)
	return na != "" && na == NormalizePhone(b)
}
