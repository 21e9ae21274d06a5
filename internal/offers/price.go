package offers

import "strconv"

// NormalizePrice derives the numeric ranking value for a displayed price
// string. Every decimal digit is kept in original order and the
// concatenation is parsed as a non-negative integer, so "1.299 €" becomes
// 1299 and "kaina nuo 850€" becomes 850. A string with no digits yields 0.
// The value is a sort key, not a monetary amount; decimal separators are
// deliberately not interpreted.
func NormalizePrice(display string) int {
	digits := make([]byte, 0, len(display))
	for i := 0; i < len(display); i++ {
		if c := display[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) == 0 {
		return 0
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		// Only reachable when the digit run overflows int.
		return 0
	}
	return n
}
