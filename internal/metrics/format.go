package metrics

import "strconv"

// FormatNumber prints a raw field value in its shortest round-trip form,
// so 20 prints as "20" and 1.3 as "1.3".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent prints a derived percentage with two decimals, no sign.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
