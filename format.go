package numinput

import (
	"strconv"
	"strings"
)

// FormatValue formats v the way a resolved field displays it: with the
// number of decimal places the step implies, or rounded to at most
// DefaultMaxDecimals places and trimmed to the shortest form when the step
// gives no precision ("", "any", or anything that is not a number).
func FormatValue(v float64, step string) string {
	if d, ok := stepDecimals(step); ok {
		return formatFixed(v, d)
	}
	return trimDecimals(v, DefaultMaxDecimals)
}

// stepDecimals infers the number of decimal places from a field's step
// attribute. The count is taken from the step's text, so "0.50" implies two
// places even though it equals 0.5.
func stepDecimals(step string) (int, bool) {
	step = strings.TrimSpace(step)
	if step == "" || strings.EqualFold(step, "any") {
		return 0, false
	}
	if _, err := strconv.ParseFloat(step, 64); err != nil {
		return 0, false
	}
	if i := strings.IndexByte(step, '.'); i >= 0 {
		return len(step) - i - 1, true
	}
	return 0, true
}

// formatFixed renders v with exactly d decimal places. A zero result drops
// its sign so that fields never display -0.
func formatFixed(v float64, d int) string {
	if d < 0 {
		d = 0
	}
	s := strconv.FormatFloat(v, 'f', d, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		s = s[1:]
	}
	return s
}

// trimDecimals renders v with at most max decimal places, trimming trailing
// zeros and a trailing dot.
func trimDecimals(v float64, max int) string {
	s := formatFixed(v, max)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
