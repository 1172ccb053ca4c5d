package coverage

import (
	"strconv"
	"strings"
)

// FormatPercent renders a percentage for the report: "0" when nothing was
// covered, otherwise the shortest decimal with at least one fractional
// digit ("80.0", "66.67").
func FormatPercent(p float64) string {
	if p == 0 {
		return "0"
	}
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
