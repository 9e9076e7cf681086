package domain

import (
	"strconv"
	"strings"
)

// SanitizeInt coerces free-form text into an integer. Thousands separators and
// currency markers are stripped, decimals are truncated. Anything that still
// fails to parse degrades to def instead of surfacing an error.
func SanitizeInt(s string, def int) int {
	f, ok := parseNumeric(s)
	if !ok {
		return def
	}
	return int(f)
}

// SanitizeFloat is SanitizeInt without the truncation.
func SanitizeFloat(s string, def float64) float64 {
	f, ok := parseNumeric(s)
	if !ok {
		return def
	}
	return f
}

func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
