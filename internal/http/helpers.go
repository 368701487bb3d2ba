package http

import (
	"sort"
	"strconv"
	"strings"

	"finai/internal/advisor"
)

// sanitizeInput trims whitespace and drops control characters other than
// tab and newlines.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		return r
	}, s)
}

// recommendationKey identifies an input for the memo cache. Goals are
// order-insensitive.
func recommendationKey(in advisor.Input) string {
	goals := append([]string(nil), in.Goals...)
	sort.Strings(goals)
	return strings.Join([]string{
		string(in.RiskTolerance),
		strconv.Itoa(in.Age),
		strconv.FormatFloat(in.MonthlySavings, 'g', -1, 64),
		strings.Join(goals, ","),
	}, "|")
}
