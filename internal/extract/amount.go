package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var reAmountToken = regexp.MustCompile(`-?(?:Rp\.?\s*)?\d[\d.,]*`)

// parseAmount reads a monetary value in either Indonesian ("15.000,50") or
// western ("15,000.50") formatting. Returns false when no number is present.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	m := reAmountToken.FindString(s)
	if m == "" {
		return 0, false
	}
	neg := strings.HasPrefix(m, "-")
	m = strings.TrimPrefix(m, "-")
	m = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(m, "Rp."), "Rp"))

	lastDot := strings.LastIndex(m, ".")
	lastComma := strings.LastIndex(m, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			// 1.234.567,89 — dots are grouping, comma is decimal
			m = strings.ReplaceAll(m, ".", "")
			m = strings.Replace(m, ",", ".", 1)
		} else {
			// 1,234,567.89
			m = strings.ReplaceAll(m, ",", "")
		}
	case lastComma >= 0:
		if len(m)-lastComma-1 == 2 {
			// decimal comma: 1234,56
			m = strings.Replace(m, ",", ".", 1)
		} else {
			m = strings.ReplaceAll(m, ",", "")
		}
	case lastDot >= 0:
		if len(m)-lastDot-1 == 3 {
			// grouping dot: 15.000
			m = strings.ReplaceAll(m, ".", "")
		}
	}

	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// lastAmountIn scans a line right-to-left for the trailing monetary value.
func lastAmountIn(line string) (float64, bool) {
	matches := reAmountToken.FindAllString(line, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		if v, ok := parseAmount(matches[i]); ok {
			return v, true
		}
	}
	return 0, false
}
