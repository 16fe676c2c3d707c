package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseDecimal parses numbers coming from the upstream fuel price feed, which
// uses a decimal comma ("1,459"). A decimal point is accepted as well.
// Empty, placeholder or malformed values report ok=false.
func ParseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0, false
	}

	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseDecimalPtr - ParseDecimal for nullable columns
func ParseDecimalPtr(s *string) *float64 {
	if s == nil {
		return nil
	}
	v, ok := ParseDecimal(*s)
	if !ok {
		return nil
	}
	return &v
}
