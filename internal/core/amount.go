// Package core holds the expense domain model and input parsing.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts a user-entered amount string to a positive decimal.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// rounds to two decimal places. Signed, zero, empty and non-finite inputs
// are rejected with ErrInvalidAmount: the entry form never produces a
// record with a non-positive amount.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		// Only unsigned positive values allowed
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return math.Round(v*100) / 100, nil
}
