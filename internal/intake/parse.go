package intake

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidNumber = errors.New("not a valid number")
	ErrInvalidAnswer = errors.New("enter 1 for yes or 0 for no")
	ErrNegative      = errors.New("value cannot be negative")
	ErrNotPositive   = errors.New("value must be positive")
)

// ParseAmount reads a finite, non-negative money amount. A comma is
// accepted as the decimal separator.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidNumber
	}
	if v < 0 {
		return 0, ErrNegative
	}
	return v, nil
}

// ParsePositiveAmount is ParseAmount that also rejects zero.
func ParsePositiveAmount(s string) (float64, error) {
	v, err := ParseAmount(s)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, ErrNotPositive
	}
	return v, nil
}

func ParseCount(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidNumber
	}
	if v < 0 {
		return 0, ErrNegative
	}
	return v, nil
}

// ParseYesNo accepts exactly "1" or "0".
func ParseYesNo(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return true, nil
	case "0":
		return false, nil
	}
	return false, ErrInvalidAnswer
}
