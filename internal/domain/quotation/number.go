package quotation

import (
	"fmt"
	"strconv"
	"strings"
)

// SequenceName is the counter that feeds quotation numbers.
const SequenceName = "quotation"

const numberPrefix = "QT"

// FormatNumber renders a sequence value as QT plus at least six zero-padded digits.
func FormatNumber(seq int64) string {
	return fmt.Sprintf("%s%06d", numberPrefix, seq)
}

// ParseNumber accepts only strings FormatNumber could have produced.
func ParseNumber(s string) (int64, error) {
	digits, ok := strings.CutPrefix(s, numberPrefix)
	if !ok || len(digits) < 6 {
		return 0, ErrInvalidNumber
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, ErrInvalidNumber
		}
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n < 1 {
		return 0, ErrInvalidNumber
	}
	if FormatNumber(n) != s {
		return 0, ErrInvalidNumber
	}
	return n, nil
}
