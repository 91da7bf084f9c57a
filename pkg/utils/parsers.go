package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidPassengerCount = errors.New("invalid passenger count")

type InvalidPassengerCountError struct {
	Input string
	Err   error
}

func (e *InvalidPassengerCountError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidPassengerCount, e.Input)
}

func (e *InvalidPassengerCountError) Unwrap() []error {
	return []error{ErrInvalidPassengerCount, e.Err}
}

// ParsePassengerCount takes a signed decimal in any script's digits, 32-bit range.
func ParsePassengerCount(input string) (int, error) {
	n, err := strconv.ParseInt(asciiDigits(input), 10, 32)
	if err != nil {
		return 0, &InvalidPassengerCountError{Input: input, Err: err}
	}
	return int(n), nil
}

func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			if d, ok := digitValue(r); ok {
				return '0' + rune(d)
			}
		}
		return r
	}, s)
}

// Nd ranges are runs of whole 0-9 sequences, each starting at a zero.
func digitValue(r rune) (int, bool) {
	for _, rg := range unicode.Nd.R16 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi && rg.Stride == 1 {
			return int(r-lo) % 10, true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi && rg.Stride == 1 {
			return int(r-lo) % 10, true
		}
	}
	return 0, false
}
