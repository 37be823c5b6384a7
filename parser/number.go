package parser

import (
	"errors"
	"strconv"
)

// numberPrefix returns the length of the longest prefix of b that is a decimal
// floating point literal: an optional sign, digits with an optional fraction
// (at least one digit overall) and an optional exponent. Zero means b does not
// start with a number.
func numberPrefix(b []byte) int {
	i := 0
	if i < len(b) && isSign(b[i]) {
		i++
	}

	mantissa := 0
	for i < len(b) && isDigit(b[i]) {
		i++
		mantissa++
	}

	if i < len(b) && b[i] == '.' {
		j := i + 1
		for j < len(b) && isDigit(b[j]) {
			j++
			mantissa++
		}
		if mantissa > 0 {
			i = j
		}
	}

	if mantissa == 0 {
		return 0
	}

	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && isSign(b[j]) {
			j++
		}
		k := j
		for k < len(b) && isDigit(b[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	return i
}

// parseNumber converts the numeric prefix of b. Out of range literals become
// ±Inf.
func parseNumber(b []byte) (float64, bool) {
	n := numberPrefix(b)
	if n == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(b[:n]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSign(c byte) bool {
	return c == '+' || c == '-'
}
