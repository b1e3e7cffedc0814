package scenario

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// maxExponent bounds the exponent part of a form value.
	maxExponent = 20
	// maxIntegerDigits bounds the integer digits of a form value once its exponent is applied.
	maxIntegerDigits = 30
	// maxFractionDigits is where longer fractions are truncated.
	maxFractionDigits = 20
)

// ParseDecimal reads a form value leniently: leading whitespace is skipped and the
// longest numeric prefix is used, so "12abc" is 12. Values without any numeric
// prefix are zero, and so are values whose exponent exceeds maxExponent or whose
// magnitude exceeds maxIntegerDigits digits.
func ParseDecimal(raw string) decimal.Decimal {
	s := strings.TrimLeft(raw, " \t\r\n")
	sign, i := readSign(s)

	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart := s[intStart:i]

	var fracPart string
	if i < len(s) && s[i] == '.' {
		fracStart := i + 1
		j := fracStart
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracPart = s[fracStart:j]
		if len(fracPart) > maxFractionDigits {
			fracPart = fracPart[:maxFractionDigits]
		}
		i = j
	}
	if intPart == "" && fracPart == "" {
		return decimal.Zero
	}
	if intPart == "" {
		intPart = "0"
	}

	num := sign + intPart
	if fracPart != "" {
		num += "." + fracPart
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		rest := s[i+1:]
		expSign, j := readSign(rest)
		expStart := j
		for j < len(rest) && isDigit(rest[j]) {
			j++
		}
		if digits := rest[expStart:j]; digits != "" {
			exp, ok := boundedExponent(expSign + digits)
			if !ok {
				return decimal.Zero
			}
			num += "e" + strconv.Itoa(exp)
			if len(strings.TrimLeft(intPart, "0"))+exp > maxIntegerDigits {
				return decimal.Zero
			}
		}
	}
	if len(strings.TrimLeft(intPart, "0")) > maxIntegerDigits {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseInt reads the leading integer of a form value: "3.7" is 3 and "abc" is 0.
// Integers that overflow int64 are 0 as well.
func ParseInt(raw string) int64 {
	s := strings.TrimLeft(raw, " \t\r\n")
	sign, i := readSign(s)
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return 0
	}
	n, err := strconv.ParseInt(sign+s[start:i], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func boundedExponent(raw string) (int, bool) {
	exp, err := strconv.Atoi(raw)
	if err != nil || exp > maxExponent || exp < -maxExponent {
		return 0, false
	}
	return exp, true
}

func readSign(s string) (string, int) {
	if len(s) > 0 {
		switch s[0] {
		case '-':
			return "-", 1
		case '+':
			return "", 1
		}
	}
	return "", 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
