// Package numeric parses the numeric literals found in element data cells.
// The source pages write scientific notation as "1.8×10-10" (the exponent
// lives in a <sup> that flattens into the text), so the parser rewrites
// that marker to "e" and then reads the longest valid prefix, ignoring
// whatever unit text follows the number.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Number is a parsed numeric value. NaN is the "no valid number" sentinel.
type Number float64

// NaN returns the not-a-number sentinel.
func NaN() Number {
	return Number(math.NaN())
}

// IsNaN reports whether n is the not-a-number sentinel.
func (n Number) IsNaN() bool {
	return math.IsNaN(float64(n))
}

// Float returns n as a float64.
func (n Number) Float() float64 {
	return float64(n)
}

// Int returns n truncated toward zero. The result is undefined for NaN.
func (n Number) Int() int64 {
	return int64(math.Trunc(float64(n)))
}

// MarshalJSON encodes NaN and infinities as null and integral values
// without an exponent.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

// notation folds the site's ×10 marker and superscript glyphs into a
// plain exponential literal.
var notation = strings.NewReplacer(
	"×10^", "e",
	"×10", "e",
	"−", "-",
	"⁻", "-", "⁺", "+",
	"⁰", "0", "¹", "1", "²", "2", "³", "3", "⁴", "4",
	"⁵", "5", "⁶", "6", "⁷", "7", "⁸", "8", "⁹", "9",
)

// Normalize rewrites every ×10 marker in text to "e".
func Normalize(text string) string {
	return notation.Replace(text)
}

// Parse reads the longest numeric prefix of text. With integral set the
// parsed value is truncated toward zero. Text without a numeric prefix
// yields NaN.
func Parse(text string, integral bool) Number {
	prefix := scanPrefix(Normalize(text))
	if prefix == "" {
		return NaN()
	}

	var f float64
	switch strings.TrimLeft(prefix, "+-") {
	case "Infinity":
		f = math.Inf(1)
		if prefix[0] == '-' {
			f = math.Inf(-1)
		}
	default:
		var err error
		f, err = strconv.ParseFloat(prefix, 64)
		if err != nil && !isRangeErr(err) {
			return NaN()
		}
	}

	if integral {
		f = math.Trunc(f)
	}
	return Number(f)
}

// ParseFloat is Parse(text, false).
func ParseFloat(text string) Number {
	return Parse(text, false)
}

// ParseInt is Parse(text, true).
func ParseInt(text string) Number {
	return Parse(text, true)
}

func isRangeErr(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

// scanPrefix returns the longest prefix of s (after leading whitespace)
// that is a decimal literal with an optional exponent.
func scanPrefix(s string) string {
	s = strings.TrimLeft(s, " \t\n\r\f\v ")
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return s[:i+len("Infinity")]
	}

	intDigits := countDigits(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return ""
	}

	// The exponent only counts when at least one digit follows.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if n := countDigits(s[j:]); n > 0 {
			i = j + n
		}
	}
	return s[:i]
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
