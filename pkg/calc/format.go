package calc

import (
	"math"
	"strconv"
	"strings"
)

// Magnitudes outside [plainMin, plainMax) are written in exponent form.
const (
	plainMin = 1e-7
	plainMax = 1e21
)

// FormatNumber renders v with the shortest digits that round-trip to the
// same float64. Plain notation is used for 1e-7 <= |v| < 1e21, exponent
// notation ("1e+21", "1.5e-8") otherwise. Negative zero prints as "0".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= plainMin && abs < plainMax {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// strconv pads the exponent to two digits; drop the padding.
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// ParseNumber reads an operand. It accepts decimal numerals with an
// optional leading minus, an optional fraction and an optional exponent,
// and rejects anything that is not a finite number.
func ParseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c == '.', c == 'e', c == 'E':
		case c == '-' || c == '+':
			// Only as the leading sign or the exponent sign.
			if i != 0 && s[i-1] != 'e' && s[i-1] != 'E' {
				return 0, false
			}
		default:
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
