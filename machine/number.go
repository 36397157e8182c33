package machine

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses text as a float64, ignoring surrounding whitespace.
// Values too large to represent become infinities, values too small become
// zero. NaN is never accepted.
func ParseNumber(text string) (value float64, err error) {
	word := strings.TrimSpace(text)

	value, err = strconv.ParseFloat(word, 64)
	if errors.Is(err, strconv.ErrRange) {
		err = nil
	}

	if err != nil || math.IsNaN(value) {
		value = 0
		err = ErrInvalidOperand(text)
	}

	return
}

// FormatNumber renders a value the way the simulator page does: shortest
// round-trip digits, plain notation for 1e-6 <= |value| < 1e21 and exponent
// notation outside of it.
func FormatNumber(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case value == 0:
		return "0"
	}

	abs := math.Abs(value)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	text := strconv.FormatFloat(value, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(text, "e")
	sign := exponent[:1]
	digits := strings.TrimLeft(exponent[1:], "0")

	return mantissa + "e" + sign + digits
}
