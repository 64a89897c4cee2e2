package stribot

import (
	"strconv"
	"strings"
)

// ParseDecimal converts a decimal string that uses either '.' or ',' as the
// decimal mark into a float64. The string may carry a single leading sign.
// Returns EPARSE for strings without digits, with more than one separator,
// or with any other character.
func ParseDecimal(s string) (float64, error) {
	var digits, separators int
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.' || r == ',':
			separators++
		case (r == '-' || r == '+') && i == 0:
		default:
			return 0, Errorf(EPARSE, "invalid character %q in decimal %q", r, s)
		}
	}
	if digits == 0 {
		return 0, Errorf(EPARSE, "no digits in decimal %q", s)
	}
	if separators > 1 {
		return 0, Errorf(EPARSE, "multiple separators in decimal %q", s)
	}

	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, Wrap(EPARSE, err, "invalid decimal %q", s)
	}
	return v, nil
}
