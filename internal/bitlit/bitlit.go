// Package bitlit scans sized bit literals of the form width'base digits,
// e.g. "8'b1010_x01x", "12'hABC", "8'd200", or a bare run of binary digits.
//
package bitlit

import (
	"github.com/pkg/errors"
)

// A Lit is a scanned literal. Width is -1 when the literal carries no size
// prefix. Base is 2, 10 or 16. Digits holds the significant digits, most
// significant first, with separators removed; in base 2 and 16 a digit may
// be 'x' (unknown).
//
type Lit struct {
	Width  int
	Base   int
	Digits string
}

func scanError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}

func isDigit(r byte) bool { return '0' <= r && r <= '9' }

func digitVal(r byte) (int, bool) {
	switch {
	case isDigit(r):
		return int(r - '0'), true
	case 'a' <= r && r <= 'f':
		return int(r-'a') + 10, true
	case 'A' <= r && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

func validDigit(base int, r byte) bool {
	if r == 'x' || r == 'X' {
		return base == 2 || base == 16
	}
	v, ok := digitVal(r)
	return ok && v < base
}

// Scan parses a bit literal.
//
func Scan(s string) (Lit, error) {
	l := Lit{Width: -1, Base: 2}
	i := 0
	// optional size prefix
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '\'' {
		if i == 0 {
			return l, scanError(s, 0, "missing width before '")
		}
		w := 0
		for _, r := range s[:i] {
			w = w*10 + int(r-'0')
			if w > 1<<20 {
				return l, scanError(s, 0, "width too large")
			}
		}
		l.Width = w
		i++
		if i >= len(s) {
			return l, scanError(s, i, "missing base specifier")
		}
		switch s[i] {
		case 'b', 'B':
			l.Base = 2
		case 'd', 'D':
			l.Base = 10
		case 'h', 'H':
			l.Base = 16
		default:
			return l, scanError(s, i, "invalid base specifier "+string(s[i]))
		}
		i++
	} else {
		// bare binary literal
		i = 0
	}
	digits := make([]byte, 0, len(s)-i)
	for ; i < len(s); i++ {
		r := s[i]
		if r == '_' {
			if len(digits) == 0 {
				return l, scanError(s, i, "literal starts with separator")
			}
			continue
		}
		if !validDigit(l.Base, r) {
			return l, scanError(s, i, "invalid digit "+string(r))
		}
		if r == 'X' {
			r = 'x'
		}
		digits = append(digits, r)
	}
	if len(digits) == 0 {
		return l, scanError(s, len(s), "empty literal")
	}
	l.Digits = string(digits)
	return l, nil
}

// DigitVal returns the numeric value of a non-x digit.
//
func DigitVal(r byte) int {
	v, _ := digitVal(r)
	return v
}
