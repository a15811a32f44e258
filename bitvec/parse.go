// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitvec

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/benreynwar/clash-prelude/internal/bitlit"
)

// Parse builds a vector from a sized literal string.
//
// Supported forms:
//
//	"1010x1"     bare binary, width = digit count
//	"4'b10x0"    sized binary; 'x' digits are unknown bits
//	"8'hf3"      sized hexadecimal; an 'x' digit is four unknown bits
//	"8'd200"     sized decimal
//
// Digits are written most significant first and may be grouped with '_'.
// A sized literal wider than its digits is zero extended; a narrower one is
// truncated to its low-order bits, matching hardware literal truncation.
//
func Parse(s string) (Vec, error) {
	l, err := bitlit.Scan(s)
	if err != nil {
		return Vec{}, errors.Wrap(err, "parse bit literal")
	}
	var v Vec
	switch l.Base {
	case 2:
		v = New(len(l.Digits))
		for i := 0; i < len(l.Digits); i++ {
			// digit 0 is the most significant
			v.set(len(l.Digits)-1-i, binDigit(l.Digits[i]))
		}
	case 16:
		v = New(4 * len(l.Digits))
		for i := 0; i < len(l.Digits); i++ {
			lo := 4 * (len(l.Digits) - 1 - i)
			if l.Digits[i] == 'x' {
				for b := 0; b < 4; b++ {
					v.set(lo+b, X)
				}
				continue
			}
			d := bitlit.DigitVal(l.Digits[i])
			for b := 0; b < 4; b++ {
				v.set(lo+b, Bit(d>>uint(b)&1))
			}
		}
	case 10:
		var n uint64
		for i := 0; i < len(l.Digits); i++ {
			d := uint64(bitlit.DigitVal(l.Digits[i]))
			hi, lo := bits.Mul64(n, 10)
			if hi != 0 || lo+d < lo {
				return Vec{}, errors.Errorf("parse bit literal: %q overflows 64 bits", s)
			}
			n = lo + d
		}
		w := l.Width
		if w < 0 {
			w = bits.Len64(n)
		}
		return FromUint64(w, n), nil
	}
	if l.Width < 0 || l.Width == v.n {
		return v, nil
	}
	// resize to the declared width
	if l.Width < v.n {
		return v.Slice(0, l.Width), nil
	}
	return Cat(New(l.Width-v.n), v), nil
}

// MustParse is like Parse but panics on error. It simplifies literals in
// tests and package level variables.
//
func MustParse(s string) Vec {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func binDigit(r byte) Bit {
	switch r {
	case '0':
		return Zero
	case '1':
		return One
	}
	return X
}
