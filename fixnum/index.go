// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fixnum

import (
	"math/bits"
	"strconv"
)

// An Index is an integer bounded by a modulus B, holding values in [0, B).
// Unlike Unsigned widths, the bound is an arbitrary positive integer, so
// arithmetic reduces by true modulo division, not bit masking. An Index is
// always a valid position: construction outside the bound fails instead of
// wrapping.
//
type Index struct {
	b uint64
	v uint64
}

// Idx returns the Index with the given bound and value. It returns a
// *RangeError if v is not in [0, bound). A zero bound is a programmer error
// and panics: no Index value exists under it.
//
func Idx(bound, v uint64) (Index, error) {
	if bound == 0 {
		panic("fixnum: zero Index bound")
	}
	if v >= bound {
		return Index{}, &RangeError{Value: v, Bound: bound}
	}
	return Index{b: bound, v: v}, nil
}

// MustIdx is like Idx but panics on a range error.
//
func MustIdx(bound, v uint64) Index {
	i, err := Idx(bound, v)
	if err != nil {
		panic(err)
	}
	return i
}

// Bound returns the bound of x.
//
func (x Index) Bound() uint64 { return x.b }

// Uint64 returns the represented position.
//
func (x Index) Uint64() uint64 { return x.v }

func checkSameBound(op string, a, b uint64) {
	if a != b {
		panic("fixnum: " + op + " bound mismatch: " + strconv.FormatUint(a, 10) + " vs " + strconv.FormatUint(b, 10))
	}
}

// Add returns x + y reduced modulo the bound.
//
func (x Index) Add(y Index) Index {
	checkSameBound("Add", x.b, y.b)
	s, carry := bits.Add64(x.v, y.v, 0)
	if carry != 0 || s >= x.b {
		// both operands are below the bound, so one subtraction reduces
		s -= x.b
	}
	return Index{b: x.b, v: s}
}

// Sub returns x - y reduced modulo the bound.
//
func (x Index) Sub(y Index) Index {
	checkSameBound("Sub", x.b, y.b)
	if x.v >= y.v {
		return Index{b: x.b, v: x.v - y.v}
	}
	return Index{b: x.b, v: x.b - (y.v - x.v)}
}

// Mul returns x * y reduced modulo the bound.
//
func (x Index) Mul(y Index) Index {
	checkSameBound("Mul", x.b, y.b)
	hi, lo := bits.Mul64(x.v, y.v)
	// hi < b because x.v*y.v < b^2 and b < 2^64
	_, rem := bits.Div64(hi, lo, x.b)
	return Index{b: x.b, v: rem}
}

// Cmp compares the represented positions and returns -1, 0 or +1.
//
func (x Index) Cmp(y Index) int {
	checkSameBound("Cmp", x.b, y.b)
	switch {
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	}
	return 0
}

// Resize returns x under the new bound. Narrowing an Index shrinks its legal
// value set, so a bound at or below the current value is a *RangeError, not
// a silent wrap.
//
func (x Index) Resize(bound uint64) (Index, error) {
	return Idx(bound, x.v)
}

func (x Index) String() string {
	return "idx<" + strconv.FormatUint(x.b, 10) + ">(" + strconv.FormatUint(x.v, 10) + ")"
}
