// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fixnum

import "strconv"

// An Unsigned is an unsigned integer of a fixed bit width W, holding values
// in [0, 2^W).
//
type Unsigned struct {
	w int
	v uint64
}

// U returns the W bit unsigned value of x. Out of range values are reduced
// into [0, 2^W) by truncation to the low-order W bits, matching hardware
// literal truncation. U panics if w is not in [0, 64].
//
func U(w int, x int64) Unsigned {
	checkWidth(w)
	return Unsigned{w: w, v: uint64(x) & mask(w)}
}

// MaxU returns the largest W bit unsigned value (all ones).
//
func MaxU(w int) Unsigned {
	checkWidth(w)
	return Unsigned{w: w, v: mask(w)}
}

// Width returns the bit width of x.
//
func (x Unsigned) Width() int { return x.w }

// Uint64 returns the represented integer.
//
func (x Unsigned) Uint64() uint64 { return x.v }

// Add returns x + y reduced modulo 2^W. Operand widths must match.
//
func (x Unsigned) Add(y Unsigned) Unsigned {
	checkSameWidth("Add", x.w, y.w)
	return Unsigned{w: x.w, v: (x.v + y.v) & mask(x.w)}
}

// Sub returns x - y reduced modulo 2^W.
//
func (x Unsigned) Sub(y Unsigned) Unsigned {
	checkSameWidth("Sub", x.w, y.w)
	return Unsigned{w: x.w, v: (x.v - y.v) & mask(x.w)}
}

// Mul returns x * y reduced modulo 2^W.
//
func (x Unsigned) Mul(y Unsigned) Unsigned {
	checkSameWidth("Mul", x.w, y.w)
	return Unsigned{w: x.w, v: (x.v * y.v) & mask(x.w)}
}

// SatAdd returns x + y clamped to 2^W - 1 instead of wrapping. Saturation
// is a distinct operation; Add always wraps.
//
func (x Unsigned) SatAdd(y Unsigned) Unsigned {
	checkSameWidth("SatAdd", x.w, y.w)
	s := x.v + y.v
	if s < x.v || s > mask(x.w) {
		s = mask(x.w)
	}
	return Unsigned{w: x.w, v: s}
}

// SatSub returns x - y clamped to 0 instead of wrapping.
//
func (x Unsigned) SatSub(y Unsigned) Unsigned {
	checkSameWidth("SatSub", x.w, y.w)
	if y.v >= x.v {
		return Unsigned{w: x.w}
	}
	return Unsigned{w: x.w, v: x.v - y.v}
}

// Cmp compares the represented integers and returns -1, 0 or +1.
//
func (x Unsigned) Cmp(y Unsigned) int {
	checkSameWidth("Cmp", x.w, y.w)
	switch {
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	}
	return 0
}

// Resize returns x as a W2 bit value. Widening zero extends and preserves
// the represented integer; narrowing keeps the low-order W2 bits, which may
// change the represented value.
//
func (x Unsigned) Resize(w2 int) Unsigned {
	checkWidth(w2)
	return Unsigned{w: w2, v: x.v & mask(w2)}
}

func (x Unsigned) String() string {
	return strconv.Itoa(x.w) + "'d" + strconv.FormatUint(x.v, 10)
}
