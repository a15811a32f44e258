// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package fixnum

import "strconv"

// A Signed is a two's complement integer of a fixed bit width W, holding
// values in [-2^(W-1), 2^(W-1)).
//
type Signed struct {
	w int
	v int64
}

// reduceSigned maps the low w bits of raw onto the signed range.
//
func reduceSigned(w int, raw uint64) int64 {
	if w == 0 {
		return 0
	}
	raw &= mask(w)
	if raw&(1<<uint(w-1)) != 0 {
		return int64(raw | ^mask(w))
	}
	return int64(raw)
}

// S returns the W bit signed value of x. Out of range values are reduced
// into [-2^(W-1), 2^(W-1)) by truncation to the low-order W bits followed by
// sign extension. S panics if w is not in [0, 64].
//
func S(w int, x int64) Signed {
	checkWidth(w)
	return Signed{w: w, v: reduceSigned(w, uint64(x))}
}

// MaxS returns the largest W bit signed value, 2^(W-1) - 1.
//
func MaxS(w int) Signed {
	checkWidth(w)
	if w == 0 {
		return Signed{}
	}
	return Signed{w: w, v: int64(mask(w - 1))}
}

// MinS returns the smallest W bit signed value, -2^(W-1).
//
func MinS(w int) Signed {
	checkWidth(w)
	if w == 0 {
		return Signed{}
	}
	return Signed{w: w, v: -int64(mask(w-1)) - 1}
}

// Width returns the bit width of x.
//
func (x Signed) Width() int { return x.w }

// Int64 returns the represented integer.
//
func (x Signed) Int64() int64 { return x.v }

// Add returns x + y reduced into the signed range (wraparound on overflow).
//
func (x Signed) Add(y Signed) Signed {
	checkSameWidth("Add", x.w, y.w)
	return Signed{w: x.w, v: reduceSigned(x.w, uint64(x.v)+uint64(y.v))}
}

// Sub returns x - y reduced into the signed range.
//
func (x Signed) Sub(y Signed) Signed {
	checkSameWidth("Sub", x.w, y.w)
	return Signed{w: x.w, v: reduceSigned(x.w, uint64(x.v)-uint64(y.v))}
}

// Mul returns x * y reduced into the signed range.
//
func (x Signed) Mul(y Signed) Signed {
	checkSameWidth("Mul", x.w, y.w)
	return Signed{w: x.w, v: reduceSigned(x.w, uint64(x.v)*uint64(y.v))}
}

// SatAdd returns x + y clamped to the signed range instead of wrapping.
//
func (x Signed) SatAdd(y Signed) Signed {
	checkSameWidth("SatAdd", x.w, y.w)
	s := reduceSigned(x.w, uint64(x.v)+uint64(y.v))
	if y.v > 0 && s < x.v {
		return MaxS(x.w)
	}
	if y.v < 0 && s > x.v {
		return MinS(x.w)
	}
	return Signed{w: x.w, v: s}
}

// SatSub returns x - y clamped to the signed range instead of wrapping.
//
func (x Signed) SatSub(y Signed) Signed {
	checkSameWidth("SatSub", x.w, y.w)
	s := reduceSigned(x.w, uint64(x.v)-uint64(y.v))
	if y.v < 0 && s < x.v {
		return MaxS(x.w)
	}
	if y.v > 0 && s > x.v {
		return MinS(x.w)
	}
	return Signed{w: x.w, v: s}
}

// Cmp compares the represented integers and returns -1, 0 or +1.
//
func (x Signed) Cmp(y Signed) int {
	checkSameWidth("Cmp", x.w, y.w)
	switch {
	case x.v < y.v:
		return -1
	case x.v > y.v:
		return 1
	}
	return 0
}

// Resize returns x as a W2 bit value. Widening sign extends and preserves
// the represented integer; narrowing keeps the low-order W2 bits reduced
// into the new signed range, which may change the represented value.
//
func (x Signed) Resize(w2 int) Signed {
	checkWidth(w2)
	return Signed{w: w2, v: reduceSigned(w2, uint64(x.v))}
}

func (x Signed) String() string {
	if x.v < 0 {
		return "-" + strconv.Itoa(x.w) + "'sd" + strconv.FormatInt(-x.v, 10)
	}
	return strconv.Itoa(x.w) + "'sd" + strconv.FormatInt(x.v, 10)
}
