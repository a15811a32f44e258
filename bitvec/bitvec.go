// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package bitvec implements fixed-width bit patterns.
//
// A Vec is an immutable ordered sequence of bits where every bit is 0, 1 or
// unknown (X). Bit 0 is the least significant bit. Vecs are the common
// encoding target of the bitpack package and the value carried on
// hardware-facing boundaries.
//
package bitvec

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A Bit is a single three-state logic value.
//
type Bit uint8

// Bit values.
//
const (
	Zero Bit = iota
	One
	X // unknown / don't care
)

func (b Bit) String() string {
	switch b {
	case Zero:
		return "0"
	case One:
		return "1"
	case X:
		return "x"
	}
	return "?"
}

// A Vec is an immutable bit pattern of fixed width. The zero value is the
// empty pattern.
//
// Bits are packed into 64 bit words; a second word plane flags unknown bits.
// Invariant: a bit flagged unknown is zero in the value plane, and all bits
// past Len() are zero in both planes.
//
type Vec struct {
	n   int
	val []uint64
	und []uint64
}

func words(n int) int { return (n + 63) / 64 }

// tailMask returns the valid-bit mask for the last word of an n bit vector.
//
func tailMask(n int) uint64 {
	if r := n % 64; r != 0 {
		return 1<<uint(r) - 1
	}
	return ^uint64(0)
}

func checkLen(n int) {
	if n < 0 {
		panic("bitvec: negative width " + strconv.Itoa(n))
	}
}

// New returns an n bit vector with all bits set to 0.
//
func New(n int) Vec {
	checkLen(n)
	return Vec{n: n, val: make([]uint64, words(n)), und: make([]uint64, words(n))}
}

// Undef returns an n bit vector with all bits unknown.
//
func Undef(n int) Vec {
	v := New(n)
	for i := range v.und {
		v.und[i] = ^uint64(0)
	}
	if len(v.und) > 0 {
		v.und[len(v.und)-1] &= tailMask(n)
	}
	return v
}

// FromUint64 returns the n bit vector holding the low n bits of x.
//
func FromUint64(n int, x uint64) Vec {
	v := New(n)
	if n == 0 {
		return v
	}
	if n < 64 {
		x &= 1<<uint(n) - 1
	}
	v.val[0] = x
	return v
}

// FromBits builds a vector from individual bits, least significant first:
// bs[i] becomes bit i.
//
func FromBits(bs ...Bit) Vec {
	v := New(len(bs))
	for i, b := range bs {
		v.set(i, b)
	}
	return v
}

// set mutates bit i. Only used on vectors not yet shared.
//
func (v Vec) set(i int, b Bit) {
	w, m := i/64, uint64(1)<<uint(i%64)
	v.val[w] &^= m
	v.und[w] &^= m
	switch b {
	case One:
		v.val[w] |= m
	case X:
		v.und[w] |= m
	}
}

// Len returns the number of bits in v.
//
func (v Vec) Len() int { return v.n }

// Bit returns bit i of v. It panics if i is out of range.
//
func (v Vec) Bit(i int) Bit {
	if i < 0 || i >= v.n {
		panic("bitvec: bit index " + strconv.Itoa(i) + " out of range [0, " + strconv.Itoa(v.n) + ")")
	}
	w, m := i/64, uint64(1)<<uint(i%64)
	if v.und[w]&m != 0 {
		return X
	}
	if v.val[w]&m != 0 {
		return One
	}
	return Zero
}

// WithBit returns a copy of v with bit i set to b.
//
func (v Vec) WithBit(i int, b Bit) Vec {
	if i < 0 || i >= v.n {
		panic("bitvec: bit index " + strconv.Itoa(i) + " out of range [0, " + strconv.Itoa(v.n) + ")")
	}
	r := v.clone()
	r.set(i, b)
	return r
}

func (v Vec) clone() Vec {
	r := Vec{n: v.n, val: make([]uint64, len(v.val)), und: make([]uint64, len(v.und))}
	copy(r.val, v.val)
	copy(r.und, v.und)
	return r
}

// HasUndef reports whether any bit of v is unknown.
//
func (v Vec) HasUndef() bool {
	for _, w := range v.und {
		if w != 0 {
			return true
		}
	}
	return false
}

// Cat concatenates hi and lo into a single vector of width
// hi.Len()+lo.Len(), with hi occupying the most significant bits.
//
func Cat(hi, lo Vec) Vec {
	r := New(hi.n + lo.n)
	copy(r.val, lo.val)
	copy(r.und, lo.und)
	for i := 0; i < hi.n; i++ {
		r.set(lo.n+i, hi.Bit(i))
	}
	return r
}

// Slice returns the sub-pattern holding bits [lo, hi) of v, bit lo becoming
// bit 0 of the result. It panics if the range is invalid.
//
func (v Vec) Slice(lo, hi int) Vec {
	if lo < 0 || hi < lo || hi > v.n {
		panic("bitvec: invalid slice [" + strconv.Itoa(lo) + ", " + strconv.Itoa(hi) + ") of " + strconv.Itoa(v.n) + " bit vector")
	}
	r := New(hi - lo)
	for i := 0; i < r.n; i++ {
		r.set(i, v.Bit(lo+i))
	}
	return r
}

func checkSameLen(op string, a, b Vec) {
	if a.n != b.n {
		panic("bitvec: " + op + " width mismatch: " + strconv.Itoa(a.n) + " vs " + strconv.Itoa(b.n))
	}
}

// Not returns the elementwise complement of v. Unknown bits stay unknown.
//
func (v Vec) Not() Vec {
	r := v.clone()
	for i := range r.val {
		r.val[i] = ^v.val[i] &^ v.und[i]
	}
	if len(r.val) > 0 {
		r.val[len(r.val)-1] &= tailMask(v.n)
	}
	return r
}

// And returns the elementwise conjunction of v and w. A known 0 on either
// side forces 0 even against an unknown.
//
func (v Vec) And(w Vec) Vec {
	checkSameLen("And", v, w)
	r := New(v.n)
	m := tailMask(v.n)
	for i := range r.val {
		zv := ^v.val[i] &^ v.und[i]
		zw := ^w.val[i] &^ w.und[i]
		r.val[i] = v.val[i] & w.val[i]
		r.und[i] = (v.und[i] | w.und[i]) &^ (zv | zw)
	}
	if len(r.val) > 0 {
		r.val[len(r.val)-1] &= m
		r.und[len(r.und)-1] &= m
	}
	return r
}

// Or returns the elementwise disjunction of v and w. A known 1 on either
// side forces 1 even against an unknown.
//
func (v Vec) Or(w Vec) Vec {
	checkSameLen("Or", v, w)
	r := New(v.n)
	for i := range r.val {
		r.val[i] = v.val[i] | w.val[i]
		r.und[i] = (v.und[i] | w.und[i]) &^ r.val[i]
	}
	return r
}

// Xor returns the elementwise exclusive or of v and w. An unknown on either
// side yields an unknown.
//
func (v Vec) Xor(w Vec) Vec {
	checkSameLen("Xor", v, w)
	r := New(v.n)
	for i := range r.val {
		r.und[i] = v.und[i] | w.und[i]
		r.val[i] = (v.val[i] ^ w.val[i]) &^ r.und[i]
	}
	return r
}

// Equal reports whether v and w are identical patterns, unknown bits
// included. Vectors of different widths are never equal.
//
func (v Vec) Equal(w Vec) bool {
	if v.n != w.n {
		return false
	}
	for i := range v.val {
		if v.val[i] != w.val[i] || v.und[i] != w.und[i] {
			return false
		}
	}
	return true
}

// ReduceAnd reduces v to a single bit: One if all bits are 1, Zero if any
// bit is a known 0, X otherwise. The reduction of the empty vector is One.
//
func (v Vec) ReduceAnd() Bit {
	und := false
	for i, w := range v.val {
		m := ^uint64(0)
		if i == len(v.val)-1 {
			m = tailMask(v.n)
		}
		if ^(w|v.und[i])&m != 0 {
			return Zero
		}
		und = und || v.und[i] != 0
	}
	if und {
		return X
	}
	return One
}

// ReduceOr reduces v to a single bit: One if any bit is a known 1, Zero if
// all bits are 0, X otherwise. The reduction of the empty vector is Zero.
//
func (v Vec) ReduceOr() Bit {
	und := false
	for i, w := range v.val {
		if w != 0 {
			return One
		}
		und = und || v.und[i] != 0
	}
	if und {
		return X
	}
	return Zero
}

// ReduceXor reduces v to its parity bit, or X if any bit is unknown. The
// parity of the empty vector is Zero.
//
func (v Vec) ReduceXor() Bit {
	if v.HasUndef() {
		return X
	}
	p := 0
	for _, w := range v.val {
		p ^= bits.OnesCount64(w)
	}
	return Bit(p & 1)
}

// Uint64 returns the value of v as an unsigned integer. It fails if v is
// wider than 64 bits or contains unknown bits.
//
func (v Vec) Uint64() (uint64, error) {
	if v.n > 64 {
		return 0, errors.Errorf("bitvec: %d bit vector does not fit in uint64", v.n)
	}
	if v.HasUndef() {
		return 0, errors.Errorf("bitvec: vector %s has unknown bits", v.String())
	}
	if v.n == 0 {
		return 0, nil
	}
	return v.val[0], nil
}

// Int64 returns the value of v as a two's complement signed integer, sign
// extending bit Len()-1. It fails under the same conditions as Uint64.
//
func (v Vec) Int64() (int64, error) {
	u, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if v.n == 0 || v.n == 64 || u&(1<<uint(v.n-1)) == 0 {
		return int64(u), nil
	}
	return int64(u | ^(1<<uint(v.n)-1)), nil
}

// String formats v as a sized binary literal, most significant bit first,
// e.g. "4'b10x0".
//
func (v Vec) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(v.n))
	b.WriteString("'b")
	if v.n == 0 {
		return b.String()
	}
	for i := v.n - 1; i >= 0; i-- {
		b.WriteString(v.Bit(i).String())
	}
	return b.String()
}
