// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package fixnum implements the fixed-width integer kinds used to describe
// hardware values: Unsigned and Signed numbers of a fixed bit width, and
// Index values bounded by an arbitrary (not necessarily power of two)
// modulus.
//
// Arithmetic wraps into the type's range exactly as a combinational adder or
// multiplier of that width would; wraparound is defined behavior, never an
// error. Values are immutable; every operation returns a new value.
//
// Widths are limited to 64 bits. Wider hardware words are modeled as sized
// vectors of narrower lanes.
//
package fixnum

import (
	"fmt"
	"math/bits"
	"strconv"
)

// MaxWidth is the largest supported bit width.
const MaxWidth = 64

// A RangeError reports an Index value outside its bound.
//
type RangeError struct {
	Value uint64
	Bound uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("index value %d out of range [0, %d)", e.Value, e.Bound)
}

func checkWidth(w int) {
	if w < 0 || w > MaxWidth {
		panic("fixnum: invalid width " + strconv.Itoa(w))
	}
}

func checkSameWidth(op string, a, b int) {
	if a != b {
		panic("fixnum: " + op + " width mismatch: " + strconv.Itoa(a) + " vs " + strconv.Itoa(b))
	}
}

// mask returns the w low-order bits set.
//
func mask(w int) uint64 {
	if w == 64 {
		return ^uint64(0)
	}
	return 1<<uint(w) - 1
}

// IndexBits returns the minimal number of bits able to address the given
// bound, i.e. to encode every value in [0, bound).
//
func IndexBits(bound uint64) int {
	if bound <= 1 {
		return 0
	}
	return bits.Len64(bound - 1)
}
