// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitpack

import (
	"github.com/pkg/errors"

	"github.com/benreynwar/clash-prelude/bitvec"
	"github.com/benreynwar/clash-prelude/fixnum"
)

// Unsigned returns the codec for W bit unsigned integers. The encoding is
// the plain binary representation.
//
func Unsigned(w int) Codec[fixnum.Unsigned] {
	return New(w,
		func(x fixnum.Unsigned) bitvec.Vec {
			if x.Width() != w {
				panic("bitpack: cannot pack " + x.String() + " with a width-" + itoa(w) + " codec")
			}
			return bitvec.FromUint64(w, x.Uint64())
		},
		func(v bitvec.Vec) (fixnum.Unsigned, error) {
			u, err := v.Uint64()
			if err != nil {
				return fixnum.Unsigned{}, err
			}
			return fixnum.U(w, int64(u)), nil
		})
}

// Signed returns the codec for W bit signed integers. The encoding is two's
// complement.
//
func Signed(w int) Codec[fixnum.Signed] {
	return New(w,
		func(x fixnum.Signed) bitvec.Vec {
			if x.Width() != w {
				panic("bitpack: cannot pack " + x.String() + " with a width-" + itoa(w) + " codec")
			}
			return bitvec.FromUint64(w, uint64(x.Int64()))
		},
		func(v bitvec.Vec) (fixnum.Signed, error) {
			u, err := v.Uint64()
			if err != nil {
				return fixnum.Signed{}, err
			}
			return fixnum.S(w, int64(u)), nil
		})
}

// Index returns the codec for Index values under the given bound. The
// encoding occupies the minimal number of bits addressing the bound; a
// pattern decoding to a position at or above the bound fails with the
// underlying *fixnum.RangeError.
//
func Index(bound uint64) Codec[fixnum.Index] {
	return New(fixnum.IndexBits(bound),
		func(x fixnum.Index) bitvec.Vec {
			if x.Bound() != bound {
				panic("bitpack: cannot pack " + x.String() + " with a bound-" + utoa(bound) + " codec")
			}
			return bitvec.FromUint64(fixnum.IndexBits(bound), x.Uint64())
		},
		func(v bitvec.Vec) (fixnum.Index, error) {
			u, err := v.Uint64()
			if err != nil {
				return fixnum.Index{}, err
			}
			return fixnum.Idx(bound, u)
		})
}

// Bool returns the single-bit codec for booleans.
//
func Bool() Codec[bool] {
	return New(1,
		func(x bool) bitvec.Vec {
			if x {
				return bitvec.FromUint64(1, 1)
			}
			return bitvec.FromUint64(1, 0)
		},
		func(v bitvec.Vec) (bool, error) {
			switch v.Bit(0) {
			case bitvec.One:
				return true, nil
			case bitvec.Zero:
				return false, nil
			}
			return false, errors.New("bitpack: cannot unpack unknown bit as bool")
		})
}

// Bits returns the identity codec for n bit patterns.
//
func Bits(n int) Codec[bitvec.Vec] {
	return New(n,
		func(v bitvec.Vec) bitvec.Vec { return v },
		func(v bitvec.Vec) (bitvec.Vec, error) { return v, nil })
}

// Unit returns the zero-width codec for types with no informational
// content. The single canonical encoding is the empty pattern.
//
func Unit() Codec[struct{}] {
	return New(0,
		func(struct{}) bitvec.Vec { return bitvec.New(0) },
		func(bitvec.Vec) (struct{}, error) { return struct{}{}, nil })
}
