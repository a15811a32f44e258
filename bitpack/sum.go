// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitpack

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/benreynwar/clash-prelude/bitvec"
)

// A SumBuilder assembles the codec for a sum type T alternative by
// alternative. The encoding is a tag field in the most significant bits
// (wide enough to count the alternatives) followed by the payload in the
// low-order bits; when an alternative's payload is narrower than the widest
// one, the gap is don't-care and packs as unknown bits.
//
type SumBuilder[T any] struct {
	sealed  bool
	payload int
	alts    []alt[T]
}

type alt[T any] struct {
	size   int
	pack   func(T) (bitvec.Vec, bool)
	unpack func(bitvec.Vec) (T, error)
}

// Sum returns a builder for the codec of the sum type T.
//
func Sum[T any]() *SumBuilder[T] {
	return &SumBuilder[T]{}
}

// Alt registers the next alternative of the sum: the codec of its payload
// type P, a match function extracting the payload from a value of that
// alternative (reporting false otherwise), and an inject function rebuilding
// the sum value from a decoded payload.
//
func Alt[T, P any](b *SumBuilder[T], c Codec[P], match func(T) (P, bool), inject func(P) T) *SumBuilder[T] {
	if b.sealed {
		panic("bitpack: Alt called on sealed SumBuilder")
	}
	b.alts = append(b.alts, alt[T]{
		size: c.Size(),
		pack: func(x T) (bitvec.Vec, bool) {
			p, ok := match(x)
			if !ok {
				return bitvec.Vec{}, false
			}
			return c.Pack(p), true
		},
		unpack: func(v bitvec.Vec) (T, error) {
			p, err := c.Unpack(v)
			if err != nil {
				var zero T
				return zero, err
			}
			return inject(p), nil
		},
	})
	if c.Size() > b.payload {
		b.payload = c.Size()
	}
	return b
}

// Codec seals the builder and returns the sum codec. At least one
// alternative must have been registered.
//
func (b *SumBuilder[T]) Codec() Codec[T] {
	if len(b.alts) == 0 {
		panic("bitpack: sum codec with no alternatives")
	}
	b.sealed = true
	alts, payload := b.alts, b.payload
	tagBits := bits.Len(uint(len(alts) - 1))
	return New(tagBits+payload,
		func(x T) bitvec.Vec {
			for i, a := range alts {
				enc, ok := a.pack(x)
				if !ok {
					continue
				}
				tag := bitvec.FromUint64(tagBits, uint64(i))
				return bitvec.Cat(tag, bitvec.Cat(bitvec.Undef(payload-enc.Len()), enc))
			}
			panic("bitpack: sum value matches no alternative")
		},
		func(v bitvec.Vec) (T, error) {
			var zero T
			tv := v.Slice(payload, v.Len())
			tag, err := tv.Uint64()
			if err != nil {
				return zero, errors.Wrap(err, "sum tag")
			}
			if tag >= uint64(len(alts)) {
				return zero, errors.Errorf("bitpack: invalid sum tag %d, have %d alternatives", tag, len(alts))
			}
			a := alts[tag]
			x, err := a.unpack(v.Slice(0, a.size))
			if err != nil {
				return zero, errors.Wrapf(err, "sum alternative %d", tag)
			}
			return x, nil
		})
}

// Enum returns the codec for a finite set of distinct values with no
// payload: a pure tag encoding in registration order.
//
func Enum[T comparable](vals ...T) Codec[T] {
	if len(vals) == 0 {
		panic("bitpack: enum codec with no values")
	}
	tagBits := bits.Len(uint(len(vals) - 1))
	return New(tagBits,
		func(x T) bitvec.Vec {
			for i, v := range vals {
				if v == x {
					return bitvec.FromUint64(tagBits, uint64(i))
				}
			}
			panic("bitpack: enum value not registered")
		},
		func(v bitvec.Vec) (T, error) {
			var zero T
			tag, err := v.Uint64()
			if err != nil {
				return zero, errors.Wrap(err, "enum tag")
			}
			if tag >= uint64(len(vals)) {
				return zero, errors.Errorf("bitpack: invalid enum tag %d, have %d values", tag, len(vals))
			}
			return vals[tag], nil
		})
}
