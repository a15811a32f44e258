// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitpack

import (
	"github.com/pkg/errors"

	"github.com/benreynwar/clash-prelude/bitvec"
)

// A Pair is a two-field product. Fst is encoded in the most significant
// bits, Snd in the least significant, like any product encoding.
//
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// PairOf returns the codec for pairs built from the two field codecs.
//
func PairOf[A, B any](ca Codec[A], cb Codec[B]) Codec[Pair[A, B]] {
	return New(ca.Size()+cb.Size(),
		func(p Pair[A, B]) bitvec.Vec {
			return bitvec.Cat(ca.Pack(p.Fst), cb.Pack(p.Snd))
		},
		func(v bitvec.Vec) (Pair[A, B], error) {
			var p Pair[A, B]
			a, err := ca.Unpack(v.Slice(cb.Size(), v.Len()))
			if err != nil {
				return p, err
			}
			b, err := cb.Unpack(v.Slice(0, cb.Size()))
			if err != nil {
				return p, err
			}
			p.Fst, p.Snd = a, b
			return p, nil
		})
}

// A StructBuilder assembles the codec for a product type T field by field.
// Fields are encoded in registration order, the first field occupying the
// most significant bits.
//
type StructBuilder[T any] struct {
	size   int
	sealed bool
	fields []field[T]
}

type field[T any] struct {
	size   int
	pack   func(T) bitvec.Vec
	unpack func(*T, bitvec.Vec) error
}

// Struct returns a builder for the codec of the product type T.
//
func Struct[T any]() *StructBuilder[T] {
	return &StructBuilder[T]{}
}

// Field registers the next field of the product: its codec, an accessor
// reading it from a value, and a setter writing it into a value being
// decoded. It returns b to allow chaining.
//
func Field[T, F any](b *StructBuilder[T], c Codec[F], get func(T) F, set func(*T, F)) *StructBuilder[T] {
	if b.sealed {
		panic("bitpack: Field called on sealed StructBuilder")
	}
	b.fields = append(b.fields, field[T]{
		size: c.Size(),
		pack: func(x T) bitvec.Vec { return c.Pack(get(x)) },
		unpack: func(x *T, v bitvec.Vec) error {
			f, err := c.Unpack(v)
			if err != nil {
				return err
			}
			set(x, f)
			return nil
		},
	})
	b.size += c.Size()
	return b
}

// Codec seals the builder and returns the product codec. The builder cannot
// be extended afterwards.
//
func (b *StructBuilder[T]) Codec() Codec[T] {
	b.sealed = true
	fields, size := b.fields, b.size
	return New(size,
		func(x T) bitvec.Vec {
			enc := bitvec.New(0)
			for _, f := range fields {
				enc = bitvec.Cat(enc, f.pack(x))
			}
			return enc
		},
		func(v bitvec.Vec) (T, error) {
			var x T
			hi := size
			for i, f := range fields {
				if err := f.unpack(&x, v.Slice(hi-f.size, hi)); err != nil {
					return x, errors.Wrapf(err, "field %d", i)
				}
				hi -= f.size
			}
			return x, nil
		})
}
