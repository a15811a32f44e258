// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package bitpack maps structured values to and from fixed-width bit
// patterns.
//
// A Codec[T] pairs a bit size, fixed when the codec is built, with total
// Pack and Unpack functions satisfying the round-trip law
// Unpack(Pack(x)) == x for every representable x. Codecs for products, sums
// and vectors are assembled from element codecs with explicit builders;
// there is no runtime reflection. Any value crossing into a hardware port
// needs a codec, and the codec's Size is the port width.
//
package bitpack

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/benreynwar/clash-prelude/bitvec"
)

func itoa(n int) string    { return strconv.Itoa(n) }
func utoa(n uint64) string { return strconv.FormatUint(n, 10) }

// A Codec converts values of type T to and from bit patterns of a fixed
// width.
//
type Codec[T any] struct {
	size   int
	pack   func(T) bitvec.Vec
	unpack func(bitvec.Vec) (T, error)
}

// New builds a codec from a size and a pack/unpack pair. pack must always
// return a vector of the given size, unpack is only called with vectors of
// that size, and the pair must satisfy unpack(pack(x)) == x.
//
func New[T any](size int, pack func(T) bitvec.Vec, unpack func(bitvec.Vec) (T, error)) Codec[T] {
	if size < 0 {
		panic("bitpack: negative codec size " + strconv.Itoa(size))
	}
	return Codec[T]{size: size, pack: pack, unpack: unpack}
}

// Size returns the encoding width in bits.
//
func (c Codec[T]) Size() int { return c.size }

// Pack encodes x as a Size() bit pattern.
//
func (c Codec[T]) Pack(x T) bitvec.Vec {
	v := c.pack(x)
	if v.Len() != c.size {
		panic("bitpack: encoder produced " + strconv.Itoa(v.Len()) + " bits, want " + strconv.Itoa(c.size))
	}
	return v
}

// Unpack decodes a Size() bit pattern. It fails if v has the wrong width or
// does not decode to a representable value.
//
func (c Codec[T]) Unpack(v bitvec.Vec) (T, error) {
	if v.Len() != c.size {
		var zero T
		return zero, errors.Errorf("bitpack: cannot unpack %d bit vector, codec size is %d", v.Len(), c.size)
	}
	return c.unpack(v)
}
