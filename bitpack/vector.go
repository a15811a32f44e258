// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package bitpack

import (
	"github.com/pkg/errors"

	"github.com/benreynwar/clash-prelude/bitvec"
	"github.com/benreynwar/clash-prelude/sizedvec"
)

// Vector returns the codec for length-n vectors of elements encoded by
// elem. Element 0 occupies the most significant bits; the total size is
// n times the element size.
//
func Vector[A any](n int, elem Codec[A]) Codec[sizedvec.Vec[A]] {
	if n < 0 {
		panic("bitpack: negative vector length " + itoa(n))
	}
	return New(n*elem.Size(),
		func(v sizedvec.Vec[A]) bitvec.Vec {
			if v.Len() != n {
				panic("bitpack: cannot pack length " + itoa(v.Len()) + " vector with a length-" + itoa(n) + " codec")
			}
			enc := bitvec.New(0)
			for _, x := range v.Slice() {
				enc = bitvec.Cat(enc, elem.Pack(x))
			}
			return enc
		},
		func(v bitvec.Vec) (sizedvec.Vec[A], error) {
			xs := make([]A, n)
			hi := v.Len()
			for i := range xs {
				x, err := elem.Unpack(v.Slice(hi-elem.Size(), hi))
				if err != nil {
					return sizedvec.Vec[A]{}, errors.Wrapf(err, "element %d", i)
				}
				xs[i] = x
				hi -= elem.Size()
			}
			return sizedvec.Of(xs...), nil
		})
}
