// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package prelude

import (
	"strconv"

	"github.com/benreynwar/clash-prelude/fixnum"
	"github.com/benreynwar/clash-prelude/sizedvec"
)

// Bundle reinterprets N parallel per-tick streams as one stream of length-N
// snapshots: the bundled value at tick t collects the tick t values of all
// element signals. Bundle and Unbundle are inverses tick for tick.
//
// The vector must not be empty: an empty bundle belongs to no graph.
//
func Bundle[A any](vs sizedvec.Vec[Signal[A]]) Signal[sizedvec.Vec[A]] {
	n := vs.Len()
	if n == 0 {
		panic("prelude: Bundle of empty vector")
	}
	sigs := vs.Slice()
	g := sigs[0].g
	deps := make([]*node, n)
	for i, s := range sigs {
		sameGraph("Bundle", g, s.g)
		deps[i] = s.n
	}
	nd := g.add(&node{kind: nComb, deps: deps,
		fn: func(args []interface{}) interface{} {
			return sizedvec.Generate(n, func(i int) A { return args[i].(A) })
		}})
	return Signal[sizedvec.Vec[A]]{g: g, n: nd}
}

// Unbundle splits one stream of length-n snapshots into n parallel
// per-tick streams, element i of the snapshot feeding signal i. Sampling
// panics if the bundled signal delivers a vector of the wrong length.
//
func Unbundle[A any](n int, s Signal[sizedvec.Vec[A]]) sizedvec.Vec[Signal[A]] {
	return sizedvec.Generate(n, func(i int) Signal[A] {
		at := fixnum.MustIdx(uint64(n), uint64(i))
		return Lift(func(v sizedvec.Vec[A]) A {
			if v.Len() != n {
				panic("prelude: Unbundle of length " + strconv.Itoa(n) + " got length " + strconv.Itoa(v.Len()) + " vector")
			}
			return v.At(at)
		}, s)
	})
}
