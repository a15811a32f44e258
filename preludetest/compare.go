// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package preludetest provides utility functions for testing signal graphs.
//
package preludetest

import (
	"math/rand"
	"testing"

	"github.com/benreynwar/clash-prelude"
)

// A BuildFn builds a signal transform in the given graph from the given
// input.
//
type BuildFn[I, O any] func(g *prelude.Graph, in prelude.Signal[I]) prelude.Signal[O]

// Compare builds two signal transforms in separate graphs, drives both with
// the same stimulus sequence gen(0), gen(1), ... and fails the test at the
// first tick where their outputs differ. Both transforms must accept the
// same input type and start from equivalent reset states.
//
func Compare[I, O comparable](t *testing.T, ticks int, gen func(tick int) I, build1, build2 BuildFn[I, O]) {
	t.Helper()

	g1 := prelude.NewGraph()
	in1 := prelude.Input[I](g1, "in")
	out1 := build1(g1, in1)
	g2 := prelude.NewGraph()
	in2 := prelude.Input[I](g2, "in")
	out2 := build2(g2, in2)

	r1, r2 := prelude.NewRun(g1), prelude.NewRun(g2)
	for tk := 0; tk < ticks; tk++ {
		v := gen(tk)
		prelude.Set(r1, in1, v)
		prelude.Set(r2, in2, v)
		o1 := prelude.Sample(r1, out1)
		o2 := prelude.Sample(r2, out2)
		if o1 != o2 {
			t.Fatalf("tick %d: input %v: outputs differ: %v vs %v", tk, v, o1, o2)
		}
		r1.Tick()
		r2.Tick()
	}
}

// RandomUints returns a stimulus function producing a deterministic
// pseudo-random sequence of w bit values for the given seed.
//
func RandomUints(seed int64, w int) func(tick int) uint64 {
	rng := rand.New(rand.NewSource(seed))
	m := ^uint64(0)
	if w < 64 {
		m = 1<<uint(w) - 1
	}
	return func(int) uint64 {
		return rng.Uint64() & m
	}
}
