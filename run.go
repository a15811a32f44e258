// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package prelude

import (
	"strconv"

	"go.uber.org/zap"
)

// A Run is one simulation of a graph. Each Run starts from a fresh state
// (registers at their initial values, tick 0), so independent runs over the
// same graph with the same stimulus produce the same outputs.
//
// Within a tick, values are computed lazily and memoized per node: sampling
// a combinational node pulls the same-tick values of its inputs, while
// sampling a register reads only the state committed at the end of the
// previous tick. The usual cadence per tick is Set every input, Sample the
// outputs, then Tick.
//
type Run struct {
	g     *Graph
	t     int
	vals  []interface{}
	valid []bool
	state []interface{} // register state, indexed by node id
	log   *zap.Logger
}

// A RunOption configures a Run.
//
type RunOption func(*Run)

// WithTrace makes the run log every tick to l at debug level.
//
func WithTrace(l *zap.Logger) RunOption {
	return func(r *Run) { r.log = l }
}

// NewRun returns a fresh simulation run over g.
//
func NewRun(g *Graph, opts ...RunOption) *Run {
	r := &Run{
		g:     g,
		vals:  make([]interface{}, len(g.nodes)),
		valid: make([]bool, len(g.nodes)),
		state: make([]interface{}, len(g.nodes)),
		log:   zap.NewNop(),
	}
	for _, n := range g.regs {
		r.state[n.id] = n.init
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Ticks returns the number of completed ticks.
//
func (r *Run) Ticks() int { return r.t }

// Set drives input s with value v for the current tick.
//
func Set[A any](r *Run, s Signal[A], v A) {
	sameGraph("Set", r.g, s.g)
	if s.n.kind != nInput {
		panic("prelude: Set on a non-input signal")
	}
	r.vals[s.n.id] = v
	r.valid[s.n.id] = true
}

// Sample returns the value of s at the current tick, computing it on first
// use. It panics if the computation needs an input that has not been Set
// this tick.
//
func Sample[A any](r *Run, s Signal[A]) A {
	sameGraph("Sample", r.g, s.g)
	return r.sample(s.n).(A)
}

func (r *Run) sample(n *node) interface{} {
	if r.valid[n.id] {
		return r.vals[n.id]
	}
	var v interface{}
	switch n.kind {
	case nConst:
		v = n.init
	case nInput:
		panic("prelude: input " + strconv.Quote(n.name) + " not driven at tick " + strconv.Itoa(r.t))
	case nReg:
		v = r.state[n.id]
	case nLoop:
		if len(n.deps) == 0 {
			panic("prelude: feedback sampled before Close")
		}
		v = r.sample(n.deps[0])
	case nComb:
		args := make([]interface{}, len(n.deps))
		for i, d := range n.deps {
			args[i] = r.sample(d)
		}
		v = n.fn(args)
	}
	r.vals[n.id] = v
	r.valid[n.id] = true
	return v
}

// Tick ends the current tick: every register samples its input at the
// current tick and commits it as its next state, then time advances and all
// memoized values are discarded.
//
func (r *Run) Tick() {
	next := make([]interface{}, len(r.g.regs))
	for i, n := range r.g.regs {
		next[i] = r.sample(n.deps[0])
	}
	for i, n := range r.g.regs {
		r.state[n.id] = next[i]
	}
	r.log.Debug("tick complete",
		zap.Int("tick", r.t),
		zap.Int("registers", len(r.g.regs)))
	r.t++
	for i := range r.valid {
		r.valid[i] = false
	}
}

// Simulate drives in from the stimulus slice and returns the value of out
// at each of the len(stimulus) ticks. It runs on a fresh Run, so it is
// replayable: the same stimulus always yields the same outputs.
//
func Simulate[I, O any](g *Graph, in Signal[I], out Signal[O], stimulus []I, opts ...RunOption) []O {
	r := NewRun(g, opts...)
	outs := make([]O, 0, len(stimulus))
	for _, v := range stimulus {
		Set(r, in, v)
		outs = append(outs, Sample(r, out))
		r.Tick()
	}
	return outs
}
