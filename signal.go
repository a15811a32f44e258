// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package prelude

import (
	"strconv"

	"github.com/pkg/errors"
)

type nodeKind uint8

const (
	nConst nodeKind = iota
	nInput
	nComb
	nReg
	nLoop
)

// A node is one vertex of a signal graph. deps are same-tick
// (combinational) inputs, except for nReg where the single dep is read one
// tick late.
//
type node struct {
	id   int
	kind nodeKind
	name string
	deps []*node
	fn   func(args []interface{}) interface{}
	init interface{} // nConst value / nReg initial state
}

// A Graph owns the nodes of a signal network. Signals from different graphs
// cannot be combined, and every simulation Run replays one graph from a
// fresh state.
//
type Graph struct {
	nodes []*node
	regs  []*node
	ins   map[string]*node
}

// NewGraph returns an empty signal graph.
//
func NewGraph() *Graph {
	return &Graph{ins: make(map[string]*node)}
}

// Size returns the number of nodes in the graph.
//
func (g *Graph) Size() int { return len(g.nodes) }

func (g *Graph) add(n *node) *node {
	n.id = len(g.nodes)
	g.nodes = append(g.nodes, n)
	return n
}

// A Signal is a discrete-time stream of values of type A: one value per
// tick of the simulated clock. A Signal has no identity beyond its defining
// function of time; its value at tick t is fully determined by the input
// history up to t and the register states carried from tick t-1.
//
type Signal[A any] struct {
	g *Graph
	n *node
}

// Graph returns the graph the signal belongs to.
//
func (s Signal[A]) Graph() *Graph { return s.g }

func sameGraph(op string, g *Graph, others ...*Graph) {
	for _, o := range others {
		if o != g {
			panic("prelude: " + op + " combines signals from different graphs")
		}
	}
}

// Const returns the signal whose value is v at every tick.
//
func Const[A any](g *Graph, v A) Signal[A] {
	n := g.add(&node{kind: nConst, init: v})
	return Signal[A]{g: g, n: n}
}

// Input declares a named external input. Each simulation Run must drive it
// with Set before the first Sample of every tick that observes it.
//
func Input[A any](g *Graph, name string) Signal[A] {
	if _, ok := g.ins[name]; ok {
		panic("prelude: duplicate input " + strconv.Quote(name))
	}
	n := g.add(&node{kind: nInput, name: name})
	g.ins[name] = n
	return Signal[A]{g: g, n: n}
}

// Lift applies a pure function to a signal elementwise: the result at tick
// t is f of the input value at the same tick.
//
func Lift[A, B any](f func(A) B, a Signal[A]) Signal[B] {
	n := a.g.add(&node{kind: nComb, deps: []*node{a.n},
		fn: func(args []interface{}) interface{} { return f(args[0].(A)) }})
	return Signal[B]{g: a.g, n: n}
}

// Lift2 combines two signals with a pure function of their same-tick
// values.
//
func Lift2[A, B, C any](f func(A, B) C, a Signal[A], b Signal[B]) Signal[C] {
	sameGraph("Lift2", a.g, b.g)
	n := a.g.add(&node{kind: nComb, deps: []*node{a.n, b.n},
		fn: func(args []interface{}) interface{} { return f(args[0].(A), args[1].(B)) }})
	return Signal[C]{g: a.g, n: n}
}

// Lift3 combines three signals with a pure function of their same-tick
// values.
//
func Lift3[A, B, C, D any](f func(A, B, C) D, a Signal[A], b Signal[B], c Signal[C]) Signal[D] {
	sameGraph("Lift3", a.g, b.g, c.g)
	n := a.g.add(&node{kind: nComb, deps: []*node{a.n, b.n, c.n},
		fn: func(args []interface{}) interface{} { return f(args[0].(A), args[1].(B), args[2].(C)) }})
	return Signal[D]{g: a.g, n: n}
}

// Register returns the one-tick delay of in: its value is init at tick 0
// and the tick t-1 value of in at every tick t > 0. A register input is the
// only edge allowed to look into the past, and therefore the only sanctioned
// way to close a feedback loop.
//
func Register[A any](init A, in Signal[A]) Signal[A] {
	g := in.g
	n := g.add(&node{kind: nReg, deps: []*node{in.n}, init: init})
	g.regs = append(g.regs, n)
	return Signal[A]{g: g, n: n}
}

// A Feedback is a forward reference to a signal that does not exist yet,
// used to wire feedback loops. The placeholder obtained from Signal can be
// composed freely; Close then binds it to its defining signal and rejects
// bindings that would create an instantaneous (same-tick) cycle.
//
type Feedback[A any] struct {
	s      Signal[A]
	closed bool
}

// NewFeedback returns an open feedback point in g.
//
func NewFeedback[A any](g *Graph) *Feedback[A] {
	n := g.add(&node{kind: nLoop})
	return &Feedback[A]{s: Signal[A]{g: g, n: n}}
}

// Signal returns the placeholder signal. Sampling it before Close is a
// programmer error and panics.
//
func (f *Feedback[A]) Signal() Signal[A] { return f.s }

// Close binds the feedback point to s. It fails if a combinational path
// leads from s back to the feedback point: such a loop has no defined value
// within a tick and must be broken by a Register.
//
func (f *Feedback[A]) Close(s Signal[A]) error {
	if f.closed {
		return errors.New("feedback already closed")
	}
	sameGraph("Close", f.s.g, s.g)
	if combReaches(s.n, f.s.n, make(map[int]bool)) {
		return errors.New("combinational cycle: feedback must be closed through a register")
	}
	f.s.n.deps = []*node{s.n}
	f.closed = true
	return nil
}

// combReaches reports whether target is reachable from n along same-tick
// edges only. Register inputs carry a one-tick delay and stop the walk.
//
func combReaches(n, target *node, seen map[int]bool) bool {
	if n == target {
		return true
	}
	if seen[n.id] || n.kind == nReg {
		return false
	}
	seen[n.id] = true
	for _, d := range n.deps {
		if combReaches(d, target, seen) {
			return true
		}
	}
	return false
}
