// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package prelude

// Mealy builds the signal transform of a Mealy machine. At every tick,
// transition is applied to the current state and the tick's input value,
// yielding the next state and the tick's output; the state starts at init
// and is carried across ticks by an internal register. The output at tick t
// reacts combinationally to the input at tick t.
//
func Mealy[S, I, O any](g *Graph, transition func(S, I) (S, O), init S, in Signal[I]) Signal[O] {
	sameGraph("Mealy", g, in.g)
	fb := NewFeedback[S](g)
	next := Lift2(func(s S, i I) S {
		s2, _ := transition(s, i)
		return s2
	}, fb.Signal(), in)
	state := Register(init, next)
	if err := fb.Close(state); err != nil {
		panic(err)
	}
	return Lift2(func(s S, i I) O {
		_, o := transition(s, i)
		return o
	}, state, in)
}

// Moore builds the signal transform of a Moore machine. The state advances
// like a Mealy machine's, but the output at tick t is a function of the
// state alone, so it cannot react to the same-tick input; it is one
// notional stage behind the equivalent Mealy output.
//
func Moore[S, I, O any](g *Graph, transition func(S, I) S, output func(S) O, init S, in Signal[I]) Signal[O] {
	sameGraph("Moore", g, in.g)
	fb := NewFeedback[S](g)
	next := Lift2(transition, fb.Signal(), in)
	state := Register(init, next)
	if err := fb.Close(state); err != nil {
		panic(err)
	}
	return Lift(output, state)
}
