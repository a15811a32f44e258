package prelude_test

import (
	"testing"

	prelude "github.com/benreynwar/clash-prelude"
	"github.com/benreynwar/clash-prelude/fixnum"
	"github.com/benreynwar/clash-prelude/sizedvec"
)

func TestConst_Lift(t *testing.T) {
	g := prelude.NewGraph()
	in := prelude.Input[int](g, "in")
	two := prelude.Const(g, 2)
	out := prelude.Lift2(func(a, b int) int { return a * b }, in, two)

	got := prelude.Simulate(g, in, out, []int{0, 1, 2, 3})
	want := []int{0, 2, 4, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tick %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRegister_delays_one_tick(t *testing.T) {
	g := prelude.NewGraph()
	in := prelude.Input[int](g, "in")
	out := prelude.Register(-1, in)

	got := prelude.Simulate(g, in, out, []int{10, 20, 30, 40})
	want := []int{-1, 10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tick %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRegister_chain(t *testing.T) {
	g := prelude.NewGraph()
	in := prelude.Input[int](g, "in")
	out := prelude.Register(0, prelude.Register(0, in))

	got := prelude.Simulate(g, in, out, []int{1, 2, 3, 4, 5})
	want := []int{0, 0, 1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tick %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFeedback_through_register(t *testing.T) {
	// running sum of the input
	g := prelude.NewGraph()
	in := prelude.Input[int](g, "in")
	fb := prelude.NewFeedback[int](g)
	sum := prelude.Lift2(func(acc, x int) int { return acc + x }, fb.Signal(), in)
	acc := prelude.Register(0, sum)
	if err := fb.Close(acc); err != nil {
		t.Fatal(err)
	}

	got := prelude.Simulate(g, in, sum, []int{1, 2, 3, 4})
	want := []int{1, 3, 6, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tick %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFeedback_combinational_cycle_rejected(t *testing.T) {
	g := prelude.NewGraph()
	in := prelude.Input[int](g, "in")
	fb := prelude.NewFeedback[int](g)
	// no register anywhere on the path back to the feedback point
	loop := prelude.Lift2(func(a, b int) int { return a + b }, fb.Signal(), in)
	if err := fb.Close(loop); err == nil {
		t.Fatal("combinational cycle not rejected at Close")
	}
	// the graph is still usable once the loop is broken by a register
	if err := fb.Close(prelude.Register(0, loop)); err != nil {
		t.Fatal(err)
	}
}

func TestFeedback_close_twice(t *testing.T) {
	g := prelude.NewGraph()
	fb := prelude.NewFeedback[int](g)
	c := prelude.Const(g, 1)
	if err := fb.Close(c); err != nil {
		t.Fatal(err)
	}
	if err := fb.Close(c); err == nil {
		t.Fatal("second Close did not fail")
	}
}

func TestRuns_are_independent(t *testing.T) {
	g := prelude.NewGraph()
	in := prelude.Input[int](g, "in")
	out := prelude.Register(0, in)

	stim := []int{5, 6, 7}
	a := prelude.Simulate(g, in, out, stim)
	b := prelude.Simulate(g, in, out, stim)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d: replay diverged: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestBundle_Unbundle_inverse(t *testing.T) {
	g := prelude.NewGraph()
	in := prelude.Input[sizedvec.Vec[int]](g, "in")
	rebuilt := prelude.Bundle(prelude.Unbundle(3, in))

	r := prelude.NewRun(g)
	for tick := 0; tick < 8; tick++ {
		v := sizedvec.Generate(3, func(i int) int { return tick*10 + i })
		prelude.Set(r, in, v)
		if got := prelude.Sample(r, rebuilt); !sizedvec.Equal(got, v) {
			t.Fatalf("tick %d: got %v, want %v", tick, got.Slice(), v.Slice())
		}
		r.Tick()
	}
}

func TestBundle_snapshots(t *testing.T) {
	// three counters at different strides bundle into one snapshot stream
	g := prelude.NewGraph()
	in := prelude.Input[int](g, "in")
	sigs := sizedvec.Generate(3, func(i int) prelude.Signal[int] {
		k := i + 1
		return prelude.Lift(func(x int) int { return x * k }, in)
	})
	out := prelude.Bundle(sigs)

	got := prelude.Simulate(g, in, out, []int{1, 2})
	for tick, snap := range got {
		x := tick + 1
		want := sizedvec.Of(x, 2*x, 3*x)
		if !sizedvec.Equal(snap, want) {
			t.Fatalf("tick %d: got %v, want %v", tick, snap.Slice(), want.Slice())
		}
	}
}

func TestUndriven_input_panics(t *testing.T) {
	g := prelude.NewGraph()
	in := prelude.Input[int](g, "in")
	out := prelude.Lift(func(x int) int { return x }, in)
	r := prelude.NewRun(g)
	defer func() {
		if recover() == nil {
			t.Fatal("Sample of undriven input did not panic")
		}
	}()
	prelude.Sample(r, out)
}

func TestSample_is_memoized_per_tick(t *testing.T) {
	g := prelude.NewGraph()
	in := prelude.Input[int](g, "in")
	calls := 0
	sq := prelude.Lift(func(x int) int { calls++; return x * x }, in)
	out := prelude.Lift2(func(a, b int) int { return a + b }, sq, sq)

	r := prelude.NewRun(g)
	prelude.Set(r, in, 3)
	if got := prelude.Sample(r, out); got != 18 {
		t.Fatalf("got %d, want 18", got)
	}
	if calls != 1 {
		t.Fatalf("combinational node evaluated %d times in one tick", calls)
	}
}

func TestMixed_value_level(t *testing.T) {
	// an 8 bit accumulator built from fixnum arithmetic wraps like hardware
	g := prelude.NewGraph()
	in := prelude.Input[fixnum.Unsigned](g, "in")
	fb := prelude.NewFeedback[fixnum.Unsigned](g)
	sum := prelude.Lift2(fixnum.Unsigned.Add, fb.Signal(), in)
	acc := prelude.Register(fixnum.U(8, 0), sum)
	if err := fb.Close(acc); err != nil {
		t.Fatal(err)
	}

	stim := make([]fixnum.Unsigned, 4)
	for i := range stim {
		stim[i] = fixnum.U(8, 100)
	}
	got := prelude.Simulate(g, in, sum, stim)
	want := []uint64{100, 200, 44, 144}
	for i := range want {
		if got[i].Uint64() != want[i] {
			t.Fatalf("tick %d: got %v, want %d", i, got[i], want[i])
		}
	}
}
