package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/benreynwar/clash-prelude"
	"github.com/benreynwar/clash-prelude/fixnum"
)

// Simulates an 8 bit counter with an enable input: the count freezes while
// enable is low.
func main() {
	ticks := flag.Int("ticks", 16, "number of clock ticks to simulate")
	trace := flag.Bool("trace", false, "log every tick")
	flag.Parse()

	g := prelude.NewGraph()
	enable := prelude.Input[bool](g, "enable")
	count := prelude.Mealy(g, func(s fixnum.Unsigned, en bool) (fixnum.Unsigned, fixnum.Unsigned) {
		if en {
			return s.Add(fixnum.U(8, 1)), s
		}
		return s, s
	}, fixnum.U(8, 0), enable)

	var opts []prelude.RunOption
	if *trace {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		defer l.Sync()
		opts = append(opts, prelude.WithTrace(l))
	}

	stimulus := make([]bool, *ticks)
	for i := range stimulus {
		// pause the counter every fourth tick
		stimulus[i] = i%4 != 3
	}
	for t, v := range prelude.Simulate(g, enable, count, stimulus, opts...) {
		fmt.Printf("tick %2d: enable=%-5v count=%s\n", t, stimulus[t], v)
	}
}
