/*
Package prelude models synchronous digital circuits as discrete-time value
streams and simulates them one clock tick at a time.

A Signal is an infinite stream of values, one per tick. Pure per-cycle logic
is expressed by lifting ordinary functions over signals; sequential logic is
expressed with Register, the one-tick delay primitive, which is also the
only sanctioned way to close a feedback loop. The Mealy and Moore
combinators package the usual state machine shapes on top of these.

Graphs of signals are evaluated by a Run, which pulls values tick by tick
under an external driver. Construction rejects feedback not routed through
a register, so evaluation of a tick always terminates.

The subpackages supply the value level: fixnum (fixed-width integers with
hardware wraparound), bitvec (three-state bit patterns), bitpack (bit-level
codecs giving every value a port encoding) and sizedvec (length-indexed
containers).
*/
package prelude
