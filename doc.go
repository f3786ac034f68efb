// Package coro implements stackful, asymmetric coroutines: cooperative,
// single-threaded execution contexts that each own a private call stack and
// can suspend from arbitrary call depth, without any annotation on the
// frames in between.
//
// The coroutine protocol
//
// A coroutine is created with New, which hands back an owning *Coroutine and
// launches one background goroutine for it. That goroutine runs the
// coroutine's entry function, but only once it has been resumed: it blocks
// before running a single line of it. Resume unblocks that goroutine and
// then blocks itself, synchronously, until the coroutine either calls
// Yield, through the Yielder passed to its entry function, or returns.
//
// A coroutine's own goroutine and the goroutine that calls Resume are never
// both runnable at once: whichever one isn't currently executing is parked
// on an unbuffered channel, handed off the moment the other calls Resume or
// Yield. They are strictly interleaved, in the order Resume/Yield calls
// impose, even though — unlike a symmetric generator built on a single
// goroutine — two distinct goroutines are genuinely involved.
//
// Resume returns an error instead of switching context if the coroutine
// isn't suspended — for instance because it has already died, either by
// returning from its entry function or by panicking out of it (see
// Coroutine.Recovered). Done, Suspended and Running report which state a
// coroutine is in after Resume returns.
//
// Passing data across the switch
//
// Coroutines don't take arguments or return values directly across a
// Resume/Yield pair. Instead, each coroutine owns a small fixed-capacity
// byte-stack (see Push, Pop, Peek) that the owner and the body both read
// and write through typed helpers. Values pushed before a Resume are
// visible to the body as soon as it runs; values the body pushes before a
// Yield are visible to the owner as soon as Resume returns.
//
// Generators and task runners
//
// Generator wraps a coroutine whose body repeatedly produces a value and
// yields, giving a pull-based iterator over an otherwise push-based
// protocol. TaskRunner owns a set of coroutines and resumes them in strict
// round-robin order until all of them are dead.
//
// What this package does not do
//
// There is no preemption: a coroutine runs until it calls Yield or returns.
// A coroutine's background goroutine, once spawned by New, never migrates to
// a different one for the coroutine's whole life. Its stack, unlike the
// fixed-size stack the model this package implements usually allocates, is
// the ordinary Go runtime's: it grows and shrinks on demand, never overflows
// into anything, and is not sized by Descriptor.StackSize (creation still
// fixes the byte-stack storage size for good; see StackSize's doc comment
// for what it's for instead). None of this package logs or prints; failures
// are always returned, never written to a writer the caller didn't ask for.
package coro
