package coro

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

var (
	currentMu sync.Mutex
	current   = map[uint64]*coroState{}
)

// goroutineID recovers the calling goroutine's runtime-assigned id from
// the header line of runtime.Stack's output ("goroutine 123
// [running]:"). The runtime exposes no public API for this; every
// low-level goroutine-local-storage helper in the ecosystem resorts to
// the same parse, so this is the one place this package falls back to
// the standard library instead of a retrieval-pack dependency — see
// DESIGN.md. Unlike an earlier version of this package, nothing here
// ever calls it from inside a hijacked stack: every goroutine this
// package spawns is a real, runtime-tracked goroutine, so unwinding it
// is always safe.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	end := bytes.IndexByte(b, ' ')
	if end < 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(b[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// registerCurrent associates the calling goroutine with s for the rest
// of that goroutine's life. It is called exactly once, from inside the
// goroutine New launches for a coroutine, before that goroutine ever
// runs a line of the coroutine's entry function.
//
// A coroutine's body always runs on the same goroutine across every
// yield and resume — New spawns it once and it blocks between resumes
// rather than being torn down and relaunched — so one registration per
// coroutine is enough for Current to work correctly from anywhere that
// goroutine ever executes, including inside nested Resume calls it
// makes on other coroutines. See resume, which reads this table to find
// out whether its caller is itself a running coroutine.
func registerCurrent(s *coroState) {
	id := goroutineID()
	currentMu.Lock()
	current[id] = s
	currentMu.Unlock()
}

// unregisterCurrent removes the calling goroutine's association, once
// its coroutine has died (or been killed) and is about to exit.
func unregisterCurrent() {
	id := goroutineID()
	currentMu.Lock()
	delete(current, id)
	currentMu.Unlock()
}

// currentState returns the coroutine state backing whichever coroutine
// the calling goroutine is currently running, or nil outside any
// coroutine.
func currentState() *coroState {
	id := goroutineID()
	currentMu.Lock()
	s := current[id]
	currentMu.Unlock()
	return s
}

// Current returns a Yielder wrapping the coroutine currently executing
// on the calling goroutine, per spec.md §4.4's current-coroutine
// lookup. The returned Yielder is invalid (Valid() == false) if no
// coroutine is active on this goroutine.
func Current() Yielder {
	return Yielder{s: currentState()}
}
