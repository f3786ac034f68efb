package coro

// Yielder is the non-owning handle passed to a coroutine's entry
// function (spec.md §4.4). It must not outlive the call that received
// it; this package enforces that only by convention, the same way
// spec.md's own contract does — nothing stops a caller who goes out of
// their way to stash one, but doing so and using it after the
// coroutine's goroutine has exited is undefined behavior.
type Yielder struct {
	s *coroState
}

// Valid reports whether y wraps a coroutine at all. It is false only
// for the zero Yielder, such as Current returns outside any coroutine;
// it does not report whether that coroutine has died.
func (y Yielder) Valid() bool {
	return y.s != nil
}

// Yield implements spec.md §4.4's yield, routed through the non-owning
// handle.
func (y Yielder) Yield() error {
	if !y.Valid() {
		return opErr("yield", ErrInvalidCoroutine)
	}
	return y.s.yield()
}

// YieldUnchecked skips the validity check Yield performs. Its
// precondition — y wraps a live, running coroutine — is the caller's
// responsibility; violating it is undefined behavior.
func (y Yielder) YieldUnchecked() error {
	return y.s.yield()
}

// UserData returns the opaque value the wrapped coroutine was created
// with.
func (y Yielder) UserData() interface{} {
	if !y.Valid() {
		return nil
	}
	return y.s.userData
}

func (y Yielder) pushBytes(src []byte) error          { return y.s.pushBytes(src) }
func (y Yielder) pushBytesUnchecked(src []byte)       { y.s.pushBytesUnchecked(src) }
func (y Yielder) popBytes(n int, dst []byte) error    { return y.s.popBytes(n, dst) }
func (y Yielder) popBytesUnchecked(n int, dst []byte) { y.s.popBytesUnchecked(n, dst) }
func (y Yielder) peekBytes(n int, dst []byte) error   { return y.s.peekBytes(n, dst) }
func (y Yielder) peekBytesUnchecked(n int, dst []byte) {
	y.s.peekBytesUnchecked(n, dst)
}
