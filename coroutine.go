package coro

import (
	"runtime"
	"sync"
)

// killSignal is panicked inside a coroutine's background goroutine to
// unwind it when nobody will ever resume it again — either its owner
// explicitly destroyed it while suspended, or the owner itself became
// unreachable and the garbage collector said so via a finalizer. It
// never escapes this package: the goroutine's own recover clause
// swallows it.
type killSignal struct{}

// coroState is everything a coroutine's body and its background
// goroutine need, captured directly by the goroutine New launches. It
// is deliberately a separate allocation from *Coroutine: the
// background goroutine closes over coroState for as long as it runs,
// but never over *Coroutine itself, so a *Coroutine the owner has
// dropped can still be garbage collected — and its finalizer fired —
// even while the goroutine it spawned is still blocked waiting to be
// resumed. See New, Destroy, and DESIGN.md's entry on this split.
type coroState struct {
	state State

	entry    func(Yielder)
	userData interface{}

	storage     []byte
	storedBytes int
	// capacity is the byte-stack's usable size: the requested storage
	// size, which may be smaller than len(storage) once the allocation
	// has been rounded up to the platform's allocation granularity.
	capacity int
	alloc    Allocator

	stackSize StackSize

	// yieldCh carries the coroutine's goroutine-and-channel handshake,
	// grounded on tcard-coro/coro.go's New/resume/waitResume: the
	// coroutine's own goroutine always sends on it — once before running
	// the body, and once per yield before running more of it — while
	// Resume always receives from it twice per call. A closed yieldCh
	// (the entry function returned) makes both receives return
	// immediately with ok == false.
	yieldCh chan struct{}

	// killCh is closed exactly once, by kill, to unwind a goroutine
	// parked in waitResume that will otherwise never run again.
	killCh   chan struct{}
	killOnce sync.Once

	// previous is the coroutine whose goroutine called Resume on this
	// one, if any. It only drives the StateNormal/StateRunning handoff
	// in resume; nothing outside this package reads it.
	previous *coroState

	recovered interface{}
}

// kill unwinds the coroutine's background goroutine if it is currently
// parked in waitResume. Safe to call more than once, and safe to call
// on a coroutine that already finished on its own.
func (s *coroState) kill() {
	s.killOnce.Do(func() { close(s.killCh) })
}

// waitResume is the coroutine's half of the resume handshake: it parks
// the goroutine by sending on yieldCh, which only completes once some
// Resume call is waiting to receive it.
func (s *coroState) waitResume() {
	select {
	case s.yieldCh <- struct{}{}:
	case <-s.killCh:
		panic(killSignal{})
	}
}

// yield implements spec.md §4.4's yield: it hands control back to
// whichever goroutine is blocked in Resume, then blocks this goroutine
// until it is resumed again.
func (s *coroState) yield() error {
	if s.state != StateRunning {
		return opErr("yield", ErrNotRunning)
	}
	s.state = StateSuspended
	select {
	case s.yieldCh <- struct{}{}:
	case <-s.killCh:
		panic(killSignal{})
	}
	s.waitResume()
	return nil
}

// Descriptor configures a coroutine at creation time, per spec.md §4.2.
type Descriptor struct {
	// Entry is the coroutine body. It receives a Yielder valid only for
	// the duration of the call. Entry must not be nil.
	Entry func(Yielder)
	// UserData is carried opaquely alongside the coroutine; this
	// package never interprets it.
	UserData interface{}
	// StackSize is recorded and clamped to MinStackSize exactly as
	// spec.md §4.2 describes, but this port has no stack of its own to
	// size with it: a coroutine's body runs on an ordinary goroutine,
	// whose stack Go's own runtime grows and shrinks on demand. See
	// DESIGN.md's Open Question resolutions.
	StackSize StackSize
	// StorageSize is the capacity, in bytes, of the coroutine's
	// byte-stack data channel. Zero picks DefaultStorageSize.
	StorageSize StorageSize
	// Allocator supplies the byte-stack's backing memory. Nil picks
	// make([]byte, n).
	Allocator Allocator
}

// Coroutine is the owning handle to a stackful, asymmetric coroutine.
// See the package doc comment for the Resume/Yield protocol.
type Coroutine struct {
	s         *coroState
	destroyed bool
}

// New creates a suspended coroutine. Its body does not run until the
// first call to Resume.
func New(d Descriptor) (*Coroutine, error) {
	if d.Entry == nil {
		return nil, opErr("create", ErrInvalidArguments)
	}

	stackSize := d.StackSize
	if stackSize == 0 {
		stackSize = DefaultStackSize
	}
	stackSize = clampStackSize(stackSize)

	storageSize := d.StorageSize
	if storageSize <= 0 {
		storageSize = DefaultStorageSize
	}
	storage, alloc, err := newStorage(storageSize, d.Allocator)
	if err != nil {
		return nil, err
	}

	s := &coroState{
		state:     StateSuspended,
		entry:     d.Entry,
		userData:  d.UserData,
		storage:   storage,
		capacity:  int(storageSize),
		alloc:     alloc,
		stackSize: stackSize,
		yieldCh:   make(chan struct{}),
		killCh:    make(chan struct{}),
	}

	c := &Coroutine{s: s}

	// The finalizer below captures nothing and reaches s only through
	// its argument; the goroutine captures s, but never c itself — so
	// attaching the finalizer to c is
	// what lets it fire once the owner drops every reference to c, per
	// spec.md §5 ("dropping a suspended coroutine is legal and leaks
	// nothing"). See coroState's doc comment.
	runtime.SetFinalizer(c, func(c *Coroutine) {
		c.s.kill()
	})

	go func() {
		registerCurrent(s)
		defer unregisterCurrent()
		defer close(s.yieldCh)
		defer func() {
			if r := recover(); r != nil {
				if _, killed := r.(killSignal); killed {
					return
				}
				s.recovered = r
			}
		}()

		s.waitResume()
		s.entry(Yielder{s: s})
	}()

	return c, nil
}

// Resume implements spec.md §4.4's resume. It returns ErrNotSuspended
// if c is not currently suspended.
func (c *Coroutine) Resume() error {
	if !c.valid() {
		return opErr("resume", ErrInvalidCoroutine)
	}
	if c.s.state != StateSuspended {
		return opErr("resume", ErrNotSuspended)
	}
	return c.resume()
}

// ResumeUnchecked skips the validity and state-precondition checks
// Resume performs. Calling it on a coroutine that is not suspended is
// undefined behavior.
func (c *Coroutine) ResumeUnchecked() error {
	return c.resume()
}

// resume performs the two-receive handshake described on coroState's
// yieldCh field. The first receive unblocks the coroutine's goroutine
// — either its very first waitResume, or the waitResume it called
// right after its previous yield — and the second blocks until that
// goroutine yields again or its entry function returns.
func (c *Coroutine) resume() error {
	caller := currentState()
	c.s.previous = caller
	if caller != nil {
		caller.state = StateNormal
	}
	c.s.state = StateRunning

	_, ok := <-c.s.yieldCh
	if ok {
		_, ok = <-c.s.yieldCh
	}
	if !ok {
		c.s.state = StateDead
	}

	if caller != nil {
		caller.state = StateRunning
	}
	c.s.previous = nil

	return nil
}

// Destroy implements spec.md §4.2's destruction contract: legal only
// while c is suspended or dead. If c is suspended, its background
// goroutine is unwound via kill before its storage is released.
func (c *Coroutine) Destroy() error {
	if !c.valid() {
		return opErr("destroy", ErrInvalidCoroutine)
	}
	switch c.s.state {
	case StateSuspended:
		c.s.kill()
	case StateDead:
	default:
		return opErr("destroy", ErrInvalidOperation)
	}
	c.s.alloc.Free(c.s.storage)
	c.destroyed = true
	runtime.SetFinalizer(c, nil)
	return nil
}

// Done reports whether c's entry function has returned.
func (c *Coroutine) Done() bool { return c.valid() && c.s.state == StateDead }

// Suspended reports whether c may currently be resumed.
func (c *Coroutine) Suspended() bool { return c.valid() && c.s.state == StateSuspended }

// Running reports whether c is the coroutine currently executing on
// its own goroutine.
func (c *Coroutine) Running() bool { return c.valid() && c.s.state == StateRunning }

// Valid reports whether c is non-nil and has not been destroyed.
func (c *Coroutine) Valid() bool { return c.valid() }

func (c *Coroutine) valid() bool { return c != nil && !c.destroyed }

// UserData returns the opaque value c was created with.
func (c *Coroutine) UserData() interface{} { return c.s.userData }

// Recovered returns the value of a panic that unwound out of the entry
// function, if Done reports true and the body did not return normally.
func (c *Coroutine) Recovered() interface{} { return c.s.recovered }

// StackSize returns the clamped stack size c was created with. See
// Descriptor.StackSize for why this is bookkeeping rather than a real
// allocation in this port.
func (c *Coroutine) StackSize() StackSize { return c.s.stackSize }

func (c *Coroutine) pushBytes(src []byte) error          { return c.s.pushBytes(src) }
func (c *Coroutine) pushBytesUnchecked(src []byte)       { c.s.pushBytesUnchecked(src) }
func (c *Coroutine) popBytes(n int, dst []byte) error    { return c.s.popBytes(n, dst) }
func (c *Coroutine) popBytesUnchecked(n int, dst []byte) { c.s.popBytesUnchecked(n, dst) }
func (c *Coroutine) peekBytes(n int, dst []byte) error   { return c.s.peekBytes(n, dst) }
func (c *Coroutine) peekBytesUnchecked(n int, dst []byte) {
	c.s.peekBytesUnchecked(n, dst)
}
