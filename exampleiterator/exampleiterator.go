// Package exampleiterator is a worked example of a type-safe wrapper
// around coro.Generator.
package exampleiterator

import (
	"github.com/coropkg/coro"
)

// Foo is the type that a FooIterator yields.
type Foo string

// NewFooIterator wraps coro.NewGenerator with a type-safe interface: f
// is run on its own coroutine stack, and every value it passes to yield
// becomes one FooIterator.Next() step.
func NewFooIterator(f func(yield func(Foo)) error) (*FooIterator, error) {
	it := &FooIterator{}

	gen, err := coro.NewGenerator[Foo](func(y coro.Yielder) {
		it.Returned = f(func(v Foo) {
			_ = coro.YieldValue(y, v)
		})
	}, coro.DefaultStackSize)
	if err != nil {
		return nil, err
	}

	it.gen = gen
	return it, nil
}

// A FooIterator holds what's needed to iterate Foos.
type FooIterator struct {
	gen *coro.Generator[Foo]

	// Yielded holds the most recent value produced by Next.
	Yielded Foo
	// Returned is set once the wrapped function has returned.
	Returned error
}

// Next advances the iterator. It reports whether a new value is
// available on Yielded; once it returns false, Returned holds whatever
// error f returned (nil on ordinary completion).
func (it *FooIterator) Next() bool {
	v, ok, err := it.gen.Next()
	if err != nil {
		it.Returned = err
		return false
	}
	if !ok {
		return false
	}
	it.Yielded = v
	return true
}

// Close releases the iterator's underlying coroutine. It is safe to
// call once Next has returned false.
func (it *FooIterator) Close() error {
	return it.gen.Destroy()
}
