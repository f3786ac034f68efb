package coro

// Generator wraps a coroutine whose body repeatedly pushes a T and
// yields, implementing spec.md §4.5's value-producing façade over the
// raw resume/pop pair. It generalizes the teacher's (tcard-coro)
// NewIterator/exampleiterator pattern from reflect-based type erasure
// to real generics.
type Generator[T storable] struct {
	c *Coroutine
}

// NewGenerator creates a Generator around a fresh coroutine running
// body. body receives a Yielder it should pass to YieldValue once per
// produced value.
func NewGenerator[T storable](body func(Yielder), stackSize StackSize) (*Generator[T], error) {
	c, err := New(Descriptor{Entry: body, StackSize: stackSize})
	if err != nil {
		return nil, err
	}
	return &Generator[T]{c: c}, nil
}

// YieldValue is spec.md §4.5's yield_value: the canonical combined
// push-then-yield used inside a generator body.
func YieldValue[T storable](y Yielder, v T) error {
	if err := Push(y, v); err != nil {
		return err
	}
	return y.Yield()
}

// Next implements spec.md §4.5's next(). If the coroutine is already
// dead it reports no more values. Otherwise it resumes the coroutine;
// if the coroutine died during that resume it also reports no more
// values; otherwise it pops the value the body just pushed.
func (g *Generator[T]) Next() (T, bool, error) {
	var zero T
	if g.c.Done() {
		return zero, false, nil
	}
	if err := g.c.Resume(); err != nil {
		return zero, false, err
	}
	if g.c.Done() {
		return zero, false, nil
	}
	v, err := Pop[T](g.c)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// Seq adapts Next into a range-over-func iterator: for v := range
// g.Seq() { ... } on Go versions with range-over-func support.
func (g *Generator[T]) Seq() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for {
			v, ok, err := g.Next()
			if err != nil || !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Destroy releases the underlying coroutine.
func (g *Generator[T]) Destroy() error {
	return g.c.Destroy()
}
