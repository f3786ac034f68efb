package coro_test

import (
	"fmt"

	"github.com/coropkg/coro"
)

func Example() {
	c, err := coro.New(coro.Descriptor{
		Entry: func(y coro.Yielder) {
			for i := 1; i <= 3; i++ {
				fmt.Println("coroutine:", i)
				y.Yield()
			}
			fmt.Println("coroutine: done")
		},
	})
	if err != nil {
		fmt.Println("create error:", err)
		return
	}
	defer c.Destroy()

	fmt.Println("not started yet")
	for !c.Done() {
		if err := c.Resume(); err != nil {
			fmt.Println("resume error:", err)
			return
		}
		if !c.Done() {
			fmt.Println("yielded")
		}
	}
	fmt.Println("returned")

	// Output:
	// not started yet
	// coroutine: 1
	// yielded
	// coroutine: 2
	// yielded
	// coroutine: 3
	// yielded
	// coroutine: done
	// returned
}

func ExampleGenerator() {
	gen, err := coro.NewGenerator[int](func(y coro.Yielder) {
		a, b := 0, 1
		for {
			if err := coro.YieldValue(y, a); err != nil {
				return
			}
			a, b = b, a+b
		}
	}, coro.DefaultStackSize)
	if err != nil {
		fmt.Println("create error:", err)
		return
	}
	defer gen.Destroy()

	for i := 0; i < 10; i++ {
		v, ok, err := gen.Next()
		if err != nil || !ok {
			fmt.Println("unexpected stop")
			return
		}
		fmt.Println(v)
	}

	// Output:
	// 0
	// 1
	// 1
	// 2
	// 3
	// 5
	// 8
	// 13
	// 21
	// 34
}
