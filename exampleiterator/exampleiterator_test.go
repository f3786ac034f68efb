package exampleiterator

import (
	"errors"
	"fmt"
)

func Example() {
	iter, err := NewFooIterator(func(yield func(Foo)) error {
		for _, foo := range []Foo{"foo", "bar", "baz"} {
			yield(foo)
		}
		return errors.New("done")
	})
	if err != nil {
		fmt.Println("create error:", err)
		return
	}
	defer iter.Close()

	for iter.Next() {
		fmt.Println("yielded:", iter.Yielded)
	}
	fmt.Println("returned:", iter.Returned)

	// Output:
	// yielded: foo
	// yielded: bar
	// yielded: baz
	// returned: done
}
