package coro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratorFibonacci(t *testing.T) {
	gen, err := NewGenerator[int](func(y Yielder) {
		a, b := 0, 1
		for {
			if err := YieldValue(y, a); err != nil {
				return
			}
			a, b = b, a+b
		}
	}, DefaultStackSize)
	require.NoError(t, err)
	defer gen.Destroy()

	want := []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34}
	got := make([]int, 0, len(want))
	for i := 0; i < len(want); i++ {
		v, ok, err := gen.Next()
		require.NoError(t, err)
		require.True(t, ok)
		got = append(got, v)
	}
	require.Equal(t, want, got)
}

func TestGeneratorExhaustion(t *testing.T) {
	gen, err := NewGenerator[int](func(y Yielder) {
		require.NoError(t, YieldValue(y, 1))
	}, DefaultStackSize)
	require.NoError(t, err)
	defer gen.Destroy()

	v, ok, err := gen.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok, err = gen.Next()
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = gen.Next()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGeneratorSeq(t *testing.T) {
	gen, err := NewGenerator[int](func(y Yielder) {
		for i := 1; i <= 3; i++ {
			if err := YieldValue(y, i); err != nil {
				return
			}
		}
	}, DefaultStackSize)
	require.NoError(t, err)
	defer gen.Destroy()

	var got []int
	for v := range gen.Seq() {
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 3}, got)
}
