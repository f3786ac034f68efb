package coro

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	cases := []struct {
		err  Error
		want string
	}{
		{ErrGeneric, "generic error"},
		{ErrNotSuspended, "coroutine not suspended"},
		{ErrStackOverflow, "stack overflow"},
		{Error(999), "coro: unknown error (999)"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.err.String())
	}
}

func TestErrorIsThroughOpError(t *testing.T) {
	err := opErr("resume", ErrNotSuspended)
	require.True(t, errors.Is(err, ErrNotSuspended))
	require.False(t, errors.Is(err, ErrNotRunning))

	var opErrTarget *OpError
	require.True(t, errors.As(err, &opErrTarget))
	require.Equal(t, "resume", opErrTarget.Op)
}

func TestErrorImplementsError(t *testing.T) {
	var err error = ErrOutOfMemory
	require.EqualError(t, err, "coro: out of memory")
}
