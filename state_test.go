package coro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateString(t *testing.T) {
	cases := []struct {
		state State
		want  string
	}{
		{StateSuspended, "suspended"},
		{StateRunning, "running"},
		{StateNormal, "normal"},
		{StateDead, "dead"},
		{State(0), "invalid state"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.state.String())
	}
}
