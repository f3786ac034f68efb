package coro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaskRunnerRoundRobin(t *testing.T) {
	var log []int

	taskA, err := New(Descriptor{
		Entry: func(y Yielder) {
			log = append(log, 1)
			y.Yield()
			log = append(log, 3)
			y.Yield()
			log = append(log, 5)
		},
	})
	require.NoError(t, err)
	defer taskA.Destroy()

	taskB, err := New(Descriptor{
		Entry: func(y Yielder) {
			log = append(log, 2)
			y.Yield()
			log = append(log, 4)
			y.Yield()
			log = append(log, 6)
		},
	})
	require.NoError(t, err)
	defer taskB.Destroy()

	var runner TaskRunner
	runner.Add(taskA)
	runner.Add(taskB)

	require.NoError(t, runner.Run())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, log)
	require.True(t, taskA.Done())
	require.True(t, taskB.Done())
}

func TestTaskRunnerStepRemovesDeadTasks(t *testing.T) {
	task, err := New(Descriptor{Entry: func(Yielder) {}})
	require.NoError(t, err)
	defer task.Destroy()

	var runner TaskRunner
	runner.Add(task)

	more, err := runner.Step()
	require.NoError(t, err)
	require.False(t, more)
	require.Empty(t, runner.tasks)
}

func TestTaskRunnerPropagatesError(t *testing.T) {
	task, err := New(Descriptor{Entry: func(Yielder) {}})
	require.NoError(t, err)
	require.NoError(t, task.Resume())
	require.True(t, task.Done())
	require.NoError(t, task.Destroy())

	var runner TaskRunner
	runner.Add(task)

	_, err = runner.Step()
	require.ErrorIs(t, err, ErrInvalidCoroutine)
}
