package coro

// TaskRunner owns a sequence of coroutines and resumes them in strict
// round-robin order by insertion order, per spec.md §4.6. A TaskRunner
// is not safe for concurrent use: "one task runner per thread is the
// contract" (spec.md §5).
type TaskRunner struct {
	tasks []*Coroutine
}

// Add appends a live coroutine to the runner.
func (r *TaskRunner) Add(c *Coroutine) {
	r.tasks = append(r.tasks, c)
}

// Step resumes each live task once, in insertion order, removing any
// that reach dead during this step, and reports whether any live tasks
// remain. A non-transient error from any task terminates the step
// immediately and is returned; the offending coroutine, and any tasks
// not yet visited this step, are left in the task list unchanged.
func (r *TaskRunner) Step() (bool, error) {
	live := r.tasks[:0]
	for i, c := range r.tasks {
		if c.Done() {
			continue
		}
		if err := c.Resume(); err != nil {
			r.tasks = append(live, r.tasks[i:]...)
			return false, err
		}
		if !c.Done() {
			live = append(live, c)
		}
	}
	r.tasks = live
	return len(r.tasks) > 0, nil
}

// Run loops Step until no live tasks remain or a task reports an error.
func (r *TaskRunner) Run() error {
	for {
		more, err := r.Step()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}
