package algospectral

// Task is a one-shot handle to a scheduled transform. Once scheduled the
// transform runs to completion; there is no cancellation or partial-result
// path.
type Task struct {
	done chan struct{}
	err  error
}

// Done returns a channel that is closed when the transform has finished.
// It is the non-blocking counterpart of Wait for select loops.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the transform completes and returns its error, if any.
// Wait may be called from multiple goroutines and more than once.
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// schedule runs fn on its own goroutine and returns its handle.
// One task per call; fn must not be reused across tasks.
func schedule(fn func() error) *Task {
	t := &Task{done: make(chan struct{})}

	go func() {
		t.err = fn()
		close(t.done)
	}()

	return t
}

// completedTask returns an already-finished task carrying err. Used when
// validation rejects a call before any work is scheduled.
func completedTask(err error) *Task {
	t := &Task{done: make(chan struct{}), err: err}
	close(t.done)

	return t
}
