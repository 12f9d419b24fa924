package motiontest

import (
	"sync"
	"time"
)

// Recorder captures the values an animation delivers and its completion,
// for assertions in tests. Its Update and Complete methods plug directly
// into Scheduler.Start as the onUpdate and onComplete callbacks.
type Recorder struct {
	mu          sync.Mutex
	values      []float64
	completions int
	done        chan struct{}
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{done: make(chan struct{})}
}

// Update records one delivered value.
func (r *Recorder) Update(value float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, value)
}

// Complete records a completion and unblocks Done.
func (r *Recorder) Complete() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completions++
	if r.completions == 1 {
		close(r.done)
	}
}

// Values returns a copy of the recorded values.
func (r *Recorder) Values() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float64, len(r.values))
	copy(out, r.values)
	return out
}

// Len returns the number of recorded values.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Last returns the most recently recorded value, or zero if none.
func (r *Recorder) Last() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.values) == 0 {
		return 0
	}
	return r.values[len(r.values)-1]
}

// Completions returns how many times Complete was called.
func (r *Recorder) Completions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completions
}

// Done is closed on the first completion.
func (r *Recorder) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the first completion or the timeout, reporting whether
// the animation completed.
func (r *Recorder) Wait(timeout time.Duration) bool {
	select {
	case <-r.done:
		return true
	case <-time.After(timeout):
		return false
	}
}
