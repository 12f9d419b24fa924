package motion

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-motion/motion/pkg/errs"
)

// running is the mutable state of one animation instance. It is created by
// Scheduler.Start and from then on mutated only by its own runner goroutine
// and by cancel; nothing else may touch it.
type running struct {
	handle     Handle
	cfg        Config
	from, to   float64
	easingFn   func(float64) float64
	onUpdate   func(float64)
	onComplete func()
	clock      Clock

	// cbMu is held around every callback invocation. Stop acquires it after
	// cancelling, so a stop cannot return while a callback is in flight, and
	// the cancelled re-check inside update keeps any later frame from firing.
	cbMu sync.Mutex

	cancelled atomic.Bool
	stopped   chan struct{} // closed by cancel to wake tick sleeps
}

// cancel marks the instance cancelled and wakes its runner. Safe to call
// more than once; only the first call closes the channel.
func (r *running) cancel() {
	if r.cancelled.CompareAndSwap(false, true) {
		close(r.stopped)
	}
}

func (r *running) isCancelled() bool {
	return r.cancelled.Load()
}

// sleep waits for d or until the animation is cancelled, reporting whether
// the full wait elapsed.
func (r *running) sleep(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-r.stopped:
		return false
	}
}

// update delivers one interpolated value, isolating callback panics so a
// failing owner costs a dropped frame rather than the whole animation.
// The cancelled flag is re-checked under cbMu: a Stop that already returned
// has been promised no further updates.
func (r *running) update(value float64) {
	if r.onUpdate == nil {
		return
	}
	r.cbMu.Lock()
	defer r.cbMu.Unlock()
	if r.isCancelled() {
		return
	}
	defer errs.Recover("motion.onUpdate", string(r.handle.Owner), r.handle.ID)
	r.onUpdate(value)
}

// complete fires the completion callback, swallowing (and reporting) panics.
func (r *running) complete() {
	if r.onComplete == nil {
		return
	}
	r.cbMu.Lock()
	defer r.cbMu.Unlock()
	defer errs.Recover("motion.onComplete", string(r.handle.Owner), r.handle.ID)
	r.onComplete()
}

// goroutineID parses the calling goroutine's id from the runtime stack
// header ("goroutine 123 [...]"). The scheduler tracks its runner
// goroutines by id so that a callback stopping animations never waits on a
// callback mutex it (or a peer callback) is holding.
func goroutineID() uint64 {
	var buf [64]byte
	header := bytes.TrimPrefix(buf[:runtime.Stack(buf[:], false)], []byte("goroutine "))
	i := bytes.IndexByte(header, ' ')
	if i <= 0 {
		return 0
	}
	id, err := strconv.ParseUint(string(header[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// run is the tween runner: it executes one animation instance to completion
// or cancellation on its own goroutine.
//
// Per iteration, progress is derived from wall-clock elapsed time rather
// than a tick counter, so duration stays accurate regardless of scheduling
// jitter. On odd iterations of an auto-reversing animation the eased value
// is flipped rather than raw time; existing widget motion depends on the
// curve shape that produces, so it is load-bearing behavior.
func (s *Scheduler) run(r *running) {
	gid := goroutineID()
	s.mu.Lock()
	s.runners[gid] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.runners, gid)
		s.mu.Unlock()
	}()

	if r.cfg.StartDelay > 0 {
		if !r.sleep(r.cfg.StartDelay) {
			return
		}
	}

	interval := r.cfg.TickInterval()
	duration := r.cfg.Duration

	for iteration := 0; r.cfg.RepeatCount == RepeatForever || iteration < r.cfg.RepeatCount; iteration++ {
		iterationStart := r.clock.Now()

		for {
			if r.isCancelled() {
				return
			}

			elapsed := r.clock.Now().Sub(iterationStart)
			progress := float64(elapsed) / float64(duration)
			if progress < 0 {
				progress = 0
			} else if progress > 1 {
				progress = 1
			}

			eased := r.easingFn(progress)
			if r.cfg.AutoReverse && iteration%2 == 1 {
				eased = 1 - eased
			}

			r.update(r.from + (r.to-r.from)*eased)

			if progress >= 1 {
				break
			}
			if !r.sleep(interval) {
				return
			}
		}
	}

	s.finish(r)
}
