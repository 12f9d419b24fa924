package motion

import (
	"sync"
)

// Scheduler owns the registry of running animations and drives their
// execution. All methods are safe for concurrent use from any goroutine,
// including owner callbacks.
//
// Most applications use the package-level [Default] scheduler through the
// mirrored package functions; independent schedulers are useful in tests and
// for isolating subsystems.
type Scheduler struct {
	mu      sync.Mutex
	clock   Clock
	running map[Handle]*running
	runners map[uint64]struct{} // goroutine ids of live runners
}

// NewScheduler returns an empty scheduler driven by system time.
func NewScheduler() *Scheduler {
	return &Scheduler{
		clock:   realClock{},
		running: make(map[Handle]*running),
		runners: make(map[uint64]struct{}),
	}
}

// Default is the process-wide scheduler used by the package-level functions.
var Default = NewScheduler()

// SetClock replaces the scheduler's time source and returns the previous
// one; a nil clock restores system time. The clock is captured per animation
// at Start, so swap it before starting anything that should observe it.
func (s *Scheduler) SetClock(c Clock) Clock {
	if c == nil {
		c = realClock{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.clock
	s.clock = c
	return prev
}

// Start begins animating from one value to another, invoking onUpdate with
// the interpolated value on every tick and onComplete once after the final
// iteration finishes naturally.
//
// The configuration is validated synchronously; no goroutine is spawned for
// an invalid config. If an animation already runs under (owner, id) it is
// cancelled first — its completion callback never fires, and Start waits out
// any of its callbacks still in flight before the replacement begins, so the
// two instances never interleave updates. Start returns immediately after
// that; execution is asynchronous on the animation's own goroutine.
//
// onComplete may be nil. onUpdate may be nil, in which case the animation
// only marks time until completion. Callbacks run on the animation's
// goroutine: owners animating several properties concurrently are
// responsible for synchronizing the state their callbacks touch.
func (s *Scheduler) Start(owner OwnerKey, id string, from, to float64, cfg Config, onUpdate func(float64), onComplete func()) (Handle, error) {
	h := Handle{Owner: owner, ID: id}
	if err := cfg.Validate(); err != nil {
		return Handle{}, err
	}

	r := &running{
		handle:     h,
		cfg:        cfg,
		from:       from,
		to:         to,
		easingFn:   cfg.Easing.Func(),
		onUpdate:   onUpdate,
		onComplete: onComplete,
		stopped:    make(chan struct{}),
	}

	s.mu.Lock()
	r.clock = s.clock
	prev := s.running[h]
	if prev != nil {
		prev.cancel()
	}
	s.running[h] = r
	s.mu.Unlock()

	if prev != nil {
		s.await(prev)
	}
	go s.run(r)
	return h, nil
}

// Stop cancels the animation running under (owner, id). It is idempotent:
// stopping an unknown or already-finished handle is a no-op. Once Stop
// returns, IsRunning reports false and no further updates or completion will
// be delivered: Stop blocks until any callback already in flight for the
// instance has returned. The one exception is a call made from inside an
// animation callback, where waiting would deadlock; there Stop returns
// immediately and the callback in progress is the last.
func (s *Scheduler) Stop(owner OwnerKey, id string) {
	h := Handle{Owner: owner, ID: id}
	s.mu.Lock()
	r, ok := s.running[h]
	if ok {
		r.cancel()
		delete(s.running, h)
	}
	s.mu.Unlock()

	if ok {
		s.await(r)
	}
}

// StopOwner cancels every animation running for the given owner, with the
// same in-flight callback guarantee as Stop.
func (s *Scheduler) StopOwner(owner OwnerKey) {
	var cancelled []*running
	s.mu.Lock()
	for h, r := range s.running {
		if h.Owner == owner {
			r.cancel()
			delete(s.running, h)
			cancelled = append(cancelled, r)
		}
	}
	s.mu.Unlock()

	for _, r := range cancelled {
		s.await(r)
	}
}

// StopAll cancels every running animation, with the same in-flight callback
// guarantee as Stop.
func (s *Scheduler) StopAll() {
	var cancelled []*running
	s.mu.Lock()
	for h, r := range s.running {
		r.cancel()
		delete(s.running, h)
		cancelled = append(cancelled, r)
	}
	s.mu.Unlock()

	for _, r := range cancelled {
		s.await(r)
	}
}

// await blocks until any in-flight callback of a cancelled instance has
// returned. Acquiring the callback mutex is the barrier: it cannot succeed
// until the callback holding it finishes, and the cancelled flag set before
// the wait keeps every later frame from firing. The wait is skipped on
// runner goroutines — a callback stopping its own animation would wait on
// itself, and callbacks stopping each other's animations could wait in a
// cycle; for those callers cancellation still takes effect before the next
// tick.
func (s *Scheduler) await(r *running) {
	s.mu.Lock()
	_, onRunner := s.runners[goroutineID()]
	s.mu.Unlock()
	if onRunner {
		return
	}
	r.cbMu.Lock()
	r.cbMu.Unlock()
}

// IsRunning reports whether an animation is live under (owner, id).
func (s *Scheduler) IsRunning(owner OwnerKey, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.running[Handle{Owner: owner, ID: id}]
	return ok
}

// ActiveCount returns the number of running animations across all owners.
func (s *Scheduler) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.running)
}

// OwnerActiveCount returns the number of running animations for one owner.
func (s *Scheduler) OwnerActiveCount(owner OwnerKey) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for h := range s.running {
		if h.Owner == owner {
			n++
		}
	}
	return n
}

// finish removes a naturally completed animation from the registry and fires
// its completion callback. The cancelled check happens under the registry
// lock: Stop also sets the flag under that lock, so either the stop wins and
// no completion fires, or the completion wins and the stop becomes a no-op.
func (s *Scheduler) finish(r *running) {
	s.mu.Lock()
	if r.isCancelled() {
		s.mu.Unlock()
		return
	}
	// Only remove our own entry; a replacement may have taken the key.
	if cur, ok := s.running[r.handle]; ok && cur == r {
		delete(s.running, r.handle)
	}
	s.mu.Unlock()

	r.complete()
}

// Start begins an animation on the Default scheduler.
func Start(owner OwnerKey, id string, from, to float64, cfg Config, onUpdate func(float64), onComplete func()) (Handle, error) {
	return Default.Start(owner, id, from, to, cfg, onUpdate, onComplete)
}

// Stop cancels an animation on the Default scheduler.
func Stop(owner OwnerKey, id string) {
	Default.Stop(owner, id)
}

// StopOwner cancels an owner's animations on the Default scheduler.
func StopOwner(owner OwnerKey) {
	Default.StopOwner(owner)
}

// StopAll cancels every animation on the Default scheduler.
func StopAll() {
	Default.StopAll()
}

// IsRunning reports whether an animation is live on the Default scheduler.
func IsRunning(owner OwnerKey, id string) bool {
	return Default.IsRunning(owner, id)
}

// ActiveCount returns the Default scheduler's running animation count.
func ActiveCount() int {
	return Default.ActiveCount()
}
