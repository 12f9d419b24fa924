// Package motion is a toolkit-agnostic animation scheduling engine: keyed,
// cancellable, time-based value interpolation with pluggable easing,
// repeat/auto-reverse, and per-frame callbacks.
//
// # Core Components
//
//   - [Scheduler]: owns the registry of running animations, keyed by
//     (owner, animation ID). At most one animation is live per key; starting
//     a new one atomically replaces the old.
//
//   - [Config]: the immutable per-animation configuration (duration, easing,
//     frame rate, auto-reverse, repeat count, start delay).
//
//   - [Tween]: maps the engine's interpolated progress onto values of any
//     type via a Lerp function.
//
//   - [AnimateProperty]: convenience layer that binds an animation directly
//     to a named numeric field on a [PropertyTarget].
//
// # Basic Usage
//
// Start an animation on the package-level scheduler and consume values in the
// update callback:
//
//	owner := motion.NewOwnerKey()
//	cfg := motion.DefaultConfig()
//	cfg.Duration = time.Second
//	cfg.Easing = easing.CubicOut
//
//	motion.Start(owner, "fade", 0, 1, cfg,
//	    func(v float64) { widget.SetOpacity(v) },
//	    func() { widget.SetOpacity(1) },
//	)
//
//	// Later, from any goroutine:
//	motion.Stop(owner, "fade")
//
// Each running animation is driven by its own goroutine using wall-clock
// elapsed time, so durations stay accurate under scheduling jitter.
// Cancellation is cooperative: Stop marks the instance cancelled, wakes its
// runner, and then waits out any callback already in flight, so once Stop
// returns no further updates or completion will be delivered. Calls made
// from inside an animation callback skip that wait (it would deadlock) and
// instead take effect before the next tick. Callbacks execute on the
// animation's goroutine, never under the registry lock; owners animating
// several properties concurrently synchronize their own state.
//
// Panics raised inside callbacks are isolated and reported through
// [github.com/go-motion/motion/pkg/errs]: a panicking update callback costs
// one frame, a panicking completion callback is swallowed. Neither terminates
// the runner or corrupts the registry.
package motion
