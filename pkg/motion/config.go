package motion

import (
	"fmt"
	"time"

	"github.com/go-motion/motion/pkg/easing"
	"github.com/go-motion/motion/pkg/errs"
)

const (
	// DefaultFrameRate is the tick rate used when Config.FrameRate is zero.
	DefaultFrameRate = 60

	// RepeatForever makes an animation repeat until it is explicitly stopped.
	RepeatForever = -1
)

// Config describes one animation. It is a value type: the engine copies it at
// Start and never reads it again, so a Config cannot change a running
// animation.
//
// The zero value is not runnable (zero duration, zero repeat count); start
// from [DefaultConfig] and override fields as needed.
type Config struct {
	// Duration is the length of one repeat iteration. Must be positive.
	Duration time.Duration

	// Easing selects the curve applied to raw time progress.
	// The zero value is easing.Linear.
	Easing easing.Kind

	// FrameRate is the target update rate in ticks per second.
	// Zero means DefaultFrameRate; negative is invalid.
	FrameRate int

	// AutoReverse plays odd repeat iterations backwards (ping-pong).
	AutoReverse bool

	// RepeatCount is the number of iterations to play: 1 plays once,
	// larger values play that many times, RepeatForever repeats until
	// stopped. Zero is invalid so a half-filled Config fails fast instead
	// of silently never running.
	RepeatCount int

	// StartDelay is applied once, before the first iteration. A stop during
	// the delay prevents any update or completion callback.
	StartDelay time.Duration
}

// DefaultConfig returns the configuration widgets conventionally animate
// with: 300ms, ease-out-cubic, 60 ticks per second, played once.
func DefaultConfig() Config {
	return Config{
		Duration:    300 * time.Millisecond,
		Easing:      easing.CubicOut,
		FrameRate:   DefaultFrameRate,
		RepeatCount: 1,
	}
}

// TickInterval returns the time between updates derived from FrameRate.
func (c Config) TickInterval() time.Duration {
	rate := c.FrameRate
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	return time.Second / time.Duration(rate)
}

// Validate checks the configuration, returning a *errs.ConfigError describing
// the first rejected field.
func (c Config) Validate() error {
	if c.Duration <= 0 {
		return &errs.ConfigError{Field: "Duration", Reason: "must be positive"}
	}
	if !c.Easing.IsValid() {
		return &errs.ConfigError{Field: "Easing", Reason: fmt.Sprintf("unknown curve %v", c.Easing)}
	}
	if c.FrameRate < 0 {
		return &errs.ConfigError{Field: "FrameRate", Reason: "must not be negative"}
	}
	if c.RepeatCount == 0 || c.RepeatCount < RepeatForever {
		return &errs.ConfigError{Field: "RepeatCount", Reason: "must be >= 1 or RepeatForever"}
	}
	if c.StartDelay < 0 {
		return &errs.ConfigError{Field: "StartDelay", Reason: "must not be negative"}
	}
	return nil
}
