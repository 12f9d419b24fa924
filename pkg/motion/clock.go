package motion

import "time"

// Clock provides time for animations. Each [Scheduler] carries its own
// clock, defaulting to system time; tests inject a fake via
// [Scheduler.SetClock] to control animation timing deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
