package motiontest

import (
	"sync"
	"testing"
	"time"
)

func TestFakeClockAdvance(t *testing.T) {
	c := NewFakeClock()
	start := c.Now()

	c.Advance(250 * time.Millisecond)
	if got := c.Now().Sub(start); got != 250*time.Millisecond {
		t.Errorf("elapsed = %v, want 250ms", got)
	}

	if got := c.Advance(time.Second).Sub(start); got != 1250*time.Millisecond {
		t.Errorf("elapsed = %v, want 1.25s", got)
	}
	if got := c.Elapsed(); got != 1250*time.Millisecond {
		t.Errorf("Elapsed = %v, want 1.25s", got)
	}
}

func TestFakeClockAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	c := NewFakeClockAt(start)
	if got := c.Now(); !got.Equal(start) {
		t.Errorf("Now = %v, want %v", got, start)
	}

	c.Set(start.Add(time.Minute))
	if got := c.Elapsed(); got != time.Minute {
		t.Errorf("Elapsed = %v, want 1m after Set", got)
	}
}

func TestFakeClockSet(t *testing.T) {
	c := NewFakeClock()
	target := time.Date(2030, 6, 15, 12, 0, 0, 0, time.UTC)
	c.Set(target)
	if got := c.Now(); !got.Equal(target) {
		t.Errorf("Now = %v, want %v", got, target)
	}
}

func TestFakeClockConcurrent(t *testing.T) {
	c := NewFakeClock()
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				c.Advance(time.Millisecond)
				_ = c.Now()
			}
		}()
	}
	wg.Wait()

	want := NewFakeClock().Now().Add(time.Second)
	if got := c.Now(); !got.Equal(want) {
		t.Errorf("Now = %v, want %v after 1000 concurrent 1ms advances", got, want)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	if r.Len() != 0 || r.Last() != 0 {
		t.Error("new recorder not empty")
	}

	r.Update(0.25)
	r.Update(0.5)
	r.Update(1)

	if got := r.Len(); got != 3 {
		t.Errorf("Len = %d, want 3", got)
	}
	if got := r.Last(); got != 1 {
		t.Errorf("Last = %v, want 1", got)
	}
	values := r.Values()
	if len(values) != 3 || values[0] != 0.25 {
		t.Errorf("Values = %v", values)
	}

	// Values returns a copy.
	values[0] = 99
	if r.Values()[0] != 0.25 {
		t.Error("Values exposed internal slice")
	}
}

func TestRecorderComplete(t *testing.T) {
	r := NewRecorder()
	select {
	case <-r.Done():
		t.Fatal("Done closed before completion")
	default:
	}

	r.Complete()
	r.Complete()

	if got := r.Completions(); got != 2 {
		t.Errorf("Completions = %d, want 2", got)
	}
	if !r.Wait(time.Second) {
		t.Error("Wait timed out after completion")
	}
	select {
	case <-r.Done():
	default:
		t.Error("Done not closed after completion")
	}
}

func TestRecorderWaitTimeout(t *testing.T) {
	r := NewRecorder()
	if r.Wait(10 * time.Millisecond) {
		t.Error("Wait reported completion without one")
	}
}
