package motion_test

import (
	"sync"
	"testing"
	"time"

	"github.com/go-motion/motion/pkg/motion"
)

// fakeWidget records property writes the way a widget's appearance layer
// would consume them.
type fakeWidget struct {
	mu         sync.Mutex
	properties map[string]float64
	refreshes  int
}

func newFakeWidget() *fakeWidget {
	return &fakeWidget{properties: make(map[string]float64)}
}

func (w *fakeWidget) SetProperty(name string, value float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.properties[name] = value
}

func (w *fakeWidget) AppearanceChanged() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.refreshes++
}

func (w *fakeWidget) property(name string) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.properties[name]
}

func (w *fakeWidget) refreshCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.refreshes
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(waitTimeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not reached before timeout")
}

func TestAnimateProperty(t *testing.T) {
	s := motion.NewScheduler()
	w := newFakeWidget()
	owner := motion.OwnerKey("widget-1")

	h, err := motion.AnimateProperty(s, owner, w, "opacity", 0, 1, quickConfig(100*time.Millisecond))
	if err != nil {
		t.Fatalf("AnimateProperty: %v", err)
	}
	if h.ID != "opacity" {
		t.Errorf("handle ID = %q, want the property name", h.ID)
	}

	waitFor(t, func() bool { return !s.IsRunning(owner, "opacity") })

	if got := w.property("opacity"); got != 1 {
		t.Errorf("opacity = %v, want exactly 1", got)
	}
	if w.refreshCount() == 0 {
		t.Error("AppearanceChanged never fired")
	}
}

func TestAnimatePropertyReplacesSameField(t *testing.T) {
	s := motion.NewScheduler()
	w := newFakeWidget()
	owner := motion.OwnerKey("widget-1")

	if _, err := motion.AnimateProperty(s, owner, w, "width", 0, 1000, quickConfig(2*time.Second)); err != nil {
		t.Fatalf("AnimateProperty: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	// Same field name: the first animation is replaced, not layered.
	if _, err := motion.AnimateProperty(s, owner, w, "width", 100, 200, quickConfig(100*time.Millisecond)); err != nil {
		t.Fatalf("AnimateProperty: %v", err)
	}
	if got := s.OwnerActiveCount(owner); got != 1 {
		t.Errorf("OwnerActiveCount = %d, want 1", got)
	}

	waitFor(t, func() bool { return !s.IsRunning(owner, "width") })

	if got := w.property("width"); got != 200 {
		t.Errorf("width = %v, want the replacement's end value 200", got)
	}
}

func TestAnimateProperties(t *testing.T) {
	s := motion.NewScheduler()
	w := newFakeWidget()
	owner := motion.OwnerKey("widget-1")

	spans := map[string]motion.Span{
		"width":   {From: 100, To: 150},
		"height":  {From: 40, To: 60},
		"opacity": {From: 0, To: 1},
	}
	if err := motion.AnimateProperties(s, owner, w, spans, quickConfig(100*time.Millisecond)); err != nil {
		t.Fatalf("AnimateProperties: %v", err)
	}
	if got := s.OwnerActiveCount(owner); got != 3 {
		t.Errorf("OwnerActiveCount = %d, want 3", got)
	}

	waitFor(t, func() bool { return s.OwnerActiveCount(owner) == 0 })

	if got := w.property("width"); got != 150 {
		t.Errorf("width = %v, want 150", got)
	}
	if got := w.property("height"); got != 60 {
		t.Errorf("height = %v, want 60", got)
	}
	if got := w.property("opacity"); got != 1 {
		t.Errorf("opacity = %v, want 1", got)
	}
}

func TestAnimatePropertiesInvalidConfig(t *testing.T) {
	s := motion.NewScheduler()
	w := newFakeWidget()

	spans := map[string]motion.Span{"width": {From: 0, To: 1}}
	err := motion.AnimateProperties(s, "widget-1", w, spans, motion.Config{})
	if err == nil {
		t.Fatal("expected config error")
	}
	if got := s.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount = %d, want 0", got)
	}
}
