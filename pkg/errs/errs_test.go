package errs

import (
	"errors"
	"testing"
	"time"
)

type testHandler struct {
	onError func(*EngineError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *EngineError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindCallback, "callback"},
		{KindPanic, "panic"},
		{KindProfile, "profile"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestEngineErrorString(t *testing.T) {
	err := &EngineError{
		Op:        "motion.onUpdate",
		Kind:      KindCallback,
		Err:       errors.New("boom"),
		Owner:     "widget-1",
		Animation: "fade",
	}
	got := err.Error()
	if !contains(got, "owner=widget-1") || !contains(got, "animation=fade") {
		t.Errorf("error string %q missing handle info", got)
	}
	if !contains(got, "[callback]") {
		t.Errorf("error string %q missing kind", got)
	}
}

func TestEngineErrorUnwrap(t *testing.T) {
	inner := &ConfigError{Field: "Duration", Reason: "must be positive"}
	err := &EngineError{Op: "motion.Start", Kind: KindConfig, Err: inner}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatal("expected errors.As to find ConfigError")
	}
	if cfgErr.Field != "Duration" {
		t.Errorf("Field = %q, want %q", cfgErr.Field, "Duration")
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Op: "motion.onComplete", Value: "bad state"}
	want := "panic in motion.onComplete: bad state"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &PanicError{Value: 42}
	if got := err.Error(); got != "panic: 42" {
		t.Errorf("Error() = %q, want %q", got, "panic: 42")
	}
}

func TestReportSetsTimestamp(t *testing.T) {
	var captured *EngineError
	prev := SetHandler(&testHandler{onError: func(err *EngineError) { captured = err }})
	defer SetHandler(prev)

	Report(&EngineError{Op: "test.op", Kind: KindConfig, Err: errors.New("x")})

	if captured == nil {
		t.Fatal("expected error to reach handler")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	prev := SetHandler(&testHandler{onError: func(*EngineError) { called = true }})
	defer SetHandler(prev)

	Report(nil)
	ReportPanic(nil)

	if called {
		t.Error("nil reports must not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(prev)

	func() {
		defer Recover("test.op", "owner-a", "pulse")
		panic("kaboom")
	}()

	if captured == nil {
		t.Fatal("expected panic to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Owner != "owner-a" || captured.Animation != "pulse" {
		t.Errorf("handle = %q/%q, want owner-a/pulse", captured.Owner, captured.Animation)
	}
	if captured.Value != "kaboom" {
		t.Errorf("Value = %v, want %q", captured.Value, "kaboom")
	}
	if captured.StackTrace == "" {
		t.Error("expected a captured stack trace")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecoverNoPanic(t *testing.T) {
	called := false
	prev := SetHandler(&testHandler{onPanic: func(*PanicError) { called = true }})
	defer SetHandler(prev)

	func() {
		defer Recover("test.op", "", "")
	}()

	if called {
		t.Error("Recover reported without a panic")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	prev := SetHandler(&testHandler{})
	SetHandler(nil)
	defer SetHandler(prev)

	if _, ok := getHandler().(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", getHandler())
	}
}

func TestLogHandlerNilSafe(t *testing.T) {
	h := &LogHandler{}
	h.HandleError(&EngineError{Op: "x", Err: errors.New("y"), Timestamp: time.Now()})
	h.HandlePanic(&PanicError{Op: "x", Value: "y"})
	h.HandleError(nil)
	h.HandlePanic(nil)
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
