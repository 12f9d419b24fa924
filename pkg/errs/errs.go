// Package errs provides structured error reporting for the motion engine.
//
// Synchronous failures (bad configuration) are returned to the caller as
// ordinary errors. Asynchronous failures (a panic inside an owner callback)
// cannot be returned to anyone, so they are reported to a global, replaceable
// [Handler] instead. The default handler logs through charmbracelet/log.
package errs

import (
	"fmt"
	"time"
)

// Kind identifies the category of an engine error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates an invalid animation configuration.
	KindConfig
	// KindCallback indicates a failure inside an owner-supplied callback.
	KindCallback
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindProfile indicates a malformed motion profile file.
	KindProfile
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindCallback:
		return "callback"
	case KindPanic:
		return "panic"
	case KindProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// EngineError represents a structured error in the motion engine.
type EngineError struct {
	// Op is the operation that failed (e.g., "motion.Start").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Err is the underlying error.
	Err error
	// Owner is the owner key of the affected animation, if applicable.
	Owner string
	// Animation is the animation ID within the owner, if applicable.
	Animation string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *EngineError) Error() string {
	if e.Owner != "" || e.Animation != "" {
		return fmt.Sprintf("%s [%s] owner=%s animation=%s: %v", e.Op, e.Kind, e.Owner, e.Animation, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// ConfigError describes a rejected animation configuration field.
type ConfigError struct {
	// Field is the configuration field that failed validation.
	Field string
	// Reason explains why the value was rejected.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid animation config: %s: %s", e.Field, e.Reason)
}

// PanicError represents a panic recovered from an owner callback.
type PanicError struct {
	// Op is the operation that panicked (e.g., "motion.onUpdate").
	Op string
	// Value is the value passed to panic().
	Value any
	// Owner is the owner key of the animation whose callback panicked.
	Owner string
	// Animation is the animation ID within the owner.
	Animation string
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by the motion engine.
type Handler interface {
	// HandleError is called when an asynchronous error occurs.
	HandleError(err *EngineError)
	// HandlePanic is called when a callback panic is recovered.
	HandlePanic(err *PanicError)
}
