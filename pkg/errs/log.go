package errs

import (
	"os"

	"github.com/charmbracelet/log"
)

// LogHandler is a Handler that writes engine errors through a charmbracelet
// logger.
type LogHandler struct {
	// Logger receives the log records. Required.
	Logger *log.Logger
	// Verbose enables stack trace output for recovered panics.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to stderr with timestamps.
func NewLogHandler() *LogHandler {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "motion",
	})
	return &LogHandler{Logger: logger}
}

// HandleError logs an EngineError.
func (h *LogHandler) HandleError(err *EngineError) {
	if err == nil || h.Logger == nil {
		return
	}
	fields := []any{"kind", err.Kind.String(), "err", err.Err}
	if err.Owner != "" {
		fields = append(fields, "owner", err.Owner)
	}
	if err.Animation != "" {
		fields = append(fields, "animation", err.Animation)
	}
	h.Logger.Error(err.Op, fields...)
}

// HandlePanic logs a recovered callback panic.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil || h.Logger == nil {
		return
	}
	fields := []any{"value", err.Value}
	if err.Owner != "" {
		fields = append(fields, "owner", err.Owner)
	}
	if err.Animation != "" {
		fields = append(fields, "animation", err.Animation)
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, "stack", err.StackTrace)
	}
	h.Logger.Error("panic in "+err.Op, fields...)
}
