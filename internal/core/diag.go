package core

// DiagKind classifies a non-fatal event reported by the core.
type DiagKind string

const (
	// DiagUnknownColor is reported when a map pixel has no matching tile.
	DiagUnknownColor DiagKind = "unknown-color"
	// DiagOutOfBounds is reported when a screen write falls outside the buffer.
	DiagOutOfBounds DiagKind = "out-of-bounds"
)

// Reporter receives diagnostics that must not interrupt the caller.
// Keyvals follow the alternating key/value convention of structured loggers.
type Reporter interface {
	Report(kind DiagKind, msg string, keyvals ...any)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(kind DiagKind, msg string, keyvals ...any)

// Report calls f.
func (f ReporterFunc) Report(kind DiagKind, msg string, keyvals ...any) {
	f(kind, msg, keyvals...)
}

// Discard is a Reporter that drops everything.
var Discard Reporter = ReporterFunc(func(DiagKind, string, ...any) {})
