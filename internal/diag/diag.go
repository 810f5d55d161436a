// Package diag routes core diagnostics to a charmbracelet/log logger.
package diag

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wordrpg/internal/core"
)

// LogReporter writes diagnostics as structured log lines.
type LogReporter struct {
	logger *log.Logger
}

// NewLogger creates the stderr logger used by the CLI.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordrpg",
		Level:           level,
	})
}

// NewLogReporter wraps logger as a core.Reporter.
func NewLogReporter(logger *log.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report logs msg at the level assigned to kind, tagged with the kind.
func (r *LogReporter) Report(kind core.DiagKind, msg string, keyvals ...any) {
	kv := append([]any{"kind", string(kind)}, keyvals...)
	r.logger.Log(levelFor(kind), msg, kv...)
}

// levelFor maps a diagnostic kind to a log level. Out-of-bounds writes are
// routine when text is clipped at the screen edge, so they stay at debug.
func levelFor(kind core.DiagKind) log.Level {
	switch kind {
	case core.DiagUnknownColor:
		return log.WarnLevel
	case core.DiagOutOfBounds:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}

// Entry is one recorded diagnostic.
type Entry struct {
	Kind    core.DiagKind
	Msg     string
	Keyvals []any
}

// Recorder keeps diagnostics in memory.
type Recorder struct {
	Entries []Entry
}

// Report appends the diagnostic.
func (r *Recorder) Report(kind core.DiagKind, msg string, keyvals ...any) {
	r.Entries = append(r.Entries, Entry{Kind: kind, Msg: msg, Keyvals: keyvals})
}

// Count returns how many diagnostics of kind were recorded.
func (r *Recorder) Count(kind core.DiagKind) int {
	n := 0
	for _, e := range r.Entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Tee forwards every diagnostic to each reporter in turn.
func Tee(reporters ...core.Reporter) core.Reporter {
	return core.ReporterFunc(func(kind core.DiagKind, msg string, keyvals ...any) {
		for _, r := range reporters {
			r.Report(kind, msg, keyvals...)
		}
	})
}
