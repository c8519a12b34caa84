package boolmin

import (
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2/lexer"
)

// Logger is the diagnostic channel the parser writes non-fatal warnings and
// parse errors to. It is deliberately narrow so tests can substitute a
// capturing implementation instead of a global stderr write.
type Logger interface {
	Warnf(pos lexer.Position, format string, args ...any)
}

// StderrLogger writes diagnostics to an io.Writer (conventionally
// os.Stderr), one line per warning, prefixed with the warning's position.
type StderrLogger struct {
	Writer io.Writer
}

// Warnf writes a single diagnostic line to l.Writer.
func (l StderrLogger) Warnf(pos lexer.Position, format string, args ...any) {
	fmt.Fprintf(l.Writer, "warning: %d:%d: %s\n", pos.Line, pos.Column, fmt.Sprintf(format, args...))
}

// Diagnostic is one captured warning, as recorded by CapturingLogger.
type Diagnostic struct {
	Pos     lexer.Position
	Message string
}

// CapturingLogger records diagnostics in memory instead of writing them,
// for tests that want to assert on parser behavior without side effects.
type CapturingLogger struct {
	Diagnostics []Diagnostic
}

// Warnf appends a Diagnostic to l.Diagnostics.
func (l *CapturingLogger) Warnf(pos lexer.Position, format string, args ...any) {
	l.Diagnostics = append(l.Diagnostics, Diagnostic{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// discardLogger is used when the caller does not supply a Logger.
type discardLogger struct{}

func (discardLogger) Warnf(lexer.Position, string, ...any) {}

// NopLogger discards every diagnostic. It is the Logger callers outside
// this package should use when they have nowhere to route warnings.
type NopLogger struct{}

// Warnf discards its arguments.
func (NopLogger) Warnf(lexer.Position, string, ...any) {}
