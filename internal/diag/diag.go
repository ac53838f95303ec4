// Package diag defines the diagnostic taxonomy shared by every phase of the
// CMSL pipeline and the Observer interface external collaborators implement
// to receive them.
package diag

import (
	"fmt"

	"github.com/cmsl-lang/cmsl/pkg/token"
)

// Category classifies a Diagnostic the way the lexer, parser, analyser, and
// evaluator each report failures. It mirrors the error taxonomy of §7: Lex,
// Parse, Resolve, Overload, Type, and Runtime, plus Internal for invariant
// violations that should never surface from correct input.
type Category string

const (
	CategoryLex      Category = "lex"
	CategoryParse    Category = "parse"
	CategoryResolve  Category = "resolve"
	CategoryOverload Category = "overload"
	CategoryType     Category = "type"
	CategoryRuntime  Category = "runtime"
	CategoryInternal Category = "internal"
)

// Severity distinguishes diagnostics that abort evaluation from ones that
// are merely reported (e.g. integer division by zero, per §7, warns but
// does not set the fatal flag).
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityFatal:
		return "fatal error"
	default:
		return "error"
	}
}

// Diagnostic is the single structured message type that flows out of band
// from every pipeline stage to the Observer. It always carries a source
// range so a UI can point at the offending text.
type Diagnostic struct {
	Category Category
	Severity Severity
	Message  string
	Range    token.Range
}

// Error satisfies the standard error interface so a Diagnostic can also be
// returned directly from library-entry functions.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s %s at %s", d.Category, d.Severity, d.Message, d.Range.Begin)
}

// Observer is the single sink every diagnostic flows through. Implementations
// may aggregate, print, or discard; NotifyError must never panic, matching
// the "never throws" contract of the original errors_observer.
type Observer interface {
	NotifyError(d Diagnostic)
}

// Collector is a reference Observer that appends every diagnostic it
// receives, in order, and tracks whether any Severity >= SeverityError has
// been seen, fatal sets a sticky flag that the evaluator checks before each
// statement boundary.
type Collector struct {
	Diagnostics []Diagnostic
	fatal       bool
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// NotifyError implements Observer.
func (c *Collector) NotifyError(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
	if d.Severity == SeverityFatal {
		c.fatal = true
	}
}

// DidFatalErrorOccur reports the sticky fatal flag, checked by the evaluator
// before each statement per §5.
func (c *Collector) DidFatalErrorOccur() bool { return c.fatal }

// HasErrors reports whether any non-warning diagnostic was recorded.
func (c *Collector) HasErrors() bool {
	for _, d := range c.Diagnostics {
		if d.Severity >= SeverityError {
			return true
		}
	}
	return false
}

func newDiag(cat Category, sev Severity, rng token.Range, format string, args ...any) Diagnostic {
	return Diagnostic{Category: cat, Severity: sev, Range: rng, Message: fmt.Sprintf(format, args...)}
}

// NewLexError builds a Lex-category error diagnostic.
func NewLexError(rng token.Range, format string, args ...any) Diagnostic {
	return newDiag(CategoryLex, SeverityError, rng, format, args...)
}

// NewParseError builds a Parse-category error diagnostic.
func NewParseError(rng token.Range, format string, args ...any) Diagnostic {
	return newDiag(CategoryParse, SeverityError, rng, format, args...)
}

// NewResolveError builds a Resolve-category error diagnostic.
func NewResolveError(rng token.Range, format string, args ...any) Diagnostic {
	return newDiag(CategoryResolve, SeverityError, rng, format, args...)
}

// NewOverloadError builds an Overload-category error diagnostic.
func NewOverloadError(rng token.Range, format string, args ...any) Diagnostic {
	return newDiag(CategoryOverload, SeverityError, rng, format, args...)
}

// NewTypeError builds a Type-category error diagnostic.
func NewTypeError(rng token.Range, format string, args ...any) Diagnostic {
	return newDiag(CategoryType, SeverityError, rng, format, args...)
}

// NewRuntimeWarning builds a Runtime-category warning (non-fatal), used for
// integer division by zero per §7.
func NewRuntimeWarning(rng token.Range, format string, args ...any) Diagnostic {
	return newDiag(CategoryRuntime, SeverityWarning, rng, format, args...)
}

// NewRuntimeFatal builds a Runtime-category fatal diagnostic, used for
// out-of-range container indices and a missing main per §7.
func NewRuntimeFatal(rng token.Range, format string, args ...any) Diagnostic {
	return newDiag(CategoryRuntime, SeverityFatal, rng, format, args...)
}

// NewInternal builds an Internal diagnostic for invariant violations that
// should be unreachable from valid SEMA trees (see DESIGN.md's note on the
// visitor default-case redesign).
func NewInternal(rng token.Range, format string, args ...any) Diagnostic {
	return newDiag(CategoryInternal, SeverityFatal, rng, format, args...)
}
