// Package cmsl is the library entry point (§6): a thin façade over the
// lexer → parser → analyser → evaluator pipeline so callers that only want
// "run this source and get an exit code" never have to wire the four
// internal packages together themselves, the way the teacher's own
// top-level Interpret/Compile wrapper (internal/interp) stitches its own
// phases together behind one function.
package cmsl

import (
	"github.com/cmsl-lang/cmsl/internal/diag"
	"github.com/cmsl-lang/cmsl/internal/eval"
	"github.com/cmsl-lang/cmsl/internal/facade"
	"github.com/cmsl-lang/cmsl/internal/lexer"
	"github.com/cmsl-lang/cmsl/internal/parser"
	"github.com/cmsl-lang/cmsl/internal/sema"
)

// options collects what Option functions configure.
type options struct {
	observer eval.Observer
	facade   facade.Facade
}

// Option configures one aspect of an Execute call.
type Option func(*options)

// WithObserver routes every diagnostic from every phase to o instead of the
// default *diag.Collector Execute would otherwise create and discard.
func WithObserver(o eval.Observer) Option {
	return func(opt *options) { opt.observer = o }
}

// WithFacade forwards the evaluator's impure builtins to f instead of the
// default in-memory facade.Recording.
func WithFacade(f facade.Facade) Option {
	return func(opt *options) { opt.facade = f }
}

// Execute compiles and evaluates source, returning main's return value, or
// the -1 sentinel (§6) if a fatal diagnostic was raised at any phase
// (lex/parse/analyse/evaluate) before main could run to completion.
func Execute(source []byte, opts ...Option) (int32, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var collector *diag.Collector
	if o.observer == nil {
		collector = diag.NewCollector()
		o.observer = collector
	}
	if o.facade == nil {
		o.facade = facade.NewRecording()
	}

	toks := lexer.New(string(source), o.observer).Tokenize()
	tu := parser.New(toks, o.observer).Parse()

	analyzer := sema.New(o.observer)
	prog := analyzer.Analyze(tu)

	if o.observer.DidFatalErrorOccur() {
		return -1, nil
	}

	ev := eval.New(o.observer, o.facade)
	ret, err := ev.Run(prog)
	if err != nil {
		return -1, err
	}
	if o.observer.DidFatalErrorOccur() {
		return -1, nil
	}
	return int32(ret), nil
}
