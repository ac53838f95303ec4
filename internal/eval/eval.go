package eval

import (
	"github.com/cmsl-lang/cmsl/internal/diag"
	"github.com/cmsl-lang/cmsl/internal/facade"
	"github.com/cmsl-lang/cmsl/internal/sema"
	"github.com/cmsl-lang/cmsl/internal/types"
	"github.com/cmsl-lang/cmsl/internal/value"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

// Observer is diag.Observer plus the sticky fatal-flag query the evaluator
// needs: *diag.Collector, which the CLI/library wires in, satisfies it, so
// internal/eval depends on this local interface rather than the concrete
// Collector type.
type Observer interface {
	diag.Observer
	DidFatalErrorOccur() bool
}

// Evaluator walks one analysed Program, executing main. It owns no state
// across runs beyond what's passed to New — a fresh Evaluator per Run call
// is the expected usage, matching pkg/cmsl.Execute's one-shot contract.
type Evaluator struct {
	observer Observer
	facade   facade.Facade
}

// New returns an Evaluator reporting diagnostics to observer and forwarding
// impure builtins (add_executable, link_to, message, ...) to f.
func New(observer Observer, f facade.Facade) *Evaluator {
	return &Evaluator{observer: observer, facade: f}
}

// Run locates main (the free function named "main" returning int, per
// §4.7) and executes it in a fresh root frame with no arguments. A missing
// main is a fatal Runtime diagnostic per §7; it returns -1 the same way
// pkg/cmsl's sentinel does, so callers that skip the error return still see
// the fatal-path value.
func (e *Evaluator) Run(prog *sema.Program) (int64, error) {
	main := findMain(prog)
	if main == nil {
		e.observer.NotifyError(diag.NewRuntimeFatal(token.Range{}, "no function 'main' returning int was found"))
		return -1, nil
	}

	ret := e.callFunction(main.Symbol, nil, nil)
	if iv, ok := ret.(value.Int); ok {
		return iv.Value, nil
	}
	return 0, nil
}

// findMain returns the analysed main function, or nil.
func findMain(prog *sema.Program) *sema.Function {
	for _, fn := range prog.Functions {
		if fn.Symbol != nil && fn.Symbol.Name == "main" && fn.Symbol.ReceiverType == nil &&
			fn.Symbol.ReturnType != nil && fn.Symbol.ReturnType.Kind() == types.KindInt {
			return fn
		}
	}
	return nil
}

// fatalOccurred reports whether execution should stop at the next
// statement boundary (§5/§7): the sticky flag is owned by the observer, not
// by the Evaluator, so every phase sharing the same Collector sees it.
func (e *Evaluator) fatalOccurred() bool {
	return e.observer.DidFatalErrorOccur()
}
