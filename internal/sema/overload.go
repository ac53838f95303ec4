package sema

import (
	"github.com/cmsl-lang/cmsl/internal/diag"
	"github.com/cmsl-lang/cmsl/internal/types"
	"github.com/cmsl-lang/cmsl/pkg/token"
)

// resolveCall picks the one FunctionSymbol among candidates that args can be
// implicitly converted to call, converting each argument via convertTo and
// returning the converted argument list alongside the winner. candidates is
// a single flat set — a class's members, a list<T>'s, or one layer of
// Scope.LookupLayers (§4.6's layer-hiding rule: picking *which* layer to
// hand this function is the caller's job, done in analyzeFunctionCall for
// free calls and resolveMethodCall for member calls — this function never
// falls through to a different candidate set on its own).
func (a *Analyzer) resolveCall(candidates []*FunctionSymbol, name string, args []Expr, rng token.Range) (*FunctionSymbol, []Expr) {
	var viable []*FunctionSymbol
	for _, cand := range candidates {
		if len(cand.Params) != len(args) {
			continue
		}
		ok := true
		for i, p := range cand.Params {
			if !canConvert(args[i], p) {
				ok = false
				break
			}
		}
		if ok {
			viable = append(viable, cand)
		}
	}

	switch len(viable) {
	case 0:
		a.observer.NotifyError(diag.NewOverloadError(rng, "no overload of %q accepts the given %d argument(s)", name, len(args)))
		return nil, args
	case 1:
		winner := viable[0]
		converted := make([]Expr, len(args))
		for i, arg := range args {
			converted[i] = a.convertTo(arg, winner.Params[i], arg.Range())
		}
		return winner, converted
	default:
		a.observer.NotifyError(diag.NewOverloadError(rng, "call to %q is ambiguous among %d overloads", name, len(viable)))
		return nil, args
	}
}

// resolveMethodCall implements member-call resolution: a class's (or
// builtin class-shaped type's, or list<T>'s) members form one flat
// candidate set, since members live on the receiver's type rather than in
// the lexical scope chain — there is no layering to hide.
func (a *Analyzer) resolveMethodCall(receiverType types.Type, name string, args []Expr, rng token.Range) (*FunctionSymbol, []Expr) {
	candidates := a.memberCandidates(receiverType, name)
	if len(candidates) == 0 {
		a.errorf(rng, "%s has no member %q", receiverType, name)
		return nil, args
	}
	return a.resolveCall(candidates, name, args, rng)
}
