package builtin

import (
	"errors"
	"fmt"

	"github.com/LucasGrasso/gic/internal/ast"
	"github.com/LucasGrasso/gic/internal/unify"
)

// predFn is the internal shape every built-in predicate implements: given
// its already-arity-checked argument terms and the incoming
// substitution, produce a Generator of solutions.
type predFn func(args []ast.Term, sub *unify.Substitution) (Generator, error)

// errNotClaimed is returned by a predFn when its arguments are not
// sufficiently ground for it to decide anything — e.g. Add/3 with a
// non-ground first argument. The resolver treats this exactly like "no
// built-in claimed this predicate", falling through to ordinary clause
// resolution (where, in practice, no clause will define an arithmetic
// predicate either, so the goal simply fails).
var errNotClaimed = errors.New("builtin: predicate arguments insufficiently ground")

type tableEntry struct {
	arity int
	fn    predFn
}

var table = buildTable()

func buildTable() map[string]tableEntry {
	t := map[string]tableEntry{
		"Eq":   {2, eqPred},
		"Diff": {2, diffPred},
		"Var":  {1, varPred},

		"Is_list": {1, isListPred},
		"Length":  {2, lengthPred},
		"Elem":    {2, elemPred},

		"Between": {3, betweenPred},
	}
	for name, op := range arithOps {
		t[name] = tableEntry{3, arithPred(op)}
	}
	for name, op := range compareOps {
		t[name] = tableEntry{2, comparePred(op)}
	}
	return t
}

// Dispatch looks up prop.Name/arity in the built-in table. claimed is
// false when the name/arity is not a built-in at all, or when a built-in
// matched but its arguments were not ground enough to decide (in both
// cases the resolver falls through to ordinary clause resolution). A
// non-nil err is always fatal (currently: division or modulo by zero)
// and must abort the entire query.
func Dispatch(prop ast.Proposition, sub *unify.Substitution) (gen Generator, claimed bool, err error) {
	entry, ok := table[prop.Name]
	if !ok || entry.arity != len(prop.Terms) {
		return nil, false, nil
	}
	gen, err = entry.fn(prop.Terms, sub)
	if err != nil {
		if errors.Is(err, errNotClaimed) {
			return nil, false, nil
		}
		return nil, true, fmt.Errorf("builtin %s/%d: %w", prop.Name, entry.arity, err)
	}
	return gen, true, nil
}

// IsBuiltin reports whether name/arity names a built-in predicate. The
// clause loader does not consult it; clauses for a built-in name load
// normally and are tried only for goals that Dispatch does not claim.
func IsBuiltin(name string, arity int) bool {
	entry, ok := table[name]
	return ok && entry.arity == arity
}
