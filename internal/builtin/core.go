package builtin

import (
	"github.com/LucasGrasso/gic/internal/ast"
	"github.com/LucasGrasso/gic/internal/unify"
)

// eqPred implements Eq(X, Y): succeeds, without extending the
// substitution, iff X and Y are syntactically equal once sub is applied
// to both. This is plain equality, not unification — Eq(X, a) with X
// still unbound fails rather than binding X.
func eqPred(args []ast.Term, sub *unify.Substitution) (Generator, error) {
	left := sub.Apply(args[0])
	right := sub.Apply(args[1])
	if !left.Equal(right) {
		return FromSlice(nil), nil
	}
	return FromSlice([]*unify.Substitution{sub}), nil
}

// diffPred implements Diff(X, Y): succeeds, without extending the
// substitution, iff X and Y are NOT syntactically equal once sub is
// applied to both — the mirror image of eqPred.
func diffPred(args []ast.Term, sub *unify.Substitution) (Generator, error) {
	left := sub.Apply(args[0])
	right := sub.Apply(args[1])
	if left.Equal(right) {
		return FromSlice(nil), nil
	}
	return FromSlice([]*unify.Substitution{sub}), nil
}

// varPred implements Var(X): succeeds iff X is currently an unbound
// logic variable.
func varPred(args []ast.Term, sub *unify.Substitution) (Generator, error) {
	walked := sub.Walk(args[0])
	if _, ok := walked.(ast.Var); ok {
		return FromSlice([]*unify.Substitution{sub}), nil
	}
	return FromSlice(nil), nil
}
