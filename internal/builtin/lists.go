package builtin

import (
	"github.com/LucasGrasso/gic/internal/ast"
	"github.com/LucasGrasso/gic/internal/unify"
)

// isListPred implements Is_list(L): succeeds iff L walks to a proper
// cons/empty_list spine (no unbound tail, no improper terminator).
func isListPred(args []ast.Term, sub *unify.Substitution) (Generator, error) {
	if isProperList(args[0], sub) {
		return FromSlice([]*unify.Substitution{sub}), nil
	}
	return FromSlice(nil), nil
}

func isProperList(t ast.Term, sub *unify.Substitution) bool {
	for {
		t = sub.Walk(t)
		f, ok := t.(ast.Fun)
		if !ok {
			return false
		}
		if f.Name == "empty_list" && len(f.Args) == 0 {
			return true
		}
		if f.Name != "cons" || len(f.Args) != 2 {
			return false
		}
		t = f.Args[1]
	}
}

// lengthPred implements Length(L, N) across its four groundness cases:
// both bound (verify), L bound/N free (compute), L free/N bound
// (construct a fresh N-element list), and both free (lazily enumerate
// 0, 1, 2, ... list/length pairs forever).
func lengthPred(args []ast.Term, sub *unify.Substitution) (Generator, error) {
	l, n := args[0], args[1]
	lWalked := sub.Walk(l)
	_, lIsVar := lWalked.(ast.Var)
	nVal, nGround := groundInt(n, sub)

	if !lIsVar {
		count, ok := listLength(lWalked, sub)
		if !ok {
			return FromSlice(nil), nil
		}
		extended, err := unify.MGUTerms(n, ast.Num{Value: int64(count)}, sub)
		if err != nil {
			return FromSlice(nil), nil
		}
		return FromSlice([]*unify.Substitution{extended}), nil
	}

	if nGround {
		if nVal < 0 {
			return FromSlice(nil), nil
		}
		fresh := freshList(int(nVal))
		extended, err := unify.MGUTerms(l, fresh, sub)
		if err != nil {
			return FromSlice(nil), nil
		}
		return FromSlice([]*unify.Substitution{extended}), nil
	}

	return lazyLengthFrom(0, l, n, sub), nil
}

// listLength walks a cons spine counting cells; returns ok=false if the
// spine is not a proper list (unbound or improper tail).
func listLength(t ast.Term, sub *unify.Substitution) (int, bool) {
	count := 0
	for {
		t = sub.Walk(t)
		f, ok := t.(ast.Fun)
		if !ok {
			return 0, false
		}
		if f.Name == "empty_list" && len(f.Args) == 0 {
			return count, true
		}
		if f.Name != "cons" || len(f.Args) != 2 {
			return 0, false
		}
		count++
		t = f.Args[1]
	}
}

// freshListSeq is a monotonic counter backing fresh variable names for
// newly-constructed lists of unbound elements, so two Length calls never
// mint colliding names.
var freshListSeq int64

func freshList(n int) ast.Term {
	elems := make([]ast.Term, n)
	for i := 0; i < n; i++ {
		freshListSeq++
		elems[i] = ast.Var{Name: elemVarName(freshListSeq)}
	}
	return ast.List(elems...)
}

func elemVarName(n int64) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	name := ""
	for {
		name = string(alphabet[n%26]) + name
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return "_Len" + name
}

// lazyLengthFrom builds the infinite generator for Length(L, N) with both
// arguments unbound: at step n it binds N to n and L to a fresh n-element
// list, then always offers a continuation for n+1.
func lazyLengthFrom(n int, l, nTerm ast.Term, sub *unify.Substitution) Generator {
	return FuncGenerator(func() (*unify.Substitution, Generator, bool) {
		fresh := freshList(n)
		extended, err := unify.MGUTerms(nTerm, ast.Num{Value: int64(n)}, sub)
		if err == nil {
			extended, err = unify.MGUTerms(l, fresh, extended)
		}
		rest := lazyLengthFrom(n+1, l, nTerm, sub)
		if err != nil {
			return rest.Next()
		}
		return extended, rest, true
	})
}

// elemPred implements Elem(L, X): list membership. A cons cell yields two
// continuations in head-first order — X unified with the head, then X
// sought in the tail; an empty list yields none.
func elemPred(args []ast.Term, sub *unify.Substitution) (Generator, error) {
	l, x := args[0], args[1]
	return elemGenerator(l, x, sub), nil
}

func elemGenerator(l, x ast.Term, sub *unify.Substitution) Generator {
	walked := sub.Walk(l)
	f, ok := walked.(ast.Fun)
	if !ok || f.Name != "cons" || len(f.Args) != 2 {
		return FromSlice(nil)
	}
	head, tail := f.Args[0], f.Args[1]

	return FuncGenerator(func() (*unify.Substitution, Generator, bool) {
		if extended, err := unify.MGUTerms(x, head, sub); err == nil {
			return extended, elemGenerator(tail, x, sub), true
		}
		return elemGenerator(tail, x, sub).Next()
	})
}
