package builtin

import (
	"github.com/LucasGrasso/gic/internal/ast"
	"github.com/LucasGrasso/gic/internal/gicerr"
	"github.com/LucasGrasso/gic/internal/unify"
)

// groundInt walks t through sub and reports its integer value, or
// ok=false if it is not a ground Num.
func groundInt(t ast.Term, sub *unify.Substitution) (int64, bool) {
	n, ok := sub.Walk(t).(ast.Num)
	return n.Value, ok
}

// arithOp is one ternary arithmetic relation: X op Y = Z.
type arithOp func(x, y int64) (int64, error)

var arithOps = map[string]arithOp{
	"Add": func(x, y int64) (int64, error) { return x + y, nil },
	"Sub": func(x, y int64) (int64, error) { return x - y, nil },
	"Mul": func(x, y int64) (int64, error) { return x * y, nil },
	"Div": func(x, y int64) (int64, error) {
		if y == 0 {
			return 0, gicerr.New(gicerr.KindDivisionByZero, "division by zero")
		}
		return x / y, nil
	},
	"Mod": func(x, y int64) (int64, error) {
		if y == 0 {
			return 0, gicerr.New(gicerr.KindDivisionByZero, "modulo by zero")
		}
		return x % y, nil
	},
}

// arithPred implements the X,Y,Z ternary arithmetic builtins. X and Y
// must both be ground; Z may be ground (checked) or unbound (bound to
// the result). A division or modulo by zero is fatal and aborts the
// whole query rather than merely failing this branch, per the
// specification's treatment of it as a programming error rather than an
// ordinary unification mismatch.
func arithPred(op arithOp) predFn {
	return func(args []ast.Term, sub *unify.Substitution) (Generator, error) {
		x, xOk := groundInt(args[0], sub)
		y, yOk := groundInt(args[1], sub)
		if !xOk || !yOk {
			return nil, errNotClaimed
		}
		result, err := op(x, y)
		if err != nil {
			return nil, err
		}
		extended, uerr := unify.MGUTerms(args[2], ast.Num{Value: result}, sub)
		if uerr != nil {
			return FromSlice(nil), nil
		}
		return FromSlice([]*unify.Substitution{extended}), nil
	}
}

type compareOp func(x, y int64) bool

var compareOps = map[string]compareOp{
	"Lt":       func(x, y int64) bool { return x < y },
	"Lt_eq":    func(x, y int64) bool { return x <= y },
	"Gt":       func(x, y int64) bool { return x > y },
	"Gt_eq":    func(x, y int64) bool { return x >= y },
	"Eq_int":   func(x, y int64) bool { return x == y },
	"Diff_int": func(x, y int64) bool { return x != y },
}

// comparePred implements the binary ground integer comparisons. Both
// arguments must be ground; this never binds anything.
func comparePred(op compareOp) predFn {
	return func(args []ast.Term, sub *unify.Substitution) (Generator, error) {
		x, xOk := groundInt(args[0], sub)
		y, yOk := groundInt(args[1], sub)
		if !xOk || !yOk {
			return nil, errNotClaimed
		}
		if op(x, y) {
			return FromSlice([]*unify.Substitution{sub}), nil
		}
		return FromSlice(nil), nil
	}
}

// betweenPred implements Between(Lo, Hi, X): Lo and Hi must be ground. If
// X is ground, it succeeds once iff Lo <= X <= Hi. If X is unbound, it
// enumerates Lo, Lo+1, ..., Hi in ascending order, one solution per
// integer in range.
func betweenPred(args []ast.Term, sub *unify.Substitution) (Generator, error) {
	lo, loOk := groundInt(args[0], sub)
	hi, hiOk := groundInt(args[1], sub)
	if !loOk || !hiOk {
		return nil, errNotClaimed
	}
	if x, ok := groundInt(args[2], sub); ok {
		if x >= lo && x <= hi {
			return FromSlice([]*unify.Substitution{sub}), nil
		}
		return FromSlice(nil), nil
	}
	if lo > hi {
		return FromSlice(nil), nil
	}
	subs := make([]*unify.Substitution, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		extended, err := unify.MGUTerms(args[2], ast.Num{Value: i}, sub)
		if err != nil {
			continue
		}
		subs = append(subs, extended)
	}
	return FromSlice(subs), nil
}
