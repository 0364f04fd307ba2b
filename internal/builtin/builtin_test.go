package builtin

import (
	"testing"

	"github.com/LucasGrasso/gic/internal/ast"
	"github.com/LucasGrasso/gic/internal/unify"
)

func drain(t *testing.T, gen Generator, max int) []*unify.Substitution {
	t.Helper()
	var out []*unify.Substitution
	for gen != nil && len(out) < max {
		sub, rest, ok := gen.Next()
		if !ok {
			break
		}
		out = append(out, sub)
		gen = rest
	}
	return out
}

func TestEqSucceedsOnSyntacticEquality(t *testing.T) {
	prop := ast.Proposition{Name: "Eq", Terms: []ast.Term{ast.Atom("a"), ast.Atom("a")}}
	gen, claimed, err := Dispatch(prop, unify.New())
	if err != nil || !claimed {
		t.Fatalf("claimed=%v err=%v", claimed, err)
	}
	sols := drain(t, gen, 10)
	if len(sols) != 1 {
		t.Fatalf("expected exactly one solution, got %d", len(sols))
	}
}

func TestEqFailsWithUnboundVariable(t *testing.T) {
	prop := ast.Proposition{Name: "Eq", Terms: []ast.Term{ast.Var{Name: "X"}, ast.Atom("a")}}
	gen, claimed, err := Dispatch(prop, unify.New())
	if err != nil || !claimed {
		t.Fatalf("claimed=%v err=%v", claimed, err)
	}
	if len(drain(t, gen, 10)) != 0 {
		t.Errorf("expected Eq(X, a) with unbound X to fail, not bind X")
	}
}

func TestDiffFailsWhenTermsUnify(t *testing.T) {
	prop := ast.Proposition{Name: "Diff", Terms: []ast.Term{ast.Atom("a"), ast.Atom("a")}}
	gen, _, err := Dispatch(prop, unify.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drain(t, gen, 10)) != 0 {
		t.Errorf("expected Diff(a,a) to fail")
	}
}

func TestDiffSucceedsWithUnboundVariable(t *testing.T) {
	prop := ast.Proposition{Name: "Diff", Terms: []ast.Term{ast.Var{Name: "X"}, ast.Atom("a")}}
	gen, _, err := Dispatch(prop, unify.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sols := drain(t, gen, 10)
	if len(sols) != 1 {
		t.Fatalf("expected Diff(X, a) with unbound X to succeed once, got %d", len(sols))
	}
	if _, ok := sols[0].Lookup("X"); ok {
		t.Errorf("Diff must not bind X")
	}
}

func TestBetweenEnumeratesAscending(t *testing.T) {
	x := ast.Var{Name: "X"}
	prop := ast.Proposition{Name: "Between", Terms: []ast.Term{ast.Num{Value: 1}, ast.Num{Value: 3}, x}}
	gen, claimed, err := Dispatch(prop, unify.New())
	if err != nil || !claimed {
		t.Fatalf("claimed=%v err=%v", claimed, err)
	}
	sols := drain(t, gen, 10)
	if len(sols) != 3 {
		t.Fatalf("expected 3 solutions, got %d", len(sols))
	}
	for i, sub := range sols {
		got, _ := sub.Lookup("X")
		want := ast.Num{Value: int64(i + 1)}
		if !got.Equal(want) {
			t.Errorf("solution %d: X=%s, want %s", i, got, want)
		}
	}
}

func TestBetweenEmptyRangeFails(t *testing.T) {
	x := ast.Var{Name: "X"}
	prop := ast.Proposition{Name: "Between", Terms: []ast.Term{ast.Num{Value: 5}, ast.Num{Value: 3}, x}}
	gen, _, err := Dispatch(prop, unify.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drain(t, gen, 10)) != 0 {
		t.Errorf("expected Between(5,3,X) to produce no solutions")
	}
}

func TestDivByZeroIsFatal(t *testing.T) {
	prop := ast.Proposition{Name: "Div", Terms: []ast.Term{ast.Num{Value: 4}, ast.Num{Value: 0}, ast.Var{Name: "Z"}}}
	_, claimed, err := Dispatch(prop, unify.New())
	if err == nil {
		t.Fatal("expected a fatal division-by-zero error")
	}
	if !claimed {
		t.Error("a fatal error should still report claimed=true")
	}
}

func TestArithmeticFallsThroughWhenNotGround(t *testing.T) {
	prop := ast.Proposition{Name: "Add", Terms: []ast.Term{ast.Var{Name: "X"}, ast.Num{Value: 1}, ast.Var{Name: "Z"}}}
	_, claimed, err := Dispatch(prop, unify.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claimed {
		t.Error("expected claimed=false for a non-ground arithmetic call")
	}
}

func TestElemYieldsHeadBeforeTail(t *testing.T) {
	list := ast.List(ast.Atom("a"), ast.Atom("b"), ast.Atom("c"))
	x := ast.Var{Name: "X"}
	prop := ast.Proposition{Name: "Elem", Terms: []ast.Term{list, x}}
	gen, _, err := Dispatch(prop, unify.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sols := drain(t, gen, 10)
	if len(sols) != 3 {
		t.Fatalf("expected 3 solutions, got %d", len(sols))
	}
	want := []string{"a", "b", "c"}
	for i, sub := range sols {
		got, _ := sub.Lookup("X")
		if got.String() != want[i] {
			t.Errorf("solution %d = %s, want %s", i, got, want[i])
		}
	}
}

func TestElemOnEmptyListFails(t *testing.T) {
	prop := ast.Proposition{Name: "Elem", Terms: []ast.Term{ast.EmptyList, ast.Var{Name: "X"}}}
	gen, _, err := Dispatch(prop, unify.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drain(t, gen, 10)) != 0 {
		t.Errorf("expected Elem on an empty list to fail")
	}
}

func TestLengthBothBoundVerifies(t *testing.T) {
	list := ast.List(ast.Atom("a"), ast.Atom("b"))
	prop := ast.Proposition{Name: "Length", Terms: []ast.Term{list, ast.Num{Value: 2}}}
	gen, _, err := Dispatch(prop, unify.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drain(t, gen, 10)) != 1 {
		t.Errorf("expected Length([a,b], 2) to succeed once")
	}
}

func TestLengthListBoundComputesN(t *testing.T) {
	list := ast.List(ast.Atom("a"), ast.Atom("b"), ast.Atom("c"))
	n := ast.Var{Name: "N"}
	prop := ast.Proposition{Name: "Length", Terms: []ast.Term{list, n}}
	gen, _, err := Dispatch(prop, unify.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sols := drain(t, gen, 10)
	if len(sols) != 1 {
		t.Fatalf("expected exactly one solution, got %d", len(sols))
	}
	got, _ := sols[0].Lookup("N")
	if !got.Equal(ast.Num{Value: 3}) {
		t.Errorf("N = %s, want 3", got)
	}
}

func TestLengthBothFreeIsLazyAndAscending(t *testing.T) {
	l := ast.Var{Name: "L"}
	n := ast.Var{Name: "N"}
	prop := ast.Proposition{Name: "Length", Terms: []ast.Term{l, n}}
	gen, _, err := Dispatch(prop, unify.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sols := drain(t, gen, 5)
	if len(sols) != 5 {
		t.Fatalf("expected the lazy generator to keep producing, got %d", len(sols))
	}
	for i, sub := range sols {
		got, _ := sub.Lookup("N")
		if !got.Equal(ast.Num{Value: int64(i)}) {
			t.Errorf("solution %d: N=%s, want %d", i, got, i)
		}
	}
}

func TestIsListRejectsImproperTerm(t *testing.T) {
	improper := ast.Cons(ast.Atom("a"), ast.Var{Name: "T"})
	prop := ast.Proposition{Name: "Is_list", Terms: []ast.Term{improper}}
	gen, _, err := Dispatch(prop, unify.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drain(t, gen, 10)) != 0 {
		t.Errorf("expected an improper list to fail Is_list")
	}
}

func TestDispatchReportsUnclaimedForUnknownPredicate(t *testing.T) {
	prop := ast.Proposition{Name: "not_a_builtin", Terms: []ast.Term{ast.Atom("a")}}
	_, claimed, err := Dispatch(prop, unify.New())
	if err != nil || claimed {
		t.Errorf("expected claimed=false, err=nil for an unknown predicate")
	}
}
