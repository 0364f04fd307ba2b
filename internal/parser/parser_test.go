package parser

import (
	"testing"

	"github.com/LucasGrasso/gic/internal/ast"
)

func TestParseSimpleFact(t *testing.T) {
	exprs, err := ParseClauses(`human(socrates);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exprs) != 1 {
		t.Fatalf("expected one clause, got %d", len(exprs))
	}
	pe, ok := exprs[0].(ast.PropositionExpr)
	if !ok {
		t.Fatalf("expected a proposition, got %T", exprs[0])
	}
	if pe.Prop.Name != "human" || len(pe.Prop.Terms) != 1 {
		t.Errorf("got %s", pe.Prop)
	}
}

func TestParseImplicationIsRightAssociative(t *testing.T) {
	expr, err := ParseQuery(`p(X) impl q(X) impl r(X)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top, ok := expr.(ast.Implies)
	if !ok {
		t.Fatalf("expected Implies at top level, got %T", expr)
	}
	if _, ok := top.Right.(ast.Implies); !ok {
		t.Errorf("expected right-associativity: right side should itself be Implies, got %T", top.Right)
	}
}

func TestParseAndBindsTighterThanOr(t *testing.T) {
	expr, err := ParseQuery(`p(a) or q(a) and r(a)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top, ok := expr.(ast.Or)
	if !ok {
		t.Fatalf("expected Or at top level (and binds tighter), got %T", expr)
	}
	if _, ok := top.Right.(ast.And); !ok {
		t.Errorf("expected the right operand of Or to be an And, got %T", top.Right)
	}
}

func TestParseNotBindsTighterThanAnd(t *testing.T) {
	expr, err := ParseQuery(`not p(a) and q(a)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top, ok := expr.(ast.And)
	if !ok {
		t.Fatalf("expected And at top level, got %T", expr)
	}
	if _, ok := top.Left.(ast.Not); !ok {
		t.Errorf("expected the left operand to be Not, got %T", top.Left)
	}
}

func TestParseQuantifierPrefix(t *testing.T) {
	expr, err := ParseQuery(`forall X. exists Y. parent(X, Y)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fa, ok := expr.(ast.ForAll)
	if !ok || fa.Var != "X" {
		t.Fatalf("expected ForAll X, got %#v", expr)
	}
	ex, ok := fa.Inner.(ast.Exists)
	if !ok || ex.Var != "Y" {
		t.Fatalf("expected nested Exists Y, got %#v", fa.Inner)
	}
}

func TestParseParenthesesOverridePrecedence(t *testing.T) {
	expr, err := ParseQuery(`(p(a) or q(a)) and r(a)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top, ok := expr.(ast.And)
	if !ok {
		t.Fatalf("expected And at top level, got %T", expr)
	}
	if _, ok := top.Left.(ast.Or); !ok {
		t.Errorf("expected the parenthesized left operand to be Or, got %T", top.Left)
	}
}

func TestParseEmptyList(t *testing.T) {
	expr, err := ParseQuery(`is_list([])`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pe := expr.(ast.PropositionExpr)
	if !pe.Prop.Terms[0].Equal(ast.EmptyList) {
		t.Errorf("expected empty_list, got %s", pe.Prop.Terms[0])
	}
}

func TestParseFlatList(t *testing.T) {
	expr, err := ParseQuery(`is_list([a, b, c])`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pe := expr.(ast.PropositionExpr)
	want := ast.List(ast.Atom("a"), ast.Atom("b"), ast.Atom("c"))
	if !pe.Prop.Terms[0].Equal(want) {
		t.Errorf("got %s, want %s", pe.Prop.Terms[0], want)
	}
}

func TestParseHeadTailList(t *testing.T) {
	expr, err := ParseQuery(`elem([H|T], H)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pe := expr.(ast.PropositionExpr)
	want := ast.Cons(ast.Var{Name: "H"}, ast.Var{Name: "T"})
	if !pe.Prop.Terms[0].Equal(want) {
		t.Errorf("got %s, want %s", pe.Prop.Terms[0], want)
	}
}

func TestParseNegativeNumber(t *testing.T) {
	expr, err := ParseQuery(`Gt(X, -3)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pe := expr.(ast.PropositionExpr)
	if !pe.Prop.Terms[1].Equal(ast.Num{Value: -3}) {
		t.Errorf("got %s, want -3", pe.Prop.Terms[1])
	}
}

func TestParseRejectsMissingClauseTerminator(t *testing.T) {
	_, err := ParseClauses(`human(socrates)`)
	if err == nil {
		t.Fatal("expected an error for a missing ';' terminator")
	}
}

func TestParseMultipleClauses(t *testing.T) {
	exprs, err := ParseClauses(`p(a); q(b);`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exprs) != 2 {
		t.Fatalf("expected two clauses, got %d", len(exprs))
	}
}

func TestParseLineComment(t *testing.T) {
	exprs, err := ParseClauses("// a comment\np(a); // trailing comment\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exprs) != 1 {
		t.Fatalf("expected one clause, got %d", len(exprs))
	}
}
