package repl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/LucasGrasso/gic/internal/unify"
)

func TestLoadLibraryThenQueryAppend(t *testing.T) {
	s := New(nil)
	if err := s.LoadLibrary(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var answers []string
	err := s.Query(context.Background(), `Append([a, b], [c], X)`, func(ans *unify.Substitution) bool {
		x, _ := ans.Lookup("X")
		answers = append(answers, x.String())
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(answers) != 1 {
		t.Fatalf("expected exactly one answer, got %v", answers)
	}
	if answers[0] != "[a, b, c]" {
		t.Errorf("Append([a,b],[c],X) => X=%s, want [a, b, c]", answers[0])
	}
}

func TestLoadFileAddsOnlyUserClausesToProgram(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kb.gic")
	if err := os.WriteFile(path, []byte("human(socrates);\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	s := New(nil)
	if err := s.LoadLibrary(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.LoadFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clauses := s.Program()
	if len(clauses) != 1 {
		t.Fatalf("expected exactly one user-loaded clause, got %d", len(clauses))
	}
	if clauses[0].Literals[0].Prop.Name != "human" {
		t.Errorf("got %s", clauses[0])
	}
}

func TestLoadLibraryThenQueryMember(t *testing.T) {
	s := New(nil)
	if err := s.LoadLibrary(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var answers []string
	err := s.Query(context.Background(), `Member(X, [a, b, c])`, func(ans *unify.Substitution) bool {
		x, _ := ans.Lookup("X")
		answers = append(answers, x.String())
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(answers) != 3 || answers[0] != "a" || answers[1] != "b" || answers[2] != "c" {
		t.Errorf("Member(X,[a,b,c]) => %v, want [a b c]", answers)
	}
}

func TestLoadLibraryThenQueryReverse(t *testing.T) {
	s := New(nil)
	if err := s.LoadLibrary(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var answer string
	err := s.Query(context.Background(), `Reverse([a, b, c], X)`, func(ans *unify.Substitution) bool {
		x, _ := ans.Lookup("X")
		answer = x.String()
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "[c, b, a]" {
		t.Errorf("Reverse([a,b,c],X) => X=%s, want [c, b, a]", answer)
	}
}

func TestLoadLibraryThenQueryLast(t *testing.T) {
	s := New(nil)
	if err := s.LoadLibrary(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var answer string
	err := s.Query(context.Background(), `Last(X, [a, b, c])`, func(ans *unify.Substitution) bool {
		x, _ := ans.Lookup("X")
		answer = x.String()
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "c" {
		t.Errorf("Last(X,[a,b,c]) => X=%s, want c", answer)
	}
}

func TestLoadLibraryThenQueryNthAtNonZeroIndex(t *testing.T) {
	s := New(nil)
	if err := s.LoadLibrary(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var answer string
	err := s.Query(context.Background(), `Nth(2, [a, b, c], X)`, func(ans *unify.Substitution) bool {
		x, _ := ans.Lookup("X")
		answer = x.String()
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "c" {
		t.Errorf("Nth(2,[a,b,c],X) => X=%s, want c", answer)
	}
}

func TestQueryRejectsDisjunctiveTopLevel(t *testing.T) {
	s := New(nil)
	err := s.Query(context.Background(), `p(a) or q(a)`, func(*unify.Substitution) bool { return true })
	if err == nil {
		t.Fatal("expected an error for a disjunctive query")
	}
}

func TestQueryGroundSuccessReturnsEmptyBinding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kb.gic")
	if err := os.WriteFile(path, []byte("human(socrates);\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	s := New(nil)
	if err := s.LoadFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got *unify.Substitution
	err := s.Query(context.Background(), `human(socrates)`, func(ans *unify.Substitution) bool {
		got = ans
		return true
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected the query to succeed")
	}
	if FormatAnswer(got) != "true" {
		t.Errorf("expected a ground success to format as 'true', got %q", FormatAnswer(got))
	}
}
