// Package ast defines the abstract syntax shared by every later stage of
// the engine: terms, propositions, literals, clauses, programs and the
// source-level Expression formulas the clausifier consumes.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is any value in the first-order universe: a logic variable, a
// function/constructor application (arity zero represents an atom or
// constant), or an integer literal. Terms are immutable; equality is
// structural.
type Term interface {
	fmt.Stringer
	isTerm()
	// Equal reports whether two terms are syntactically identical.
	Equal(other Term) bool
}

// Var is a logic variable, identified by name. Two Vars are the same
// variable iff their Name is equal; the resolver guarantees distinct
// variables across clause uses by suffixing names (see internal/resolve).
type Var struct {
	Name string
}

func (Var) isTerm() {}

func (v Var) String() string { return v.Name }

// Equal reports whether other is the same variable.
func (v Var) Equal(other Term) bool {
	o, ok := other.(Var)
	return ok && o.Name == v.Name
}

// Fun is a function or constructor application. Arity zero represents an
// atom or constant (e.g. "a", "empty_list").
type Fun struct {
	Name string
	Args []Term
}

func (Fun) isTerm() {}

// Atom builds a zero-arity Fun, the representation for constants.
func Atom(name string) Fun { return Fun{Name: name} }

func (f Fun) String() string {
	if s, ok := formatList(f); ok {
		return s
	}
	if len(f.Args) == 0 {
		return f.Name
	}
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return f.Name + "(" + strings.Join(parts, ", ") + ")"
}

// formatList renders a cons/empty_list spine using list sugar, mirroring
// the surface syntax's [a,b,c] / [H|T] notation. Returns ok=false for
// anything that is not list-shaped at the top.
func formatList(f Fun) (string, bool) {
	if f.Name == "empty_list" && len(f.Args) == 0 {
		return "[]", true
	}
	if f.Name != "cons" || len(f.Args) != 2 {
		return "", false
	}
	var elems []string
	cur := Term(f)
	for {
		cf, ok := cur.(Fun)
		if !ok {
			return "[" + strings.Join(elems, ", ") + "|" + cur.String() + "]", true
		}
		if cf.Name == "empty_list" && len(cf.Args) == 0 {
			return "[" + strings.Join(elems, ", ") + "]", true
		}
		if cf.Name == "cons" && len(cf.Args) == 2 {
			elems = append(elems, cf.Args[0].String())
			cur = cf.Args[1]
			continue
		}
		return "[" + strings.Join(elems, ", ") + "|" + cur.String() + "]", true
	}
}

// Equal reports whether two Fun terms are structurally equal.
func (f Fun) Equal(other Term) bool {
	o, ok := other.(Fun)
	if !ok || o.Name != f.Name || len(o.Args) != len(f.Args) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Num is a 64-bit signed integer literal.
type Num struct {
	Value int64
}

func (Num) isTerm() {}

func (n Num) String() string { return strconv.FormatInt(n.Value, 10) }

// Equal reports whether other is a Num with the same value.
func (n Num) Equal(other Term) bool {
	o, ok := other.(Num)
	return ok && o.Value == n.Value
}

// EmptyList is the canonical zero-arity term terminating a cons spine.
var EmptyList = Atom("empty_list")

// Cons builds a list cell from head and tail.
func Cons(head, tail Term) Fun {
	return Fun{Name: "cons", Args: []Term{head, tail}}
}

// List builds a proper list term from the given elements, terminated by
// EmptyList.
func List(elems ...Term) Term {
	var result Term = EmptyList
	for i := len(elems) - 1; i >= 0; i-- {
		result = Cons(elems[i], result)
	}
	return result
}

// FreeVars collects the distinct free variables of a term, in first-seen
// (insertion) order.
func FreeVars(t Term) []Var {
	seen := map[string]bool{}
	var order []Var
	var walk func(Term)
	walk = func(t Term) {
		switch v := t.(type) {
		case Var:
			if !seen[v.Name] {
				seen[v.Name] = true
				order = append(order, v)
			}
		case Fun:
			for _, a := range v.Args {
				walk(a)
			}
		}
	}
	walk(t)
	return order
}
