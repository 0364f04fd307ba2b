// Package builtin implements the fixed table of extra-logical predicates
// the resolver consults before ever searching the clause program: Eq,
// Diff, Var, the integer arithmetic and comparison family, Between,
// Is_list, Length and Elem. None of these can be expressed as Horn
// clauses — Eq/Diff inspect unresolved term identity, the arithmetic
// family demands groundness, and Length's fully-unbound case requires an
// unbounded generate-and-test the clause language cannot express.
package builtin

import "github.com/LucasGrasso/gic/internal/unify"

// Generator produces a possibly-infinite, ordered sequence of resolver
// continuations — one substitution per solution — without ever
// materializing the whole sequence up front. This is what lets
// Length(L, N) with both arguments unbound enumerate 0, 1, 2, ... lazily.
type Generator interface {
	// Next returns the next solution's substitution, a generator for the
	// remaining solutions (nil if none), and whether a solution was
	// produced at all.
	Next() (sub *unify.Substitution, rest Generator, ok bool)
}

// sliceGenerator walks a precomputed, finite, already-ordered slice of
// substitutions. Used by every built-in whose solution set is small and
// eagerly computable (Eq, Between, the ground Length cases, and Elem on a
// non-cons list).
type sliceGenerator struct {
	subs []*unify.Substitution
	pos  int
}

// FromSlice builds a Generator over a finite, pre-ordered slice of
// substitutions. An empty slice yields a Generator whose first Next call
// reports ok=false.
func FromSlice(subs []*unify.Substitution) Generator {
	return &sliceGenerator{subs: subs}
}

func (g *sliceGenerator) Next() (*unify.Substitution, Generator, bool) {
	if g.pos >= len(g.subs) {
		return nil, nil, false
	}
	sub := g.subs[g.pos]
	g.pos++
	if g.pos >= len(g.subs) {
		return sub, nil, true
	}
	return sub, g, true
}

// FuncGenerator adapts a plain function into a Generator, for built-ins
// whose solution sequence is computed on demand rather than precomputed —
// Length's both-unbound case in particular, which never terminates.
type FuncGenerator func() (sub *unify.Substitution, rest Generator, ok bool)

func (f FuncGenerator) Next() (*unify.Substitution, Generator, bool) { return f() }
