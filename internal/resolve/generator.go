// Package resolve implements SLD resolution over a Horn-clause program:
// a single-threaded, cooperative search with chronological backtracking,
// leftmost literal selection, program-order clause trial and built-in
// predicate dispatch folded in alongside ordinary clause resolution.
package resolve

import (
	"github.com/LucasGrasso/gic/internal/ast"
	"github.com/LucasGrasso/gic/internal/builtin"
	"github.com/LucasGrasso/gic/internal/unify"
)

// Continuation is one pending resolvent: the remaining goal to prove and
// the substitution accumulated so far to reach it.
type Continuation struct {
	Goal ast.Clause
	Sub  *unify.Substitution
}

// Generator produces an ordered, possibly lazy sequence of
// Continuations — the resolver's frontier is a stack of these, so the
// most recently pushed generator (the deepest, most recently explored
// branch point) is always pulled from first, giving chronological
// backtracking for free.
type Generator interface {
	Next() (cont Continuation, rest Generator, ok bool)
}

type sliceGenerator struct {
	items []Continuation
	pos   int
}

// FromSlice builds a Generator over a finite, pre-ordered slice of
// continuations — used for clause trials, where every unifying program
// clause is collected in program order before the frontier ever pulls
// from it.
func FromSlice(items []Continuation) Generator {
	if len(items) == 0 {
		return emptyGenerator{}
	}
	return &sliceGenerator{items: items}
}

func (g *sliceGenerator) Next() (Continuation, Generator, bool) {
	cont := g.items[g.pos]
	g.pos++
	if g.pos >= len(g.items) {
		return cont, nil, true
	}
	return cont, g, true
}

type emptyGenerator struct{}

func (emptyGenerator) Next() (Continuation, Generator, bool) { return Continuation{}, nil, false }

// Singleton builds a Generator with exactly one Continuation.
func Singleton(cont Continuation) Generator {
	return FromSlice([]Continuation{cont})
}

// fromBuiltin adapts a builtin.Generator (a sequence of substitutions
// extending the current one) into a resolve.Generator of Continuations,
// pairing each solution's substitution with the goal left over once the
// dispatched literal is satisfied.
type fromBuiltin struct {
	inner     builtin.Generator
	remaining ast.Clause
}

func adaptBuiltin(gen builtin.Generator, remaining ast.Clause) Generator {
	if gen == nil {
		return emptyGenerator{}
	}
	return &fromBuiltin{inner: gen, remaining: remaining}
}

func (g *fromBuiltin) Next() (Continuation, Generator, bool) {
	sub, rest, ok := g.inner.Next()
	if !ok {
		return Continuation{}, nil, false
	}
	cont := Continuation{Goal: g.remaining, Sub: sub}
	if rest == nil {
		return cont, nil, true
	}
	return cont, &fromBuiltin{inner: rest, remaining: g.remaining}, true
}
