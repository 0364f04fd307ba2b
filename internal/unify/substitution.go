// Package unify implements substitutions and the most-general-unifier
// algorithm the resolver relies on for every clause trial.
package unify

import (
	"sort"
	"strings"

	"github.com/LucasGrasso/gic/internal/ast"
)

// Substitution is an idempotent binding of variable names to terms. The
// zero value is the empty substitution.
type Substitution struct {
	bindings map[string]ast.Term
}

// New returns an empty substitution.
func New() *Substitution {
	return &Substitution{bindings: map[string]ast.Term{}}
}

// Lookup returns the term bound to name, if any.
func (s *Substitution) Lookup(name string) (ast.Term, bool) {
	if s == nil || s.bindings == nil {
		return nil, false
	}
	t, ok := s.bindings[name]
	return t, ok
}

// bind extends the substitution with name -> t. The caller is responsible
// for having occurs-checked the binding.
func (s *Substitution) bind(name string, t ast.Term) *Substitution {
	out := s.Clone()
	out.bindings[name] = t
	return out
}

// Clone returns a shallow copy of the substitution, safe to extend
// independently of the original.
func (s *Substitution) Clone() *Substitution {
	out := &Substitution{bindings: make(map[string]ast.Term, len(s.bindings)+1)}
	for k, v := range s.bindings {
		out.bindings[k] = v
	}
	return out
}

// Size returns the number of bindings held.
func (s *Substitution) Size() int {
	if s == nil {
		return 0
	}
	return len(s.bindings)
}

// Walk follows variable bindings to a fixed point, returning the most
// resolved term reachable for t under s. It does not descend into Fun
// arguments; use Apply for a full recursive substitution.
func (s *Substitution) Walk(t ast.Term) ast.Term {
	for {
		v, ok := t.(ast.Var)
		if !ok {
			return t
		}
		bound, ok := s.Lookup(v.Name)
		if !ok {
			return t
		}
		t = bound
	}
}

// Apply recursively substitutes every bound variable in t, including
// inside Fun arguments.
func (s *Substitution) Apply(t ast.Term) ast.Term {
	t = s.Walk(t)
	f, ok := t.(ast.Fun)
	if !ok {
		return t
	}
	if len(f.Args) == 0 {
		return f
	}
	args := make([]ast.Term, len(f.Args))
	for i, a := range f.Args {
		args[i] = s.Apply(a)
	}
	return ast.Fun{Name: f.Name, Args: args}
}

// ApplyProposition applies the substitution to every term of p.
func (s *Substitution) ApplyProposition(p ast.Proposition) ast.Proposition {
	terms := make([]ast.Term, len(p.Terms))
	for i, t := range p.Terms {
		terms[i] = s.Apply(t)
	}
	return ast.Proposition{Name: p.Name, Terms: terms}
}

// ApplyLiteral applies the substitution to a literal's proposition,
// preserving polarity.
func (s *Substitution) ApplyLiteral(l ast.Literal) ast.Literal {
	return ast.Literal{Prop: s.ApplyProposition(l.Prop), Negative: l.Negative}
}

// ApplyClause applies the substitution to every literal of c.
func (s *Substitution) ApplyClause(c ast.Clause) ast.Clause {
	lits := make([]ast.Literal, len(c.Literals))
	for i, l := range c.Literals {
		lits[i] = s.ApplyLiteral(l)
	}
	return ast.Clause{Literals: lits}
}

// Compose extends running with new's bindings: every term already bound
// by running is walked through new, then new's own bindings are added.
// This matches the teacher's substitution-composition order and keeps the
// result idempotent as long as running and new are each idempotent.
func Compose(newSub, running *Substitution) *Substitution {
	out := New()
	for k, v := range running.bindings {
		out.bindings[k] = newSub.Apply(v)
	}
	for k, v := range newSub.bindings {
		if _, exists := out.bindings[k]; !exists {
			out.bindings[k] = v
		}
	}
	return out
}

// String renders the substitution as name=term pairs in a stable,
// sorted order, for reproducible REPL output and tests.
func (s *Substitution) String() string {
	if s.Size() == 0 {
		return "{}"
	}
	names := make([]string, 0, len(s.bindings))
	for k := range s.bindings {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n + " = " + s.Apply(s.bindings[n]).String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Restrict returns a new substitution containing only the given variable
// names, with their bindings fully walked — used when extracting the
// answer substitution over a query's free variables.
func (s *Substitution) Restrict(names []ast.Var) *Substitution {
	out := New()
	for _, v := range names {
		if t, ok := s.Lookup(v.Name); ok {
			out.bindings[v.Name] = s.Apply(t)
		}
	}
	return out
}
