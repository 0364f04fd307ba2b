package resolve

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/LucasGrasso/gic/internal/ast"
	"github.com/LucasGrasso/gic/internal/builtin"
	"github.com/LucasGrasso/gic/internal/gicerr"
	"github.com/LucasGrasso/gic/internal/unify"
)

// Resolver runs SLD resolution against a fixed Horn-clause program.
type Resolver struct {
	program       ast.Program
	renameCounter int
}

// New builds a Resolver over program. The caller is expected to have
// already verified program.IsHorn(); Solve re-checks and reports a
// *gicerr.Error of KindClause if it has not.
func New(program ast.Program) *Resolver {
	return &Resolver{program: program}
}

// OnSolution is called once per answer found, with the substitution
// restricted to the query's free variables. Returning false stops the
// search (the cooperative "Continue? (Y/N): n" case); returning true
// resumes backtracking for further answers.
type OnSolution func(answer *unify.Substitution) bool

// Solve searches for proofs of goal, a clause whose literals must all be
// negative (i.e. a conjunction of atoms to prove). It calls onSolution
// once per answer found, in the order the single-threaded, chronologically
// backtracking search discovers them, and returns when the search space
// is exhausted, onSolution declines to continue, the context is
// cancelled, or a fatal built-in error (division by zero) aborts the
// whole query.
func (r *Resolver) Solve(ctx context.Context, goal ast.Clause, onSolution OnSolution) error {
	if !r.program.IsHorn() {
		return gicerr.New(gicerr.KindClause, "program contains a non-Horn clause; resolution requires at most one positive literal per clause")
	}
	if goal.IsEmpty() {
		return gicerr.New(gicerr.KindClause, "query must not be empty")
	}
	if !goal.IsGoal() {
		return gicerr.New(gicerr.KindClause, "query must consist only of literals to prove")
	}

	freeVars := goal.FreeVars()
	stack := []Generator{Singleton(Continuation{Goal: goal, Sub: unify.New()})}

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		cont, rest, ok := top.Next()
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}
		if rest == nil {
			stack = stack[:len(stack)-1]
		} else {
			stack[len(stack)-1] = rest
		}

		if cont.Goal.IsEmpty() {
			answer := cont.Sub.Restrict(freeVars)
			if !onSolution(answer) {
				return nil
			}
			continue
		}

		gen, err := r.expand(cont)
		if err != nil {
			logrus.WithError(err).Debug("fatal built-in error aborted the query")
			return err
		}
		stack = append(stack, gen)
	}
	return nil
}

// expand selects the leftmost literal of the continuation's goal and
// builds the generator of its possible resolutions — either a built-in
// predicate's solution sequence or the set of program clauses whose head
// unifies with it, tried in program order.
func (r *Resolver) expand(cont Continuation) (Generator, error) {
	selected := cont.Goal.Literals[0]
	remaining := cont.Goal.Rest()

	gen, claimed, err := builtin.Dispatch(selected.Prop, cont.Sub)
	if err != nil {
		return nil, err
	}
	if claimed {
		return adaptBuiltin(gen, remaining), nil
	}
	return r.clauseGenerator(selected, remaining, cont.Sub), nil
}

// clauseGenerator tries every program clause with a positive head
// against the selected literal, in program order, α-renaming each trial
// clause with a fresh monotonic suffix so repeated uses of the same
// clause never collide. Only the unifying trials are kept, already in
// program order, so the first one produced is the first one the
// depth-first frontier explores.
func (r *Resolver) clauseGenerator(selected ast.Literal, remaining ast.Clause, sub *unify.Substitution) Generator {
	var matches []Continuation
	for _, c := range r.program.Clauses {
		head, ok := c.Head()
		if !ok || head.Negative {
			continue
		}
		r.renameCounter++
		renamed := renameClause(c, fmt.Sprintf("_%d", r.renameCounter))
		renamedHead, _ := renamed.Head()

		extended, err := unify.MGU(selected.Prop, renamedHead.Prop, sub)
		if err != nil {
			continue
		}

		body := renamed.Negatives()
		newLits := make([]ast.Literal, 0, len(body)+len(remaining.Literals))
		newLits = append(newLits, body...)
		newLits = append(newLits, remaining.Literals...)
		matches = append(matches, Continuation{Goal: ast.Clause{Literals: newLits}, Sub: extended})
	}
	return FromSlice(matches)
}

// renameClause produces a copy of c with every variable name suffixed,
// consistently, so that it is guaranteed distinct from every other live
// use of the same source clause in the current search.
func renameClause(c ast.Clause, suffix string) ast.Clause {
	mapping := map[string]string{}
	var renameTerm func(ast.Term) ast.Term
	renameTerm = func(t ast.Term) ast.Term {
		switch v := t.(type) {
		case ast.Var:
			newName, ok := mapping[v.Name]
			if !ok {
				newName = v.Name + suffix
				mapping[v.Name] = newName
			}
			return ast.Var{Name: newName}
		case ast.Fun:
			if len(v.Args) == 0 {
				return v
			}
			args := make([]ast.Term, len(v.Args))
			for i, a := range v.Args {
				args[i] = renameTerm(a)
			}
			return ast.Fun{Name: v.Name, Args: args}
		default:
			return t
		}
	}

	lits := make([]ast.Literal, len(c.Literals))
	for i, l := range c.Literals {
		terms := make([]ast.Term, len(l.Prop.Terms))
		for j, t := range l.Prop.Terms {
			terms[j] = renameTerm(t)
		}
		lits[i] = ast.Literal{Prop: ast.Proposition{Name: l.Prop.Name, Terms: terms}, Negative: l.Negative}
	}
	return ast.Clause{Literals: lits}
}
