package clause

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/LucasGrasso/gic/internal/ast"
)

// skolemContext carries the per-clause naming counter used to generate
// fresh Skolem function symbols, mirroring the reference clausifier's
// one-context-per-clause convention.
type skolemContext struct {
	clauseID int
}

// nextName derives a Skolem symbol for the existential variable name,
// scoped to the clause being processed so that two different source
// clauses never collide even if they reuse a variable name.
func (c skolemContext) nextName(varName string) string {
	return fmt.Sprintf("_%s_%d", varName, c.clauseID)
}

// deskolem replaces every existentially-bound variable with a Skolem term
// built from the universally-quantified variables currently in scope: a
// zero-arity constant if no universal encloses it, otherwise a function
// application over the in-scope variables in first-encountered order
// (deduplicated), per the reference implementation's scope-stack walk.
func deskolem(e ast.Expression, ctx skolemContext, scope []string) ast.Expression {
	switch expr := e.(type) {
	case ast.ForAll:
		return ast.ForAll{Var: expr.Var, Inner: deskolem(expr.Inner, ctx, appendScope(scope, expr.Var))}

	case ast.Exists:
		skolemName := ctx.nextName(expr.Var)
		var skolemTerm ast.Term
		if len(scope) == 0 {
			skolemTerm = ast.Atom(skolemName)
		} else {
			args := make([]ast.Term, len(scope))
			for i, v := range scope {
				args[i] = ast.Var{Name: v}
			}
			skolemTerm = ast.Fun{Name: skolemName, Args: args}
		}
		logrus.WithFields(logrus.Fields{"variable": expr.Var, "skolem_term": skolemTerm.String()}).Debug("minted Skolem symbol")
		inner := deskolem(expr.Inner, ctx, scope)
		return substituteVar(inner, expr.Var, skolemTerm)

	case ast.And:
		return ast.And{Left: deskolem(expr.Left, ctx, scope), Right: deskolem(expr.Right, ctx, scope)}
	case ast.Or:
		return ast.Or{Left: deskolem(expr.Left, ctx, scope), Right: deskolem(expr.Right, ctx, scope)}
	case ast.Not:
		return ast.Not{Inner: deskolem(expr.Inner, ctx, scope)}
	default:
		return e
	}
}

// appendScope adds name to scope if not already present, preserving
// first-seen order — matching the reference implementation's dedup rule
// for repeated universal variable names.
func appendScope(scope []string, name string) []string {
	for _, s := range scope {
		if s == name {
			return scope
		}
	}
	out := make([]string, len(scope), len(scope)+1)
	copy(out, scope)
	return append(out, name)
}

// substituteVar replaces every free occurrence of a variable name inside
// an already-deskolemized expression with a term, used right after a
// Skolem term is minted for an existential.
func substituteVar(e ast.Expression, name string, t ast.Term) ast.Expression {
	switch expr := e.(type) {
	case ast.PropositionExpr:
		return ast.PropositionExpr{Prop: substituteProp(expr.Prop, name, t)}
	case ast.And:
		return ast.And{Left: substituteVar(expr.Left, name, t), Right: substituteVar(expr.Right, name, t)}
	case ast.Or:
		return ast.Or{Left: substituteVar(expr.Left, name, t), Right: substituteVar(expr.Right, name, t)}
	case ast.Implies:
		return ast.Implies{Left: substituteVar(expr.Left, name, t), Right: substituteVar(expr.Right, name, t)}
	case ast.Not:
		return ast.Not{Inner: substituteVar(expr.Inner, name, t)}
	case ast.Exists:
		if expr.Var == name {
			return expr
		}
		return ast.Exists{Var: expr.Var, Inner: substituteVar(expr.Inner, name, t)}
	case ast.ForAll:
		if expr.Var == name {
			return expr
		}
		return ast.ForAll{Var: expr.Var, Inner: substituteVar(expr.Inner, name, t)}
	default:
		return e
	}
}

func substituteProp(p ast.Proposition, name string, t ast.Term) ast.Proposition {
	terms := make([]ast.Term, len(p.Terms))
	for i, term := range p.Terms {
		terms[i] = substituteTerm(term, name, t)
	}
	return ast.Proposition{Name: p.Name, Terms: terms}
}

func substituteTerm(term ast.Term, name string, t ast.Term) ast.Term {
	switch v := term.(type) {
	case ast.Var:
		if v.Name == name {
			return t
		}
		return v
	case ast.Fun:
		if len(v.Args) == 0 {
			return v
		}
		args := make([]ast.Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = substituteTerm(a, name, t)
		}
		return ast.Fun{Name: v.Name, Args: args}
	default:
		return term
	}
}

// stripUniversals discards the now-redundant leading ForAll quantifiers
// left after Skolemization (every remaining variable is implicitly
// universally quantified at the clause level).
func stripUniversals(e ast.Expression) ast.Expression {
	for {
		fa, ok := e.(ast.ForAll)
		if !ok {
			return e
		}
		e = fa.Inner
	}
}
