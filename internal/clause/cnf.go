// Package clause transforms parsed Expression formulas into clausal
// normal form: implication elimination, negation normal form, prenex
// quantifier distribution, Skolemization, universal stripping and final
// CNF flattening into a Program of Horn-checkable Clauses.
package clause

import (
	"github.com/sirupsen/logrus"

	"github.com/LucasGrasso/gic/internal/ast"
	"github.com/LucasGrasso/gic/internal/gicerr"
)

// Clausifier converts Expression formulas into clauses and accumulates
// them into a running Program. Each call to Add advances clauseID so
// that Skolem symbols stay unique across the whole session.
type Clausifier struct {
	clauseID int
	program  ast.Program
}

// New returns an empty Clausifier.
func New() *Clausifier {
	return &Clausifier{}
}

// Program returns the accumulated program.
func (c *Clausifier) Program() ast.Program { return c.program }

// Len returns the number of clauses accumulated so far.
func (c *Clausifier) Len() int { return len(c.program.Clauses) }

// SliceFrom returns the clauses added from index n onward, used by the
// REPL's "program" command to show only user-loaded clauses past the
// bundled library boundary.
func (c *Clausifier) SliceFrom(n int) []ast.Clause {
	if n >= len(c.program.Clauses) {
		return nil
	}
	return c.program.Clauses[n:]
}

// Add clausifies expr and appends every resulting clause to the running
// program, fixing the bug in the reference implementation that silently
// dropped all but the first clause produced by a single source formula.
func (c *Clausifier) Add(e ast.Expression) error {
	clauses, err := c.clausify(e)
	if err != nil {
		return err
	}
	c.program.Clauses = append(c.program.Clauses, clauses...)
	logrus.WithFields(logrus.Fields{"formula": e.String(), "clauses_added": len(clauses)}).Debug("clausifier added clauses")
	return nil
}

// clausify runs the full pipeline for a single formula, advancing the
// clauseID counter and then using it.
func (c *Clausifier) clausify(e ast.Expression) ([]ast.Clause, error) {
	c.clauseID++
	ctx := skolemContext{clauseID: c.clauseID}

	e = eliminateImplications(e)
	e = toNNF(e, false)
	e = distributeQuantifiers(e)
	e = deskolem(e, ctx, nil)
	e = stripUniversals(e)

	return flattenCNF(e)
}

// eliminateImplications rewrites every Implies node as its disjunctive
// equivalent (not A) or B, recursively.
func eliminateImplications(e ast.Expression) ast.Expression {
	switch expr := e.(type) {
	case ast.Implies:
		return ast.Or{
			Left:  ast.Not{Inner: eliminateImplications(expr.Left)},
			Right: eliminateImplications(expr.Right),
		}
	case ast.And:
		return ast.And{Left: eliminateImplications(expr.Left), Right: eliminateImplications(expr.Right)}
	case ast.Or:
		return ast.Or{Left: eliminateImplications(expr.Left), Right: eliminateImplications(expr.Right)}
	case ast.Not:
		return ast.Not{Inner: eliminateImplications(expr.Inner)}
	case ast.Exists:
		return ast.Exists{Var: expr.Var, Inner: eliminateImplications(expr.Inner)}
	case ast.ForAll:
		return ast.ForAll{Var: expr.Var, Inner: eliminateImplications(expr.Inner)}
	default:
		return e
	}
}

// toNNF pushes negation to the leaves via De Morgan's laws and quantifier
// duality, tracking whether the enclosing context is itself negated.
// Double negation cancels; negated-ForAll becomes Exists-of-negation and
// vice versa.
func toNNF(e ast.Expression, negated bool) ast.Expression {
	switch expr := e.(type) {
	case ast.Not:
		return toNNF(expr.Inner, !negated)

	case ast.And:
		if negated {
			return ast.Or{Left: toNNF(expr.Left, true), Right: toNNF(expr.Right, true)}
		}
		return ast.And{Left: toNNF(expr.Left, false), Right: toNNF(expr.Right, false)}

	case ast.Or:
		if negated {
			return ast.And{Left: toNNF(expr.Left, true), Right: toNNF(expr.Right, true)}
		}
		return ast.Or{Left: toNNF(expr.Left, false), Right: toNNF(expr.Right, false)}

	case ast.Exists:
		if negated {
			return ast.ForAll{Var: expr.Var, Inner: toNNF(expr.Inner, true)}
		}
		return ast.Exists{Var: expr.Var, Inner: toNNF(expr.Inner, false)}

	case ast.ForAll:
		if negated {
			return ast.Exists{Var: expr.Var, Inner: toNNF(expr.Inner, true)}
		}
		return ast.ForAll{Var: expr.Var, Inner: toNNF(expr.Inner, false)}

	case ast.PropositionExpr:
		if negated {
			return ast.Not{Inner: expr}
		}
		return expr

	case ast.Bottom:
		if negated {
			return ast.Bottom{}
		}
		return expr

	default:
		return e
	}
}

// distributeQuantifiers pulls quantifiers to the front of the formula
// (prenex form). When both sides of a binary connective carry leading
// quantifiers, the left side's outer quantifier wins first, matching the
// reference implementation's left-first pull-up rule. Quantified variables
// are not renamed apart: two quantifiers binding the same name within one
// clause are pulled out unchanged and end up sharing that name.
func distributeQuantifiers(e ast.Expression) ast.Expression {
	switch expr := e.(type) {
	case ast.And:
		return pullQuantifiers(expr.Left, expr.Right, true)
	case ast.Or:
		return pullQuantifiers(expr.Left, expr.Right, false)
	case ast.Exists:
		return ast.Exists{Var: expr.Var, Inner: distributeQuantifiers(expr.Inner)}
	case ast.ForAll:
		return ast.ForAll{Var: expr.Var, Inner: distributeQuantifiers(expr.Inner)}
	default:
		return e
	}
}

// pullQuantifiers distributes a binary connective over its operands,
// floating any leading quantifier on either side out above the
// connective, left operand first.
func pullQuantifiers(left, right ast.Expression, conjunction bool) ast.Expression {
	left = distributeQuantifiers(left)
	right = distributeQuantifiers(right)

	rebuild := func(l, r ast.Expression) ast.Expression {
		if conjunction {
			return ast.And{Left: l, Right: r}
		}
		return ast.Or{Left: l, Right: r}
	}

	if fa, ok := left.(ast.ForAll); ok {
		return ast.ForAll{Var: fa.Var, Inner: pullQuantifiers(fa.Inner, right, conjunction)}
	}
	if ex, ok := left.(ast.Exists); ok {
		return ast.Exists{Var: ex.Var, Inner: pullQuantifiers(ex.Inner, right, conjunction)}
	}
	if fa, ok := right.(ast.ForAll); ok {
		return ast.ForAll{Var: fa.Var, Inner: pullQuantifiers(left, fa.Inner, conjunction)}
	}
	if ex, ok := right.(ast.Exists); ok {
		return ast.Exists{Var: ex.Var, Inner: pullQuantifiers(left, ex.Inner, conjunction)}
	}
	return rebuild(left, right)
}

// flattenCNF turns a quantifier-free NNF tree (after Skolemization and
// universal stripping) into a slice of clauses: conjunction concatenates
// clause lists, disjunction cross-multiplies them, and a leaf becomes a
// single-literal clause. Each produced clause has its literals reordered
// positive-first, which the reference implementation does not do and the
// specification calls out as a required fix — the resolver's leftmost
// selection rule otherwise tends to pick a negative (goal) literal last
// and stalls needlessly on long bodies.
func flattenCNF(e ast.Expression) ([]ast.Clause, error) {
	switch expr := e.(type) {
	case ast.And:
		left, err := flattenCNF(expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := flattenCNF(expr.Right)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil

	case ast.Or:
		left, err := flattenCNF(expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := flattenCNF(expr.Right)
		if err != nil {
			return nil, err
		}
		out := make([]ast.Clause, 0, len(left)*len(right))
		for _, lc := range left {
			for _, rc := range right {
				out = append(out, positivesFirst(ast.Clause{Literals: append(append([]ast.Literal{}, lc.Literals...), rc.Literals...)}))
			}
		}
		return out, nil

	case ast.PropositionExpr:
		return []ast.Clause{positivesFirst(ast.Clause{Literals: []ast.Literal{ast.Pos(expr.Prop)}})}, nil

	case ast.Not:
		pe, ok := expr.Inner.(ast.PropositionExpr)
		if !ok {
			return nil, gicerr.New(gicerr.KindClause, "negation did not reduce to a literal during clausal-normal-form flattening")
		}
		return []ast.Clause{positivesFirst(ast.Clause{Literals: []ast.Literal{ast.Neg(pe.Prop)}})}, nil

	case ast.Bottom:
		return []ast.Clause{{}}, nil

	default:
		return nil, gicerr.New(gicerr.KindClause, "unexpected non-literal %T survived clausal-normal-form reduction", e)
	}
}

// positivesFirst reorders a clause's literals so that every positive
// literal precedes every negative one, preserving relative order within
// each polarity.
func positivesFirst(c ast.Clause) ast.Clause {
	pos := make([]ast.Literal, 0, len(c.Literals))
	neg := make([]ast.Literal, 0, len(c.Literals))
	for _, l := range c.Literals {
		if l.Negative {
			neg = append(neg, l)
		} else {
			pos = append(pos, l)
		}
	}
	return ast.Clause{Literals: append(pos, neg...)}
}
