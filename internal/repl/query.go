package repl

import (
	"context"

	"github.com/LucasGrasso/gic/internal/ast"
	"github.com/LucasGrasso/gic/internal/gicerr"
	"github.com/LucasGrasso/gic/internal/parser"
	"github.com/LucasGrasso/gic/internal/resolve"
	"github.com/LucasGrasso/gic/internal/unify"
)

// Query parses src as a query formula, resolves it against the current
// program, and calls onSolution once per answer found — in the order the
// resolver discovers them — exactly as Solve does. A query must be a
// conjunction of plain atoms (the engine's queryable fragment); anything
// involving "or", "impl", explicit quantifiers or "not" at the top level
// is rejected with a KindSemantic error, since pure SLD resolution has no
// native reading for proving a negation or a disjunction of goals.
func (s *Session) Query(ctx context.Context, src string, onSolution resolve.OnSolution) error {
	expr, err := parser.ParseQuery(src)
	if err != nil {
		return err
	}
	goal, err := queryToGoal(expr)
	if err != nil {
		return err
	}

	r := resolve.New(s.clausifier.Program())
	return r.Solve(ctx, goal, onSolution)
}

func queryToGoal(e ast.Expression) (ast.Clause, error) {
	lits, err := flattenConjunction(e)
	if err != nil {
		return ast.Clause{}, err
	}
	return ast.Clause{Literals: lits}, nil
}

func flattenConjunction(e ast.Expression) ([]ast.Literal, error) {
	switch expr := e.(type) {
	case ast.And:
		left, err := flattenConjunction(expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := flattenConjunction(expr.Right)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil

	case ast.PropositionExpr:
		return []ast.Literal{ast.Neg(expr.Prop)}, nil

	default:
		return nil, gicerr.New(gicerr.KindSemantic, "a query must be a conjunction of atoms ('and'-joined predicates); %T is not queryable", e)
	}
}

// FormatAnswer renders a restricted answer substitution the way the REPL
// prints it: "true" when it binds nothing (a ground query succeeded),
// or its bindings otherwise.
func FormatAnswer(answer *unify.Substitution) string {
	if answer.Size() == 0 {
		return "true"
	}
	return answer.String()
}
