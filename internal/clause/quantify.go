package clause

import "github.com/LucasGrasso/gic/internal/ast"

// Quantify wraps e in an explicit ForAll for every variable that occurs
// free in it, in first-seen order, outermost first. Knowledge-base
// clauses are written without mandatory quantifier prefixes; the loader
// calls Quantify before handing a parsed clause to Add so that every
// variable has an explicit scope for Skolemization to key off of, and a
// clause's variables read as "for every value of X" rather than as the
// single, particular value a query's free variables stand for.
func Quantify(e ast.Expression) ast.Expression {
	vars := freeVarsOf(e)
	for i := len(vars) - 1; i >= 0; i-- {
		e = wrapForAll(e, vars[i])
	}
	return e
}

func wrapForAll(e ast.Expression, v string) ast.Expression {
	return ast.ForAll{Var: v, Inner: e}
}

// freeVarsOf collects the variables occurring free in a formula, in
// first-seen order, skipping any already bound by an enclosing
// quantifier.
func freeVarsOf(e ast.Expression) []string {
	seen := map[string]bool{}
	var order []string
	var walk func(ast.Expression, map[string]bool)
	walk = func(e ast.Expression, bound map[string]bool) {
		switch expr := e.(type) {
		case ast.PropositionExpr:
			for _, v := range expr.Prop.FreeVars() {
				if bound[v.Name] || seen[v.Name] {
					continue
				}
				seen[v.Name] = true
				order = append(order, v.Name)
			}
		case ast.And:
			walk(expr.Left, bound)
			walk(expr.Right, bound)
		case ast.Or:
			walk(expr.Left, bound)
			walk(expr.Right, bound)
		case ast.Implies:
			walk(expr.Left, bound)
			walk(expr.Right, bound)
		case ast.Not:
			walk(expr.Inner, bound)
		case ast.Exists:
			inner := copyBound(bound)
			inner[expr.Var] = true
			walk(expr.Inner, inner)
		case ast.ForAll:
			inner := copyBound(bound)
			inner[expr.Var] = true
			walk(expr.Inner, inner)
		}
	}
	walk(e, map[string]bool{})
	return order
}

func copyBound(b map[string]bool) map[string]bool {
	out := make(map[string]bool, len(b)+1)
	for k, v := range b {
		out[k] = v
	}
	return out
}
