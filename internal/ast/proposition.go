package ast

import "strings"

// Proposition is a named predicate applied to an ordered list of terms.
type Proposition struct {
	Name  string
	Terms []Term
}

func (p Proposition) String() string {
	if len(p.Terms) == 0 {
		return p.Name
	}
	parts := make([]string, len(p.Terms))
	for i, t := range p.Terms {
		parts[i] = t.String()
	}
	return p.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Equal reports whether two propositions are structurally equal.
func (p Proposition) Equal(o Proposition) bool {
	if p.Name != o.Name || len(p.Terms) != len(o.Terms) {
		return false
	}
	for i := range p.Terms {
		if !p.Terms[i].Equal(o.Terms[i]) {
			return false
		}
	}
	return true
}

// Arity returns the number of arguments of the proposition.
func (p Proposition) Arity() int { return len(p.Terms) }

// FreeVars collects the distinct free variables across the proposition's
// arguments, in first-seen order.
func (p Proposition) FreeVars() []Var {
	seen := map[string]bool{}
	var order []Var
	for _, t := range p.Terms {
		for _, v := range FreeVars(t) {
			if !seen[v.Name] {
				seen[v.Name] = true
				order = append(order, v)
			}
		}
	}
	return order
}
