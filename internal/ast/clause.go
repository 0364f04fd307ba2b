package ast

import "strings"

// Literal is an atomic formula, possibly prefixed by logical negation.
type Literal struct {
	Prop     Proposition
	Negative bool
}

// Pos builds a positive literal.
func Pos(p Proposition) Literal { return Literal{Prop: p, Negative: false} }

// Neg builds a negative literal.
func Neg(p Proposition) Literal { return Literal{Prop: p, Negative: true} }

func (l Literal) String() string {
	if l.Negative {
		return "not " + l.Prop.String()
	}
	return l.Prop.String()
}

// Complementary reports whether l and o have opposite polarity; their
// propositions are not compared.
func (l Literal) Complementary(o Literal) bool {
	return l.Negative != o.Negative
}

// Clause is an ordered sequence of literals, interpreted as their
// disjunction. The first literal is the "selected" literal during
// resolution.
type Clause struct {
	Literals []Literal
}

func (c Clause) String() string {
	if len(c.Literals) == 0 {
		return "[]"
	}
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return strings.Join(parts, " or ")
}

// IsEmpty reports whether the clause has no literals (the empty/false
// clause — success when reached by the resolver).
func (c Clause) IsEmpty() bool { return len(c.Literals) == 0 }

// IsGoal reports whether the clause has no positive literals
// (equivalently, the negation of a conjunction of atoms).
func (c Clause) IsGoal() bool {
	for _, l := range c.Literals {
		if !l.Negative {
			return false
		}
	}
	return true
}

// PositiveCount returns the number of positive literals in the clause.
func (c Clause) PositiveCount() int {
	n := 0
	for _, l := range c.Literals {
		if !l.Negative {
			n++
		}
	}
	return n
}

// IsHorn reports whether the clause has at most one positive literal.
func (c Clause) IsHorn() bool { return c.PositiveCount() <= 1 }

// Head returns the first literal of the clause and true, or the zero
// Literal and false if the clause is empty.
func (c Clause) Head() (Literal, bool) {
	if len(c.Literals) == 0 {
		return Literal{}, false
	}
	return c.Literals[0], true
}

// Rest returns the clause with its first literal removed.
func (c Clause) Rest() Clause {
	if len(c.Literals) == 0 {
		return c
	}
	out := make([]Literal, len(c.Literals)-1)
	copy(out, c.Literals[1:])
	return Clause{Literals: out}
}

// Negatives returns the negative literals of the clause, preserving
// order; used by the resolver when a matched Horn clause contributes its
// body to a new goal.
func (c Clause) Negatives() []Literal {
	var out []Literal
	for _, l := range c.Literals {
		if l.Negative {
			out = append(out, l)
		}
	}
	return out
}

// FreeVars collects the distinct free variables across all literals, in
// first-seen order.
func (c Clause) FreeVars() []Var {
	seen := map[string]bool{}
	var order []Var
	for _, l := range c.Literals {
		for _, v := range l.Prop.FreeVars() {
			if !seen[v.Name] {
				seen[v.Name] = true
				order = append(order, v)
			}
		}
	}
	return order
}

// Program is an ordered sequence of clauses. Order is significant: the
// resolver explores clauses in program order.
type Program struct {
	Clauses []Clause
}

func (p Program) String() string {
	parts := make([]string, len(p.Clauses))
	for i, c := range p.Clauses {
		parts[i] = c.String() + ";"
	}
	return strings.Join(parts, "\n")
}

// IsHorn reports whether every clause in the program is Horn.
func (p Program) IsHorn() bool {
	for _, c := range p.Clauses {
		if !c.IsHorn() {
			return false
		}
	}
	return true
}

// Len returns the number of clauses in the program.
func (p Program) Len() int { return len(p.Clauses) }
