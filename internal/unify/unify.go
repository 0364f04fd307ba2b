package unify

import (
	"github.com/sirupsen/logrus"

	"github.com/LucasGrasso/gic/internal/ast"
	"github.com/LucasGrasso/gic/internal/gicerr"
)

// Unifiable tags the two syntactic categories the resolver ever needs to
// unify: bare terms (list/arithmetic built-ins) and whole propositions
// (clause literals). Keeping both under one worklist lets MGU decompose a
// proposition pair into its term pairs without a separate code path.
type Unifiable interface {
	isUnifiable()
}

// UTerm wraps a Term for the MGU worklist.
type UTerm struct{ Term ast.Term }

func (UTerm) isUnifiable() {}

// UProp wraps a Proposition for the MGU worklist.
type UProp struct{ Prop ast.Proposition }

func (UProp) isUnifiable() {}

// equation is one pending pair in the MGU worklist.
type equation struct {
	left, right Unifiable
}

// MGU computes the most general unifier of two propositions under an
// existing substitution, returning the extended substitution. It returns
// a *gicerr.Error of KindClash on a name/arity mismatch and KindOccurCheck
// on a cyclic binding attempt; both are ordinary (non-fatal) resolver
// branch failures.
func MGU(a, b ast.Proposition, sub *Substitution) (*Substitution, error) {
	return unify([]equation{{UProp{a}, UProp{b}}}, sub)
}

// MGUTerms computes the most general unifier of two terms under an
// existing substitution.
func MGUTerms(a, b ast.Term, sub *Substitution) (*Substitution, error) {
	return unify([]equation{{UTerm{a}, UTerm{b}}}, sub)
}

// unify runs the Martelli-Montanari style worklist: pop an equation,
// decompose or delete-and-bind, repeat until empty or a clash/occurs-check
// error is found.
func unify(worklist []equation, sub *Substitution) (*Substitution, error) {
	for len(worklist) > 0 {
		n := len(worklist) - 1
		eq := worklist[n]
		worklist = worklist[:n]

		more, newSub, err := step(eq, sub)
		if err != nil {
			return nil, err
		}
		sub = newSub
		worklist = append(worklist, more...)
	}
	return sub, nil
}

// step resolves one equation, returning any new equations it decomposes
// into plus the (possibly extended) substitution.
func step(eq equation, sub *Substitution) ([]equation, *Substitution, error) {
	switch l := eq.left.(type) {
	case UProp:
		r, ok := eq.right.(UProp)
		if !ok {
			return nil, nil, gicerr.New(gicerr.KindGeneralUnify, "cannot unify proposition %s with a term", l.Prop)
		}
		if l.Prop.Name != r.Prop.Name || len(l.Prop.Terms) != len(r.Prop.Terms) {
			return nil, nil, gicerr.New(gicerr.KindClash, "predicate mismatch: %s/%d vs %s/%d", l.Prop.Name, len(l.Prop.Terms), r.Prop.Name, len(r.Prop.Terms))
		}
		eqs := make([]equation, len(l.Prop.Terms))
		for i := range l.Prop.Terms {
			eqs[i] = equation{UTerm{l.Prop.Terms[i]}, UTerm{r.Prop.Terms[i]}}
		}
		return eqs, sub, nil

	case UTerm:
		r, ok := eq.right.(UTerm)
		if !ok {
			return nil, nil, gicerr.New(gicerr.KindGeneralUnify, "cannot unify term with a proposition")
		}
		return stepTerms(l.Term, r.Term, sub)
	}
	return nil, nil, gicerr.New(gicerr.KindGeneralUnify, "unreachable unifiable variant")
}

// stepTerms decomposes or binds a single term/term equation, walking
// through the current substitution first so already-bound variables never
// shadow their resolved value.
func stepTerms(a, b ast.Term, sub *Substitution) ([]equation, *Substitution, error) {
	a = sub.Walk(a)
	b = sub.Walk(b)

	av, aIsVar := a.(ast.Var)
	bv, bIsVar := b.(ast.Var)

	switch {
	case aIsVar && bIsVar && av.Name == bv.Name:
		return nil, sub, nil
	case aIsVar:
		return delete_(av, b, sub)
	case bIsVar:
		return delete_(bv, a, sub)
	}

	af, aIsFun := a.(ast.Fun)
	bf, bIsFun := b.(ast.Fun)
	if aIsFun && bIsFun {
		if af.Name != bf.Name || len(af.Args) != len(bf.Args) {
			return nil, nil, gicerr.New(gicerr.KindClash, "functor mismatch: %s/%d vs %s/%d", af.Name, len(af.Args), bf.Name, len(bf.Args))
		}
		eqs := make([]equation, len(af.Args))
		for i := range af.Args {
			eqs[i] = equation{UTerm{af.Args[i]}, UTerm{bf.Args[i]}}
		}
		return eqs, sub, nil
	}

	an, aIsNum := a.(ast.Num)
	bn, bIsNum := b.(ast.Num)
	if aIsNum && bIsNum {
		if an.Value != bn.Value {
			return nil, nil, gicerr.New(gicerr.KindClash, "numeric mismatch: %d vs %d", an.Value, bn.Value)
		}
		return nil, sub, nil
	}

	return nil, nil, gicerr.New(gicerr.KindClash, "cannot unify %s with %s", a, b)
}

// delete_ binds variable v to term t after an occurs-check, per the
// reference mgu's delete/occurs_check pairing. Named with a trailing
// underscore since delete is a builtin.
func delete_(v ast.Var, t ast.Term, sub *Substitution) ([]equation, *Substitution, error) {
	if occurs(v, t, sub) {
		logrus.WithFields(logrus.Fields{"variable": v.Name, "term": t.String()}).Debug("branch pruned: occurs-check failed")
		return nil, nil, gicerr.New(gicerr.KindOccurCheck, "variable %s occurs in %s", v.Name, t)
	}
	return nil, sub.bind(v.Name, t), nil
}

// occurs reports whether v appears free in t once t is fully walked
// through sub, preventing cyclic bindings such as X = f(X).
func occurs(v ast.Var, t ast.Term, sub *Substitution) bool {
	t = sub.Walk(t)
	switch n := t.(type) {
	case ast.Var:
		return n.Name == v.Name
	case ast.Fun:
		for _, a := range n.Args {
			if occurs(v, a, sub) {
				return true
			}
		}
	}
	return false
}
