// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package trit

import (
	"fmt"
	"math"
)

// Type Conf is a confidence in [0,1] attached to a ternary value.
type Conf float32

// Valid reports whether c is finite and within [0,1].
func (c Conf) Valid() bool {
	f := float64(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f >= 0 && f <= 1
}

// ConfAnd is the conjunction confidence rule, the independent-evidence
// product c1*c2.
func ConfAnd(c1, c2 Conf) Conf {
	return c1 * c2
}

// ConfOr is the disjunction confidence rule by inclusion-exclusion,
// 1 - (1-c1)(1-c2).
func ConfOr(c1, c2 Conf) Conf {
	return 1 - (1-c1)*(1-c2)
}

// ConfNot preserves confidence under negation.
func ConfNot(c Conf) Conf {
	return c
}

// ConfImplies is ConfOr(1-c1, c2).
func ConfImplies(c1, c2 Conf) Conf {
	return ConfOr(1-c1, c2)
}

// Type State is a ternary value with an attached confidence.  States are
// immutable; every combinator returns a new State.
type State struct {
	Val  Val
	Conf Conf
}

// New returns a State after validating the confidence.  NaN, Inf and
// out-of-range confidences are rejected here so the combinators can stay
// check-free.
func New(v Val, c Conf) (State, error) {
	if !c.Valid() {
		return State{}, fmt.Errorf("trit: confidence %v outside [0,1]", c)
	}
	return State{Val: v, Conf: c}, nil
}

// Mk returns a State without validation.  Callers own the [0,1] invariant.
func Mk(v Val, c Conf) State {
	return State{Val: v, Conf: c}
}

// And combines values by min and confidences by product.
func (s State) And(o State) State {
	return State{Val: s.Val.And(o.Val), Conf: ConfAnd(s.Conf, o.Conf)}
}

// Or combines values by max and confidences by inclusion-exclusion.
func (s State) Or(o State) State {
	return State{Val: s.Val.Or(o.Val), Conf: ConfOr(s.Conf, o.Conf)}
}

// Not negates the value and preserves the confidence.
func (s State) Not() State {
	return State{Val: s.Val.Not(), Conf: ConfNot(s.Conf)}
}

// Nand is Not(And); the confidence is that of the underlying And.
func (s State) Nand(o State) State {
	return s.And(o).Not()
}

// Nor is Not(Or); the confidence is that of the underlying Or.
func (s State) Nor(o State) State {
	return s.Or(o).Not()
}

// Implies is Or(Not(s), o) on values with the implication confidence rule.
func (s State) Implies(o State) State {
	return State{Val: s.Val.Implies(o.Val), Conf: ConfImplies(s.Conf, o.Conf)}
}

// Equiv multiplies values and confidences.
func (s State) Equiv(o State) State {
	return State{Val: s.Val.Equiv(o.Val), Conf: ConfAnd(s.Conf, o.Conf)}
}

func (s State) String() string {
	return fmt.Sprintf("%s:%.3f", s.Val, s.Conf)
}
