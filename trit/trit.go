// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package trit provides the ternary value domain and confidence arithmetic
// underlying all kleene solvers.
//
// Values live in the Kleene domain {False, Unknown, True}, encoded as
// {-1, 0, 1} so that conjunction is min, disjunction is max and negation
// is arithmetic negation.  A State pairs a value with a confidence in
// [0,1]; conjunction multiplies confidences and disjunction combines them
// by inclusion-exclusion.
package trit

// Type Val is a ternary truth value.
type Val int8

const (
	False   Val = -1
	Unknown Val = 0
	True    Val = 1
)

// And returns the Kleene conjunction min(v, o).
func (v Val) And(o Val) Val {
	if v < o {
		return v
	}
	return o
}

// Or returns the Kleene disjunction max(v, o).
func (v Val) Or(o Val) Val {
	if v > o {
		return v
	}
	return o
}

// Not returns the Kleene negation -v.
func (v Val) Not() Val {
	return -v
}

// Nand returns Not(And(v, o)).
func (v Val) Nand(o Val) Val {
	return v.And(o).Not()
}

// Nor returns Not(Or(v, o)).
func (v Val) Nor(o Val) Val {
	return v.Or(o).Not()
}

// Equiv returns the Kleene equivalence v*o.
func (v Val) Equiv(o Val) Val {
	return v * o
}

// Implies returns Or(Not(v), o).
func (v Val) Implies(o Val) Val {
	return v.Not().Or(o)
}

// Known reports whether v is decided.
func (v Val) Known() bool {
	return v != Unknown
}

func (v Val) String() string {
	switch v {
	case False:
		return "F"
	case True:
		return "T"
	default:
		return "U"
	}
}
