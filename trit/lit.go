// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package trit

import (
	"fmt"
	"strconv"
)

// Type Var is a propositional variable, numbered from 1.
type Var uint32

// Pos returns the positive literal of v.
func (v Var) Pos() Lit {
	return Lit(v << 1)
}

// Neg returns the negative literal of v.
func (v Var) Neg() Lit {
	return Lit(v<<1) | 1
}

func (v Var) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// Type Lit is a propositional literal: a variable together with a sign.
// A literal is a variable shifted left one bit with the low bit set for
// negation.  LitNull is not a valid literal; it terminates clauses in
// Adder streams.
type Lit uint32

const LitNull Lit = 0

// Var returns the variable of m.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// IsPos reports whether m has positive sign.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

// Dimacs returns the signed-integer form of m.
func (m Lit) Dimacs() int {
	v := int(m >> 1)
	if m&1 == 1 {
		return -v
	}
	return v
}

// Sign returns the ternary polarity m asserts for its variable: True for
// positive literals, False for negative ones.
func (m Lit) Sign() Val {
	if m.IsPos() {
		return True
	}
	return False
}

// Dimacs2Lit maps a signed non-zero integer to a Lit.
func Dimacs2Lit(i int) Lit {
	if i < 0 {
		return Var(-i).Neg()
	}
	return Var(i).Pos()
}

func (m Lit) String() string {
	return fmt.Sprintf("%d", m.Dimacs())
}
