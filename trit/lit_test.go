// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package trit

import "testing"

func TestLitDimacs(t *testing.T) {
	for i := 1; i < 100; i++ {
		if Dimacs2Lit(i).Dimacs() != i {
			t.Errorf("dimacs conversion %d", i)
		}
		if Dimacs2Lit(-i).Dimacs() != -i {
			t.Errorf("dimacs - conversion %d", i)
		}
		if !Dimacs2Lit(i).IsPos() {
			t.Errorf("not positive: %d", i)
		}
		if Dimacs2Lit(-i).IsPos() {
			t.Errorf("not negative: -%d", i)
		}
	}
}

func TestLitNot(t *testing.T) {
	for i := 1; i < 100; i++ {
		m := Var(i).Pos()
		if m.Not() != Var(i).Neg() {
			t.Errorf("not of %s", m)
		}
		if m.Not().Not() != m {
			t.Errorf("double negation of %s", m)
		}
		if m.Var() != Var(i) || m.Not().Var() != Var(i) {
			t.Errorf("var of %s", m)
		}
	}
}

func TestLitSign(t *testing.T) {
	if Var(3).Pos().Sign() != True {
		t.Errorf("pos sign")
	}
	if Var(3).Neg().Sign() != False {
		t.Errorf("neg sign")
	}
}
