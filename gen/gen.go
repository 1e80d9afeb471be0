// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators for common kinds of problems: CNF
// families for the clause solver, board setups for the puzzle solver
// and n-queens for the constraint solver.
package gen

import (
	"math/rand"
	"sync"

	"github.com/go-kleene/kleene/csp"
	"github.com/go-kleene/kleene/inter"
	"github.com/go-kleene/kleene/trit"
)

var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

// Seed reseeds the package random source.
func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// BinCycle generates
// (1,-2) (2,-3), (3,-4) ... (n-1, -(n)), (n, 1)
func BinCycle(dst inter.Adder, n int) {
	N := n + 1
	for i := 1; i < N; i++ {
		j := i + 1
		if j == N {
			j = 1
		}
		dst.Add(trit.Var(i).Pos())
		dst.Add(trit.Var(j).Neg())
		dst.Add(trit.LitNull)
	}
}

// Rand3Cnf generates a random 3cnf with n variables and m clauses.  The
// three variables of each clause are distinct.
func Rand3Cnf(dst inter.Adder, n, m int) {
	mu.Lock() // for package rng
	defer mu.Unlock()
	ms := make([]trit.Lit, 3)
	for i := 0; i < m; i++ {
		for j := 0; j < 3; j++ {
			m := trit.Lit(rng.Intn(2*n) + 2)
			ms[j] = m
			for j == 1 && ms[0].Var() == ms[1].Var() {
				ms[j] = trit.Lit(rng.Intn(2*n) + 2)
			}
			for j == 2 && (ms[0].Var() == ms[2].Var() || ms[1].Var() == ms[2].Var()) {
				ms[j] = trit.Lit(rng.Intn(2*n) + 2)
			}
		}
		dst.Add(ms[0])
		dst.Add(ms[1])
		dst.Add(ms[2])
		dst.Add(trit.LitNull)
	}
}

// HardRand3Cnf generates a random 3cnf with n variables at the
// classical hard clause/variable ratio.
func HardRand3Cnf(dst inter.Adder, n int) {
	Rand3Cnf(dst, n, 4*n)
}

// PigeonVar returns the variable placing pigeon i in hole j among h
// holes.
func PigeonVar(i, j, h int) trit.Lit {
	return trit.Var(i*h + j + 1).Pos()
}

// Php generates a pigeon hole problem asking whether or not p pigeons
// can be placed in h holes with 1 pigeon per hole.  It is UNSAT iff
// p > h.
func Php(dst inter.Adder, p, h int) {
	for i := 0; i < p; i++ {
		for j := 0; j < h; j++ {
			dst.Add(PigeonVar(i, j, h))
		}
		dst.Add(trit.LitNull)
	}
	for j := 0; j < h; j++ {
		for i := 0; i < p; i++ {
			for k := i + 1; k < p; k++ {
				dst.Add(PigeonVar(i, j, h).Not())
				dst.Add(PigeonVar(k, j, h).Not())
				dst.Add(trit.LitNull)
			}
		}
	}
}

// Queens builds the n-queens problem as a constraint problem: variable
// r is the column of the queen in row r, columns all different, no two
// queens on a diagonal.
func Queens(n int) (*csp.Problem, error) {
	p, err := csp.New(n, n)
	if err != nil {
		return nil, err
	}
	cols := make([]int, n)
	for i := range cols {
		cols[i] = i
	}
	if err := p.Add(csp.AllDifferent(cols...)); err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := j - i
			noDiag := func(vals []int) bool {
				return vals[0]-vals[1] != d && vals[1]-vals[0] != d
			}
			if err := p.Add(csp.Predicate("NoDiag", noDiag, i, j)); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}
