// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package kleene provides a ternary-logic constraint engine with
// solvers for CNF formulas, 9x9 number-placement puzzles and generic
// finite-domain constraint problems.
//
// The root package is a thin facade over the clause solver:
//
//	g := kleene.New()
//	g.Add(trit.Var(1).Pos())
//	g.Add(trit.LitNull)
//	if g.Solve() == 1 { ... }
//
// The puzzle and constraint solvers live in the sudoku and csp
// packages; all three share the propagation-plus-backtracking engine
// and report results as 1 (satisfiable), -1 (proven unsatisfiable) or
// 0 (search abandoned at a caller-imposed limit).
package kleene

import (
	"io"

	"github.com/go-kleene/kleene/inter"
	"github.com/go-kleene/kleene/sat"
	"github.com/go-kleene/kleene/trit"
)

// Type G wraps the clause solver and implements inter.S.
type G struct {
	s *sat.S
}

// New creates a new empty solver.
func New() *G {
	return &G{s: sat.New()}
}

// NewDimacs creates a solver loaded with the DIMACS CNF problem read
// from r.
func NewDimacs(r io.Reader) (*G, error) {
	g := New()
	if err := sat.Load(r, g.s); err != nil {
		return nil, err
	}
	return g, nil
}

// Add adds a literal to the current clause; trit.LitNull terminates the
// clause.
func (g *G) Add(m trit.Lit) {
	g.s.Add(m)
}

// Lit returns the positive literal of a fresh variable.
func (g *G) Lit() trit.Lit {
	return g.s.Lit()
}

// MaxVar returns the maximum variable added.
func (g *G) MaxVar() trit.Var {
	return g.s.MaxVar()
}

// Err returns any pending problem-loading error.
func (g *G) Err() error {
	return g.s.Err()
}

// SetLimits bounds the next Solve.
func (g *G) SetLimits(lim inter.Limits) {
	g.s.SetLimits(lim)
}

// Solve solves the problem, returning 1, 0 or -1.
func (g *G) Solve() int {
	return g.s.Solve()
}

// Value returns the value of m in the model of the last successful
// Solve.
func (g *G) Value(m trit.Lit) bool {
	return g.s.Value(m)
}

// Stats returns the work counters of the last Solve.
func (g *G) Stats() inter.Stats {
	return g.s.Stats()
}
